package emitter

// Assemble returns the components with the rules of every component they include,
// directly or through other included components, appended after their own. Includes
// are followed in order; cycles and rules already present are skipped. The input is
// not modified.
func Assemble(components []Component) []Component {
	owner := make(map[string]int)
	for i, c := range components {
		for _, id := range c.Defines {
			if _, ok := owner[id]; !ok {
				owner[id] = i
			}
		}
	}

	out := make([]Component, len(components))
	for i, c := range components {
		seen := make(map[string]struct{}, len(c.Rules))
		rules := make([]Rule, 0, len(c.Rules))
		add := func(r Rule) {
			k := r.key()
			if _, ok := seen[k]; ok {
				return
			}
			seen[k] = struct{}{}
			rules = append(rules, r)
		}

		for _, r := range c.Rules {
			add(r)
		}

		visited := map[int]bool{i: true}
		queue := append([]string(nil), c.Includes...)
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]

			j, ok := owner[id]
			if !ok || visited[j] {
				continue
			}
			visited[j] = true

			for _, r := range components[j].Rules {
				add(r)
			}
			queue = append(queue, components[j].Includes...)
		}

		c.Rules = rules
		out[i] = c
	}

	return out
}
