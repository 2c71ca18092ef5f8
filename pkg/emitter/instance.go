package emitter

import (
	"strings"

	"github.com/kataras/figma2css/pkg/figma"
	"github.com/kataras/figma2css/pkg/selector"
)

// Identity is the authored name and class list of an instance. Instances carry a
// generic name; the variant encoding lives on the component they reference.
type Identity struct {
	Name    string
	Classes []string
}

// ResolveIdentity looks the instance's component up, and that component's set.
// A component miss falls back to the instance's own name with no classes.
func ResolveIdentity(inst *figma.Instance, components map[string]figma.Component, sets map[string]figma.ComponentSet) Identity {
	comp, ok := components[inst.ComponentID]
	if !ok {
		return Identity{Name: inst.Name}
	}

	id := Identity{Name: comp.Name}
	if comp.ComponentSetID == "" {
		return id
	}

	set, ok := sets[comp.ComponentSetID]
	if !ok {
		return id
	}

	if set.Name == comp.Name {
		id.Classes = []string{set.Name}
	} else {
		id.Classes = []string{set.Name, comp.Name}
	}
	return id
}

// String returns the space-joined classes, or the name when there are none.
func (id Identity) String() string {
	if len(id.Classes) == 0 {
		return id.Name
	}
	return strings.Join(id.Classes, " ")
}

// Markup returns the element classes and attributes that select this identity.
func (id Identity) Markup() ([]string, []selector.Attr) {
	if len(id.Classes) == 0 {
		return selector.Variant(id.Name)
	}

	var classes []string
	if class := selector.Kebab(id.Classes[0]); class != "" {
		classes = append(classes, class)
	}
	var attrs []selector.Attr
	for _, name := range id.Classes[1:] {
		c, a := selector.Variant(name)
		classes = append(classes, c...)
		attrs = append(attrs, a...)
	}
	return classes, attrs
}
