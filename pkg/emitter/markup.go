package emitter

import "github.com/kataras/figma2css/pkg/selector"

// Element is one node of the markup tree.
type Element struct {
	Tag      string
	Class    string
	Attrs    []selector.Attr
	Text     string
	Children []*Element
}

// Equal reports whether two elements render identically.
func (e *Element) Equal(o *Element) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Tag != o.Tag || e.Class != o.Class || e.Text != o.Text ||
		len(e.Attrs) != len(o.Attrs) || len(e.Children) != len(o.Children) {
		return false
	}

	for i := range e.Attrs {
		if e.Attrs[i] != o.Attrs[i] {
			return false
		}
	}
	for i := range e.Children {
		if !e.Children[i].Equal(o.Children[i]) {
			return false
		}
	}

	return true
}

// Dedupe drops every element that is identical to an earlier one, keeping first-seen order.
func Dedupe(elements []*Element) []*Element {
	out := make([]*Element, 0, len(elements))
next:
	for _, e := range elements {
		for _, kept := range out {
			if kept.Equal(e) {
				continue next
			}
		}
		out = append(out, e)
	}

	return out
}
