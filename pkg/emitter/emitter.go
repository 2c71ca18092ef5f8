// Package emitter walks a component's node tree and produces its stylesheet rules and
// markup tree.
package emitter

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/kataras/figma2css/pkg/extractor"
	"github.com/kataras/figma2css/pkg/figma"
	"github.com/kataras/figma2css/pkg/selector"
	"github.com/kataras/figma2css/pkg/style"
)

// Rule is a selector and its declarations.
type Rule struct {
	Selector     string
	Declarations style.Declarations
}

func (r Rule) key() string {
	var b strings.Builder
	b.WriteString(r.Selector)
	for _, d := range r.Declarations {
		b.WriteString("\x00" + d.Property + ":" + d.Value)
	}
	return b.String()
}

// Component is the generated output of one top-level component or component set.
type Component struct {
	ID    string
	Name  string // kebab-cased, used for selectors and file names.
	Title string // the authored name.
	IsSet bool

	Rules  []Rule
	Markup []*Element

	// Defines holds the node ids this component answers for: its own and, for sets, its variants'.
	Defines []string
	// Includes holds the component ids of the instances nested in this component.
	Includes []string
}

// Walker emits components. It only reads the document and the token table, so one
// Walker may emit several components concurrently.
type Walker struct {
	components map[string]figma.Component
	sets       map[string]figma.ComponentSet
	tokens     *extractor.Table
	log        *zap.Logger
}

// NewWalker returns a walker over the side tables of file. A nil logger is silent.
func NewWalker(file *figma.File, tokens *extractor.Table, log *zap.Logger) *Walker {
	if log == nil {
		log = zap.NewNop()
	}

	return &Walker{
		components: file.Components,
		sets:       file.ComponentSets,
		tokens:     tokens,
		log:        log,
	}
}

// Component emits the rules and markup of a top-level frame-shaped node.
func (w *Walker) Component(node figma.Node) (Component, bool) {
	frame, ok := figma.FrameOf(node)
	if !ok {
		return Component{}, false
	}

	c := Component{
		ID:      frame.ID,
		Name:    selector.Kebab(selector.NameOr(frame.Name, frame.ID)),
		Title:   frame.Name,
		IsSet:   frame.IsComponentSet(),
		Defines: []string{frame.ID},
	}
	if c.IsSet {
		for _, child := range frame.Children {
			if v, ok := figma.FrameOf(child); ok && v.IsComponent() {
				c.Defines = append(c.Defines, v.ID)
			}
		}
	}

	func() {
		defer w.recoverSubtree(frame.ID, -1)
		w.walk(node, nil, "", false, &c.Markup, &c)
	}()
	c.Includes = unique(c.Includes)
	return c, true
}

// recoverSubtree turns a panic raised while emitting a subtree into a logged skip.
// The subtree is identified by its parent id and child index, or by its own id when
// index is negative.
func (w *Walker) recoverSubtree(id string, index int) {
	if r := recover(); r != nil {
		w.log.Error("skipping malformed node subtree",
			zap.String("node", id),
			zap.Int("child", index),
			zap.String("panic", fmt.Sprint(r)))
	}
}

// walk emits node and its subtree. Rules are suppressed for component sets and for
// everything at or below an instance.
func (w *Walker) walk(node figma.Node, parent *figma.Frame, prefix string, inInstance bool, out *[]*Element, c *Component) {
	frame, ok := figma.FrameOf(node)
	if !ok {
		return
	}

	name := selector.NameOr(frame.Name, frame.ID)
	var classes []string
	var attrs []selector.Attr

	inst, isInstance := node.(*figma.Instance)
	switch {
	case isInstance:
		id := ResolveIdentity(inst, w.components, w.sets)
		if _, found := w.components[inst.ComponentID]; !found {
			w.log.Debug("instance references an unknown component",
				zap.String("node", inst.ID), zap.String("component", inst.ComponentID))
		}
		c.Includes = append(c.Includes, inst.ComponentID)
		inInstance = true
		id.Name = selector.NameOr(id.Name, frame.ID)
		name = id.Name
		classes, attrs = id.Markup()
	case selector.IsVariant(name) && parent != nil:
		classes, attrs = selector.Variant(name)
		classes = append([]string{selector.Kebab(parent.Name)}, classes...)
	default:
		classes, attrs = selector.Variant(name)
	}

	sel := selector.Nest(prefix, name)
	if !frame.IsComponentSet() && !inInstance {
		decls := style.Resolve(frame, parent)
		w.substitute(decls, &frame.Appearance, false)
		c.addRule(sel, decls)
	}

	el := &Element{Tag: "div", Class: strings.Join(classes, " "), Attrs: attrs}
	for i, child := range frame.Children {
		w.child(child, i, frame, sel, inInstance, &el.Children, c)
	}

	if frame.IsComponentSet() {
		*out = append(*out, Dedupe(el.Children)...)
		return
	}
	*out = append(*out, el)
}

// child emits one child of frame. A panic inside the child's subtree is logged and the
// subtree is skipped, leaving its siblings intact.
func (w *Walker) child(node figma.Node, index int, frame *figma.Frame, prefix string, inInstance bool, out *[]*Element, c *Component) {
	defer w.recoverSubtree(frame.ID, index)

	text, ok := node.(*figma.Text)
	if !ok {
		w.walk(node, frame, prefix, inInstance, out, c)
		return
	}

	class := selector.Kebab(selector.NameOr(text.Name, text.ID))
	if !inInstance {
		decls := style.ResolveText(text, frame)
		w.substitute(decls, &text.Appearance, true)
		c.addRule(prefix+" ."+selector.Ident(class), decls)
	}
	*out = append(*out, &Element{Tag: "span", Class: class, Text: text.Characters})
}

func (c *Component) addRule(sel string, decls style.Declarations) {
	if len(decls) == 0 {
		return
	}
	c.Rules = append(c.Rules, Rule{Selector: sel, Declarations: decls})
}

// substitute replaces resolved values with the custom property of the token the node
// references for them. The property is chosen by the key the node references the style
// under, since one style may serve as a fill on one node and a stroke on another.
// Values that were not emitted stay absent.
func (w *Walker) substitute(d style.Declarations, a *figma.Appearance, text bool) {
	if w.tokens.Len() == 0 || len(a.Styles) == 0 {
		return
	}

	keys := make([]string, 0, len(a.Styles))
	for key := range a.Styles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		tok, ok := w.tokens.Get(a.Styles[key])
		if !ok {
			continue
		}

		ref := "var(" + tok.Variable + ")"
		switch extractor.KindOf(key) {
		case extractor.KindFill:
			property := "background"
			if text {
				property = "color"
			}
			if d.Has(property) {
				d.Set(property, ref)
			}
		case extractor.KindStroke:
			d.Replace(style.BorderColor(a.Strokes), ref, "border", "border-top", "border-right", "border-bottom", "border-left")
		case extractor.KindEffect:
			if d.Has("box-shadow") {
				d.Set("box-shadow", ref)
			}
		}
	}
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
