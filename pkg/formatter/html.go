package formatter

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kataras/figma2css/pkg/emitter"
)

// HTML renders the markup trees, one root element per line.
func HTML(elements []*emitter.Element) (string, error) {
	var sb strings.Builder
	for _, e := range elements {
		if err := html.Render(&sb, toNode(e)); err != nil {
			return "", err
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func toNode(e *emitter.Element) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: atom.Lookup([]byte(e.Tag)),
	}
	if e.Class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: e.Class})
	}
	for _, a := range e.Attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}

	if e.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.Text})
	}
	for _, child := range e.Children {
		if child == nil {
			continue
		}
		n.AppendChild(toNode(child))
	}

	return n
}
