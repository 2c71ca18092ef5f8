// Package extractor collects design tokens from the published styles a document references.
package extractor

import (
	"sort"
	"strings"

	"github.com/kataras/figma2css/pkg/figma"
	"github.com/kataras/figma2css/pkg/selector"
	"github.com/kataras/figma2css/pkg/style"
)

// RootTheme is the scope of tokens that do not belong to a named theme.
const RootTheme = ":root"

// Kind is the node property a style reference applies to.
type Kind string

const (
	KindFill   Kind = "fill"
	KindStroke Kind = "stroke"
	KindEffect Kind = "effect"
	KindText   Kind = "text"
	KindGrid   Kind = "grid"
)

// KindOf normalises a key of a node's style-id map ("fills" and "fill" are the same kind).
func KindOf(key string) Kind {
	switch strings.ToLower(key) {
	case "fill", "fills":
		return KindFill
	case "stroke", "strokes":
		return KindStroke
	case "effect", "effects":
		return KindEffect
	case "text":
		return KindText
	case "grid":
		return KindGrid
	default:
		return Kind(strings.ToLower(key))
	}
}

// Token is a named, theme-scoped constant derived from a referenced style.
type Token struct {
	StyleID  string
	Name     string // the style name as authored, e.g. "Dark Theme/Primary/500".
	Variable string // e.g. "--primary-500".
	Value    string
	Theme    string // RootTheme or a kebab-cased theme name.
	Kind     Kind
}

// Table maps style ids to tokens. The first token added for an id wins and is never
// replaced; iteration follows insertion order.
type Table struct {
	byID  map[string]*Token
	order []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{byID: make(map[string]*Token)}
}

// Add inserts the token unless its style id is already present and reports whether it did.
func (t *Table) Add(tok Token) bool {
	if t.byID == nil {
		t.byID = make(map[string]*Token)
	}
	if _, ok := t.byID[tok.StyleID]; ok {
		return false
	}

	t.byID[tok.StyleID] = &tok
	t.order = append(t.order, tok.StyleID)
	return true
}

// Get returns the token of a style id. A nil table holds nothing.
func (t *Table) Get(styleID string) (Token, bool) {
	if t == nil {
		return Token{}, false
	}

	tok, ok := t.byID[styleID]
	if !ok {
		return Token{}, false
	}
	return *tok, true
}

// Len returns the number of tokens.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// All returns the tokens in insertion order.
func (t *Table) All() []Token {
	if t == nil {
		return nil
	}

	tokens := make([]Token, 0, len(t.order))
	for _, id := range t.order {
		tokens = append(tokens, *t.byID[id])
	}
	return tokens
}

// Themes groups the tokens by theme. RootTheme comes first, the other themes follow
// in the order they were first seen.
func (t *Table) Themes() ([]string, map[string][]Token) {
	groups := make(map[string][]Token)
	var themes []string
	for _, tok := range t.All() {
		if _, ok := groups[tok.Theme]; !ok {
			themes = append(themes, tok.Theme)
		}
		groups[tok.Theme] = append(groups[tok.Theme], tok)
	}

	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i] == RootTheme && themes[j] != RootTheme
	})
	return themes, groups
}

// Extract walks root and every descendant, vector and text leaves included, and adds a
// token for each style reference that resolves to a value. Style ids already in the
// table are left untouched, so running Extract again over the same tree changes nothing.
func Extract(root figma.Node, styles map[string]figma.Style, into *Table) {
	figma.Walk(root, func(n figma.Node) bool {
		extractNode(n, styles, into)
		return true
	})
}

func extractNode(n figma.Node, styles map[string]figma.Style, into *Table) {
	a, ok := figma.AppearanceOf(n)
	if !ok || len(a.Styles) == 0 {
		return
	}

	keys := make([]string, 0, len(a.Styles))
	for key := range a.Styles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		styleID := a.Styles[key]
		if _, seen := into.Get(styleID); seen {
			continue
		}

		st, ok := styles[styleID]
		if !ok {
			continue
		}

		kind := KindOf(key)
		value := Value(kind, a)
		if value == "" {
			continue
		}

		variable, theme := TokenValues(st.Name)
		into.Add(Token{
			StyleID:  styleID,
			Name:     st.Name,
			Variable: variable,
			Value:    value,
			Theme:    theme,
			Kind:     kind,
		})
	}
}

// Value computes the token value a style reference of the given kind stands for.
// Text and grid styles are not supported and yield "".
func Value(kind Kind, a *figma.Appearance) string {
	switch kind {
	case KindFill:
		return style.Background(a.Fills)
	case KindStroke:
		return style.BorderColor(a.Strokes)
	case KindEffect:
		return style.BoxShadow(a.Effects)
	default:
		return ""
	}
}

// TokenValues derives the CSS variable name and theme scope of a style name. A first
// slash segment that mentions "theme" becomes the scope and the remaining segments
// form the variable; otherwise the whole path forms the variable under RootTheme.
//
//	"Dark Theme/Primary/500" -> ("--primary-500", "dark-theme")
//	"Brand/Accent"           -> ("--brand-accent", ":root")
func TokenValues(name string) (variable, theme string) {
	segments := strings.Split(name, "/")
	if len(segments) > 1 && strings.Contains(strings.ToLower(segments[0]), "theme") {
		return "--" + selector.Kebab(strings.Join(segments[1:], " ")), selector.Kebab(segments[0])
	}

	return "--" + selector.Kebab(name), RootTheme
}
