package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebab(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Button", "button"},
		{"Primary Button", "primary-button"},
		{"Icons/Arrow Left", "icons-arrow-left"},
		{"Label.Small", "label-small"},
		{"Dark Theme", "dark-theme"},
		{"Tag • Pill", "tag-pill"},
		{"Card Header", "card-header"},
		{"  spaced   out  ", "spaced-out"},
		{"cardTitle", "card-title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kebab(tt.name))
		})
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Button", ".button"},
		{"Card Header", ".card-header"},
		{"State=Default", ""},
		{"State=Hover", ":hover"},
		{"State=Focus Visible", ":focus-visible"},
		{"Size=Large", `[size="large"]`},
		{"Size=Large, State=Active", `[size="large"]:active`},
		{"State=Focus, Size=Small", `[size="small"]:focus`},
		{"Type=Primary;Icon", `[type="primary"].icon`},
		{"State=Disabled;Focus", `[state="disabled"]:focus`},
		{"Size=Small, Type=Ghost;Hover, Theme=Dark", `[size="small"][type="ghost"][theme="dark"]:hover`},
		{"Outline, State=Hover", `.outline:hover`},
		{"Has Icon=True", `[has-icon="true"]`},
		{"•", ""},
		{"/", ""},
		{"", ""},
		{"1 Column", `.\31 -column`},
		{"Save & Close", `.save-\&-close`},
		{`Label=Say "hi"`, `[label="say-\"hi\""]`},
		{`Path=C:\Temp`, `[path="c-\\temp"]`},
		{"=Large", ".large"},
		{"Tag • Pill, State=Hover", ".tag-pill:hover"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.name))
		})
	}
}

func TestNest(t *testing.T) {
	tests := []struct {
		prefix string
		name   string
		want   string
	}{
		{"", "Button", ".button"},
		{".button", "Label", ".button .label"},
		{".button", "State=Hover", ".button:hover"},
		{".button", "State=Default", ".button"},
		{".button", "Size=Large, State=Active", `.button[size="large"]:active`},
		{`.button[size="large"]`, "Icon Wrapper", `.button[size="large"] .icon-wrapper`},
		{".card", "•", ".card"},
		{"", "•", ""},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nest(tt.prefix, tt.name))
		})
	}
}

func TestVariant(t *testing.T) {
	tests := []struct {
		name        string
		wantClasses []string
		wantAttrs   []Attr
	}{
		{
			name:        "Card",
			wantClasses: []string{"card"},
		},
		{
			name: "State=Hover",
		},
		{
			name:      "Size=Large, State=Active",
			wantAttrs: []Attr{{Key: "size", Value: "large"}},
		},
		{
			name:        "Type=Primary;Icon, State=Disabled;Focus",
			wantClasses: []string{"icon"},
			wantAttrs:   []Attr{{Key: "type", Value: "primary"}, {Key: "state", Value: "disabled"}},
		},
		{
			name: "•",
		},
		{
			name:      `Label=Say "hi"`,
			wantAttrs: []Attr{{Key: "label", Value: `say-"hi"`}},
		},
		{
			name:        "Outline, Size=Small",
			wantClasses: []string{"outline"},
			wantAttrs:   []Attr{{Key: "size", Value: "small"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classes, attrs := Variant(tt.name)
			assert.Equal(t, tt.wantClasses, classes)
			assert.Equal(t, tt.wantAttrs, attrs)
		})
	}
}

func TestIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"card-title", "card-title"},
		{"café", "café"},
		{"2-col", `\32 -col`},
		{"-2", `-\32 `},
		{"-", `\-`},
		{"a+b", `a\+b`},
		{`say-"hi"`, `say-\"hi\"`},
		{"tab\tstop", `tab\9 stop`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Ident(tt.in))
		})
	}
}

func TestNameOr(t *testing.T) {
	assert.Equal(t, "Card", NameOr("Card", "1:2"))
	assert.Equal(t, "node 1:2", NameOr("•", "1:2"))
	assert.Equal(t, "node-1-2", Kebab(NameOr(" / ", "1:2")))
	assert.Equal(t, ".card .node-12-34", Nest(".card", NameOr("", "12:34")))
}

func TestIsVariant(t *testing.T) {
	assert.True(t, IsVariant("State=Hover"))
	assert.False(t, IsVariant("Hover"))
	assert.True(t, IsPseudo("focus-within"))
	assert.False(t, IsPseudo("disabled"))
}
