// Package formatter renders the output of a run as text: component stylesheets, the
// shared theme stylesheet, markup and a markdown report.
package formatter

import (
	"strings"

	"github.com/kataras/figma2css/pkg/emitter"
	"github.com/kataras/figma2css/pkg/extractor"
	"github.com/kataras/figma2css/pkg/style"
)

// CSS renders rules as a stylesheet, one block per rule separated by a blank line.
func CSS(rules []emitter.Rule) string {
	var sb strings.Builder
	for i, r := range rules {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeBlock(&sb, r.Selector, r.Declarations)
	}

	return sb.String()
}

// ThemeCSS renders the token table as custom property blocks. Global tokens go under
// :root, every other theme under a class named after it.
func ThemeCSS(tokens *extractor.Table) string {
	themes, groups := tokens.Themes()

	var sb strings.Builder
	for i, theme := range themes {
		if i > 0 {
			sb.WriteString("\n")
		}

		decls := make(style.Declarations, 0, len(groups[theme]))
		for _, tok := range groups[theme] {
			decls.Set(tok.Variable, tok.Value)
		}
		writeBlock(&sb, themeSelector(theme), decls)
	}

	return sb.String()
}

func themeSelector(theme string) string {
	if theme == extractor.RootTheme {
		return theme
	}
	return "." + theme
}

func writeBlock(sb *strings.Builder, selector string, decls style.Declarations) {
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, d := range decls {
		sb.WriteString("  ")
		sb.WriteString(d.Property)
		sb.WriteString(": ")
		sb.WriteString(d.Value)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
}
