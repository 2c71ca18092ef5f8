package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/figma2css/pkg/emitter"
	"github.com/kataras/figma2css/pkg/extractor"
)

// ToMarkdown summarizes a run as a markdown document: the design tokens grouped by
// theme, an overview table of the generated components and the stylesheet of each one.
func ToMarkdown(fileName string, components []emitter.Component, tokens *extractor.Table) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Figma Components - %s\n\n", fileName))
	sb.WriteString(fmt.Sprintf("This document lists the %d component(s) and %d design token(s) generated from the Figma file.\n\n",
		len(components), tokens.Len()))

	// Tokens
	if tokens.Len() > 0 {
		sb.WriteString("## Design Tokens\n\n")
		sb.WriteString("| Variable | Value | Theme | Style |\n")
		sb.WriteString("|----------|-------|-------|-------|\n")
		themes, groups := tokens.Themes()
		for _, theme := range themes {
			for _, tok := range groups[theme] {
				sb.WriteString(fmt.Sprintf("| `%s` | `%s` | %s | %s |\n",
					tok.Variable, tok.Value, theme, escapeCell(tok.Name)))
			}
		}
		sb.WriteString("\n")
	}

	if len(components) == 0 {
		return sb.String()
	}

	// Overview
	sb.WriteString("## Components\n\n")
	sb.WriteString("| Component | Kind | Rules | Elements | Includes |\n")
	sb.WriteString("|-----------|------|-------|----------|----------|\n")
	for _, c := range components {
		kind := "component"
		if c.IsSet {
			kind = "component set"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %d | %d |\n",
			escapeCell(c.Title), kind, len(c.Rules), countElements(c.Markup), len(c.Includes)))
	}
	sb.WriteString("\n")

	for _, c := range components {
		sb.WriteString(fmt.Sprintf("### %s\n\n", c.Title))
		if len(c.Rules) == 0 {
			sb.WriteString("_No style rules._\n\n")
			continue
		}
		sb.WriteString("```css\n")
		sb.WriteString(CSS(c.Rules))
		sb.WriteString("```\n\n")
	}

	return sb.String()
}

func countElements(elements []*emitter.Element) int {
	n := 0
	for _, e := range elements {
		if e == nil {
			continue
		}
		n += 1 + countElements(e.Children)
	}
	return n
}

// escapeCell keeps authored names from breaking the table layout.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
