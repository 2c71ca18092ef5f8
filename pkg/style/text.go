package style

import (
	"strconv"

	"github.com/kataras/figma2css/pkg/figma"
)

// ResolveText computes the declarations of a text node placed inside parent.
// The node-wide type style applies to every character.
func ResolveText(text *figma.Text, parent *figma.Frame) Declarations {
	var d Declarations
	if text == nil {
		return d
	}

	s := text.Style
	if !text.Visible {
		d.Set("display", "none")
	}

	color := Background(text.Fills)
	if color == "" {
		color = Background(s.Fills)
	}
	d.Set("color", color)

	if s.FontFamily != "" {
		d.Set("font-family", strconv.Quote(s.FontFamily))
	}
	if s.FontSize > 0 {
		d.Set("font-size", px(s.FontSize))
	}
	if s.FontWeight > 0 {
		d.Set("font-weight", figma.FormatFloat(s.FontWeight))
	}
	if s.Italic {
		d.Set("font-style", "italic")
	}
	d.Set("line-height", figma.FormatFloat(s.LineHeight()))
	if s.LetterSpacing != 0 {
		d.Set("letter-spacing", px(s.LetterSpacing))
	}

	minMax(&d, &text.Placement)
	if parent != nil && parent.LayoutMode.IsAutoLayout() {
		childSizing(&d, &text.Placement)
	} else {
		switch s.TextAutoResize {
		case figma.TextAutoResizeWidthAndHeight:
			// sized by its content.
		case figma.TextAutoResizeHeight:
			d.Set("width", width(&text.Placement))
		default:
			d.Set("width", width(&text.Placement))
			d.Set("height", height(&text.Placement))
		}
	}

	d.Set("text-align", textAlign(s.TextAlignHorizontal))
	d.Set("text-decoration", textDecoration(s.TextDecoration))
	d.Set("text-transform", textTransform(s.TextCase))
	d.Set("font-variant", fontVariant(s.TextCase))

	if s.TextTruncation == figma.TextTruncationEnding {
		d.Set("overflow", "hidden")
		d.Set("text-overflow", "ellipsis")
		if s.MaxLines != nil && *s.MaxLines > 0 {
			if text.Visible {
				d.Set("display", "-webkit-box")
			}
			d.Set("-webkit-line-clamp", figma.FormatFloat(*s.MaxLines))
			d.Set("-webkit-box-orient", "vertical")
		} else {
			d.Set("white-space", "nowrap")
		}
	}

	return d
}

func textAlign(a figma.TextAlignHorizontal) string {
	switch a {
	case figma.TextAlignRight:
		return "right"
	case figma.TextAlignCenter:
		return "center"
	case figma.TextAlignJustified:
		return "justify"
	default:
		return ""
	}
}

func textDecoration(t figma.TextDecoration) string {
	switch t {
	case figma.TextDecorationStrikethrough:
		return "line-through"
	case figma.TextDecorationUnderline:
		return "underline"
	default:
		return ""
	}
}

func textTransform(c figma.TextCase) string {
	switch c {
	case figma.TextCaseUpper:
		return "uppercase"
	case figma.TextCaseLower:
		return "lowercase"
	case figma.TextCaseTitle:
		return "capitalize"
	default:
		return ""
	}
}

func fontVariant(c figma.TextCase) string {
	switch c {
	case figma.TextCaseSmallCaps:
		return "small-caps"
	case figma.TextCaseSmallCapsForced:
		return "all-small-caps"
	default:
		return ""
	}
}
