package style

import (
	"strings"

	"github.com/kataras/figma2css/pkg/figma"
)

// firstSolid returns the first visible solid paint. Gradients and any later solids are ignored.
func firstSolid(paints []figma.Paint) (figma.Color, bool) {
	for _, p := range paints {
		if !p.Visible {
			continue
		}
		if c, ok := p.Solid(); ok {
			return c, true
		}
	}

	return figma.Color{}, false
}

// Background returns the rgba() value of the first visible solid fill, or "".
func Background(fills []figma.Paint) string {
	c, ok := firstSolid(fills)
	if !ok {
		return ""
	}

	return c.RGBA()
}

// BorderColor returns the rgba() value of the first visible solid stroke, or "".
func BorderColor(strokes []figma.Paint) string {
	return Background(strokes)
}

// BoxShadow joins every visible drop and inner shadow, in order, into one box-shadow value.
func BoxShadow(effects []figma.Effect) string {
	var shadows []string
	for _, e := range effects {
		if !e.Visible {
			continue
		}

		switch e.Type {
		case figma.EffectDropShadow:
			shadows = append(shadows, shadow(e))
		case figma.EffectInnerShadow:
			shadows = append(shadows, "inset "+shadow(e))
		}
	}

	return strings.Join(shadows, ", ")
}

func shadow(e figma.Effect) string {
	return px(e.Offset.X) + " " + px(e.Offset.Y) + " " + px(e.Radius) + " " + px(e.Spread) + " " + e.Color.RGBA()
}

// Blur returns blur(Npx) for the first visible effect of the given kind, or "".
func Blur(effects []figma.Effect, kind figma.EffectType) string {
	for _, e := range effects {
		if e.Visible && e.Type == kind {
			return "blur(" + px(e.Radius) + ")"
		}
	}

	return ""
}

func borderStyle(a *figma.Appearance) string {
	if a.StrokeDashes != nil {
		return "dashed"
	}

	return "solid"
}

// border emits per-side borders when individual weights exist, else a single shorthand.
// Nothing is emitted without a resolved stroke color.
func border(d *Declarations, a *figma.Appearance) {
	color := BorderColor(a.Strokes)
	if color == "" {
		return
	}

	style := borderStyle(a)
	if w := a.IndividualStrokeWeights; w != nil {
		sides := []struct {
			property string
			weight   float64
		}{
			{"border-top", w.Top},
			{"border-right", w.Right},
			{"border-bottom", w.Bottom},
			{"border-left", w.Left},
		}

		var emitted bool
		for _, side := range sides {
			if side.weight > 0 {
				d.Set(side.property, px(side.weight)+" "+style+" "+color)
				emitted = true
			}
		}
		if emitted {
			return
		}
	}

	if a.StrokeWeight != nil {
		d.Set("border", px(*a.StrokeWeight)+" "+style+" "+color)
	}
}
