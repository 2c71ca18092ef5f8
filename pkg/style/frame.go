package style

import (
	"math"
	"strconv"

	"github.com/kataras/figma2css/pkg/figma"
)

// Resolve computes the declarations of a frame-shaped node placed inside parent.
// A nil parent is treated as a free-form container. Inputs are never modified and
// absent fields contribute nothing.
func Resolve(node, parent *figma.Frame) Declarations {
	var d Declarations
	if node == nil {
		return d
	}

	if !node.Visible {
		d.Set("display", "none")
	}
	if node.ClipsContent {
		d.Set("overflow", "hidden")
	}

	parentMode := figma.LayoutNone
	if parent != nil {
		parentMode = parent.LayoutMode
	}

	minMax(&d, &node.Placement)
	switch {
	case node.LayoutMode.IsAutoLayout():
		containerSizing(&d, &node.Placement)
	case parentMode.IsAutoLayout():
		childSizing(&d, &node.Placement)
	default:
		d.Set("width", width(&node.Placement))
		d.Set("height", height(&node.Placement))
	}

	if node.LayoutMode.IsAutoLayout() {
		container(&d, node)
	}

	if node.Rotation != nil {
		d.Set("transform", Rotation(*node.Rotation))
	}
	d.Set("border-radius", BorderRadius(node.CornerRadius, node.RectangleCornerRadii))
	border(&d, &node.Appearance)
	d.Set("background", Background(node.Fills))
	d.Set("box-shadow", BoxShadow(node.Effects))
	d.Set("filter", Blur(node.Effects, figma.EffectLayerBlur))
	d.Set("backdrop-filter", Blur(node.Effects, figma.EffectBackgroundBlur))

	return d
}

func width(p *figma.Placement) string {
	if p.AbsoluteBoundingBox == nil {
		return ""
	}
	return Px(p.AbsoluteBoundingBox.Width)
}

func height(p *figma.Placement) string {
	if p.AbsoluteBoundingBox == nil {
		return ""
	}
	return Px(p.AbsoluteBoundingBox.Height)
}

func minMax(d *Declarations, p *figma.Placement) {
	d.Set("min-width", Px(p.MinWidth))
	d.Set("max-width", Px(p.MaxWidth))
	d.Set("min-height", Px(p.MinHeight))
	d.Set("max-height", Px(p.MaxHeight))
}

// childSizing sizes a free-form node that flows inside an auto-layout parent.
func childSizing(d *Declarations, p *figma.Placement) {
	if p.LayoutSizingHorizontal == figma.SizingFixed {
		d.Set("width", width(p))
	}

	if p.LayoutSizingHorizontal != figma.SizingFill && p.LayoutGrow == 0 {
		d.Set("flex-shrink", "0")
	}

	if p.LayoutSizingHorizontal == figma.SizingFill {
		if p.LayoutAlign == figma.LayoutAlignStretch {
			d.Set("align-self", "stretch")
		} else {
			d.Set("flex", "1 0 0")
		}
	}

	if p.LayoutSizingVertical == figma.SizingFixed {
		d.Set("height", height(p))
	}

	if p.LayoutSizingVertical == figma.SizingFill {
		if p.LayoutGrow == 1 {
			d.Set("flex", "1 0 0")
		} else {
			d.Set("align-self", "stretch")
		}
	}
}

// containerSizing sizes an auto-layout frame on each axis independently.
func containerSizing(d *Declarations, p *figma.Placement) {
	axis := func(sizing figma.LayoutSizing, fixed string) string {
		switch sizing {
		case figma.SizingHug:
			return "fit-content"
		case figma.SizingFixed:
			return fixed
		case figma.SizingFill:
			return "100%"
		default:
			return ""
		}
	}

	d.Set("width", axis(p.LayoutSizingHorizontal, width(p)))
	d.Set("height", axis(p.LayoutSizingVertical, height(p)))
}

func container(d *Declarations, f *figma.Frame) {
	if f.Visible {
		d.Set("display", "flex")
	}

	wrap := f.LayoutWrap == figma.Wrap
	if wrap {
		d.Set("flex-wrap", "wrap")
	}
	if f.LayoutMode == figma.LayoutVertical {
		d.Set("flex-direction", "column")
	}

	d.Set("align-items", alignItems(f.CounterAxisAlignItems))
	d.Set("justify-content", justifyContent(f.PrimaryAxisAlignItems))
	if wrap && f.CounterAxisAlignContent == figma.AlignContentSpaceBetween {
		d.Set("align-content", "space-between")
	}

	d.Set("gap", Px(f.ItemSpacing))
	d.Set("padding", Padding(f.PaddingTop, f.PaddingRight, f.PaddingBottom, f.PaddingLeft))
}

func alignItems(a figma.LayoutAlignItems) string {
	switch a {
	case figma.AlignCenter:
		return "center"
	case figma.AlignMax:
		return "flex-end"
	case figma.AlignSpaceBetween:
		// not a valid align-items value.
		return ""
	case figma.AlignBaseline:
		return "baseline"
	default:
		return "flex-start"
	}
}

func justifyContent(a figma.LayoutAlignItems) string {
	switch a {
	case figma.AlignCenter:
		return "center"
	case figma.AlignMax:
		return "flex-end"
	case figma.AlignSpaceBetween:
		return "space-between"
	default:
		return "flex-start"
	}
}

// Padding collapses the four sides into the shortest CSS shorthand.
func Padding(top, right, bottom, left float64) string {
	switch {
	case top == bottom && right == left && top == right:
		return px(top)
	case top == bottom && right == left:
		return px(top) + " " + px(right)
	case right == left:
		return px(top) + " " + px(right) + " " + px(bottom)
	default:
		return px(top) + " " + px(right) + " " + px(bottom) + " " + px(left)
	}
}

// CornerRadii collapses a [top-left, top-right, bottom-right, bottom-left] tuple.
func CornerRadii(r [4]float64) string {
	tl, tr, br, bl := r[0], r[1], r[2], r[3]

	switch {
	case tl == br && tr == bl:
		return px(tl) + " " + px(tr)
	case tr == bl:
		return px(tl) + " " + px(tr) + " " + px(br)
	default:
		return px(tl) + " " + px(tr) + " " + px(br) + " " + px(bl)
	}
}

// BorderRadius prefers the uniform radius over the per-corner tuple.
func BorderRadius(uniform *float64, radii *[4]float64) string {
	if uniform != nil {
		return px(*uniform)
	}
	if radii != nil {
		return CornerRadii(*radii)
	}

	return ""
}

// Rotation converts radians to a rotate() transform. Angles that round to
// zero degrees yield "".
func Rotation(radians float64) string {
	deg := math.Round(radians * 180 / math.Pi)
	if deg == 0 || math.IsNaN(deg) {
		return ""
	}

	return "rotate(" + strconv.Itoa(int(deg)) + "deg)"
}
