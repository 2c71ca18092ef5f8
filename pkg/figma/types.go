package figma

import (
	"encoding/json"
	"math"
	"strconv"
)

// File represents the complete response from the Figma file API endpoint.
// It contains the document tree plus the side tables (components, component sets and
// published styles) that nodes reference by id.
type File struct {
	Name          string                  `json:"name"`
	LastModified  string                  `json:"lastModified"`
	Version       string                  `json:"version"`
	Document      Node                    `json:"document"`
	Components    map[string]Component    `json:"components"`
	ComponentSets map[string]ComponentSet `json:"componentSets"`
	Styles        map[string]Style        `json:"styles"`
}

// Component represents a Figma component definition with its metadata.
// Variants of a component set carry the id of their set in ComponentSetID.
type Component struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	ComponentSetID string `json:"componentSetId,omitempty"`
}

// ComponentSet groups the variants of one component family.
type ComponentSet struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// StyleType is the kind of a published style.
type StyleType string

const (
	StyleFill   StyleType = "FILL"
	StyleText   StyleType = "TEXT"
	StyleEffect StyleType = "EFFECT"
	StyleGrid   StyleType = "GRID"
)

// Style represents a published Figma style. Nodes reference styles by id through their
// style-id map; the name is slash-segmented ("Dark Theme/Primary/500").
type Style struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StyleType   StyleType `json:"styleType"`
}

// Color represents an RGBA color with float values ranging from 0 to 1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// IsTransparent reports whether the alpha channel is zero.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// RGBA formats the color as a CSS rgba() value. Channels are scaled to 0-255 but not
// rounded, alpha is kept as is: {a:0.5,r:0.1,g:0.2,b:0.3} -> "rgba(25.5,51,76.5,0.5)".
func (c Color) RGBA() string {
	return "rgba(" + FormatFloat(c.R*255) + "," + FormatFloat(c.G*255) + "," +
		FormatFloat(c.B*255) + "," + FormatFloat(c.A) + ")"
}

// FormatFloat renders v with the shortest single-precision representation,
// so 8 becomes "8" and 0.1*255 becomes "25.5". Values beyond float32's
// 24-bit mantissa lose their low digits: 123456789 becomes "123456790".
// Zero, NaN and infinities render as "0".
func FormatFloat(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 32)
}

// PaintType discriminates the paint variants.
type PaintType string

const (
	PaintSolid           PaintType = "SOLID"
	PaintGradientLinear  PaintType = "GRADIENT_LINEAR"
	PaintGradientRadial  PaintType = "GRADIENT_RADIAL"
	PaintGradientAngular PaintType = "GRADIENT_ANGULAR"
	PaintGradientDiamond PaintType = "GRADIENT_DIAMOND"
	PaintImage           PaintType = "IMAGE"
)

// Paint represents a fill or stroke applied to a Figma node.
// Solid paints carry Color; gradient paints carry their handles and stops, which are
// kept on the model but never resolved to a single color.
type Paint struct {
	Type                    PaintType   `json:"type"`
	Visible                 bool        `json:"visible"`
	Opacity                 float64     `json:"opacity"`
	Color                   *Color      `json:"color,omitempty"`
	BlendMode               string      `json:"blendMode,omitempty"`
	GradientHandlePositions []Vector    `json:"gradientHandlePositions,omitempty"`
	GradientStops           []ColorStop `json:"gradientStops,omitempty"`
}

// UnmarshalJSON applies the document defaults: paints are visible and opaque unless stated.
func (p *Paint) UnmarshalJSON(data []byte) error {
	type alias Paint
	a := alias{Visible: true, Opacity: 1}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = Paint(a)
	return nil
}

// Solid returns the paint color when the paint is a solid one.
func (p Paint) Solid() (Color, bool) {
	if p.Type != PaintSolid || p.Color == nil {
		return Color{}, false
	}
	return *p.Color, true
}

// IsGradient reports whether the paint is one of the four gradient kinds.
func (p Paint) IsGradient() bool {
	switch p.Type {
	case PaintGradientLinear, PaintGradientRadial, PaintGradientAngular, PaintGradientDiamond:
		return true
	default:
		return false
	}
}

// ColorStop is a single gradient stop.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// EffectType is the kind of a visual effect.
type EffectType string

const (
	EffectInnerShadow    EffectType = "INNER_SHADOW"
	EffectDropShadow     EffectType = "DROP_SHADOW"
	EffectLayerBlur      EffectType = "LAYER_BLUR"
	EffectBackgroundBlur EffectType = "BACKGROUND_BLUR"
)

// Effect represents a visual effect applied to a Figma node such as drop shadows, inner shadows, or blur effects.
// It includes positioning (offset), blur radius, spread, color, and blend mode settings.
type Effect struct {
	Type      EffectType `json:"type"`
	Visible   bool       `json:"visible"`
	Radius    float64    `json:"radius"`
	Color     Color      `json:"color"`
	Offset    Vector     `json:"offset"`
	Spread    float64    `json:"spread"`
	BlendMode string     `json:"blendMode,omitempty"`
}

// Vector represents a 2D coordinate or offset with X and Y values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rectangle represents a bounding box. Any of its members may be absent from the
// document, in which case dependent declarations are omitted.
type Rectangle struct {
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// StrokeWeights holds independent per-side stroke widths.
type StrokeWeights struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// LayoutConstraint defines how a node's position and size behave when its parent is resized.
type LayoutConstraint struct {
	Vertical   string `json:"vertical"`
	Horizontal string `json:"horizontal"`
}
