package style

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kataras/figma2css/pkg/figma"
)

func f(v float64) *float64 { return &v }

func frame(mutate func(*figma.Frame)) *figma.Frame {
	fr := &figma.Frame{}
	fr.Visible = true
	fr.Type = figma.TypeFrame
	if mutate != nil {
		mutate(fr)
	}
	return fr
}

func solid(r, g, b, a float64) figma.Paint {
	return figma.Paint{Type: figma.PaintSolid, Visible: true, Opacity: 1, Color: &figma.Color{R: r, G: g, B: b, A: a}}
}

func TestCornerRadii(t *testing.T) {
	tests := []struct {
		radii [4]float64
		want  string
	}{
		{[4]float64{1, 2, 3, 4}, "1px 2px 3px 4px"},
		{[4]float64{1, 2, 1, 2}, "1px 2px"},
		{[4]float64{1, 2, 3, 2}, "1px 2px 3px"},
		{[4]float64{4, 4, 4, 4}, "4px 4px"},
		{[4]float64{1, 2, 1, 3}, "1px 2px 1px 3px"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, CornerRadii(tt.radii))
		})
	}
}

func TestBorderRadius(t *testing.T) {
	assert.Equal(t, "6px", BorderRadius(f(6), &[4]float64{1, 2, 3, 4}), "uniform radius wins")
	assert.Equal(t, "0px", BorderRadius(f(0), nil))
	assert.Equal(t, "1px 2px", BorderRadius(nil, &[4]float64{1, 2, 1, 2}))
	assert.Equal(t, "", BorderRadius(nil, nil))
}

func TestRotation(t *testing.T) {
	tests := []struct {
		name    string
		radians float64
		want    string
	}{
		{"quarter turn", -1.5707964, "rotate(-90deg)"},
		{"eighth turn", -0.7853982, "rotate(-45deg)"},
		{"pi over two", -math.Pi / 2, "rotate(-90deg)"},
		{"float noise", -5.551115e-17, ""},
		{"zero", 0, ""},
		{"just under half a degree", 0.0087, ""},
		{"positive", math.Pi, "rotate(180deg)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rotation(tt.radians))
		})
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		top, right, bottom, left float64
		want                     string
	}{
		{8, 8, 8, 8, "8px"},
		{4, 8, 4, 8, "4px 8px"},
		{1, 8, 4, 8, "1px 8px 4px"},
		{1, 2, 3, 4, "1px 2px 3px 4px"},
		{0, 0, 0, 0, "0px"},
		{2.5, 0, 2.5, 0, "2.5px 0px"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Padding(tt.top, tt.right, tt.bottom, tt.left))
		})
	}
}

func TestBackground(t *testing.T) {
	hidden := solid(1, 0, 0, 1)
	hidden.Visible = false
	gradient := figma.Paint{Type: figma.PaintGradientLinear, Visible: true}

	assert.Equal(t, "", Background(nil))
	assert.Equal(t, "", Background([]figma.Paint{gradient}))
	assert.Equal(t, "rgba(0,0,255,1)", Background([]figma.Paint{hidden, gradient, solid(0, 0, 1, 1), solid(0, 1, 0, 1)}))
	assert.Equal(t, "rgba(25.5,51,76.5,0.5)", Background([]figma.Paint{solid(0.1, 0.2, 0.3, 0.5)}))
}

func TestBoxShadowAndBlur(t *testing.T) {
	black := figma.Color{A: 0.25}
	effects := []figma.Effect{
		{Type: figma.EffectDropShadow, Visible: true, Offset: figma.Vector{X: 0, Y: 4}, Radius: 4, Color: black},
		{Type: figma.EffectInnerShadow, Visible: true, Offset: figma.Vector{X: 1, Y: 1}, Radius: 2, Spread: 1, Color: black},
		{Type: figma.EffectDropShadow, Visible: false, Radius: 100},
		{Type: figma.EffectLayerBlur, Visible: true, Radius: 3},
		{Type: figma.EffectLayerBlur, Visible: true, Radius: 9},
		{Type: figma.EffectBackgroundBlur, Visible: true, Radius: 12},
	}

	assert.Equal(t,
		"0px 4px 4px 0px rgba(0,0,0,0.25), inset 1px 1px 2px 1px rgba(0,0,0,0.25)",
		BoxShadow(effects))
	assert.Equal(t, "blur(3px)", Blur(effects, figma.EffectLayerBlur))
	assert.Equal(t, "blur(12px)", Blur(effects, figma.EffectBackgroundBlur))
	assert.Equal(t, "", BoxShadow(nil))
}

func TestResolveAutoLayoutContainer(t *testing.T) {
	node := frame(func(fr *figma.Frame) {
		fr.LayoutMode = figma.LayoutVertical
		fr.LayoutWrap = figma.Wrap
		fr.LayoutSizingHorizontal = figma.SizingHug
		fr.LayoutSizingVertical = figma.SizingFixed
		fr.AbsoluteBoundingBox = &figma.Rectangle{Width: f(120), Height: f(40)}
		fr.PrimaryAxisAlignItems = figma.AlignSpaceBetween
		fr.CounterAxisAlignItems = figma.AlignCenter
		fr.CounterAxisAlignContent = figma.AlignContentSpaceBetween
		fr.ItemSpacing = f(8)
		fr.PaddingTop, fr.PaddingBottom = 4, 4
		fr.PaddingLeft, fr.PaddingRight = 8, 8
		fr.ClipsContent = true
		fr.CornerRadius = f(4)
		fr.Fills = []figma.Paint{solid(1, 1, 1, 1)}
	})

	got := Resolve(node, nil)
	assert.Equal(t, Declarations{
		{"overflow", "hidden"},
		{"width", "fit-content"},
		{"height", "40px"},
		{"display", "flex"},
		{"flex-wrap", "wrap"},
		{"flex-direction", "column"},
		{"align-items", "center"},
		{"justify-content", "space-between"},
		{"align-content", "space-between"},
		{"gap", "8px"},
		{"padding", "4px 8px"},
		{"border-radius", "4px"},
		{"background", "rgba(255,255,255,1)"},
	}, got)
}

func TestResolveCounterAxisAlignment(t *testing.T) {
	tests := []struct {
		align figma.LayoutAlignItems
		want  string // empty means no align-items declaration.
	}{
		{"", "flex-start"},
		{figma.AlignMin, "flex-start"},
		{figma.AlignCenter, "center"},
		{figma.AlignMax, "flex-end"},
		{figma.AlignBaseline, "baseline"},
		{figma.AlignSpaceBetween, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.align), func(t *testing.T) {
			node := frame(func(fr *figma.Frame) {
				fr.LayoutMode = figma.LayoutHorizontal
				fr.CounterAxisAlignItems = tt.align
			})

			got := Resolve(node, nil)
			value, ok := got.Get("align-items")
			if tt.want == "" {
				assert.False(t, ok, "space-between is not an align-items value")
				return
			}
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestResolveHiddenAutoLayoutKeepsDisplayNone(t *testing.T) {
	node := frame(func(fr *figma.Frame) {
		fr.Visible = false
		fr.LayoutMode = figma.LayoutHorizontal
	})

	got := Resolve(node, nil)
	display, _ := got.Get("display")
	assert.Equal(t, "none", display)
	assert.False(t, got.Has("flex-wrap"))
	assert.False(t, got.Has("align-content"), "align-content needs wrap")
	padding, _ := got.Get("padding")
	assert.Equal(t, "0px", padding)
}

func TestResolveChildOfAutoLayout(t *testing.T) {
	parent := frame(func(fr *figma.Frame) { fr.LayoutMode = figma.LayoutHorizontal })
	box := &figma.Rectangle{Width: f(24), Height: f(16)}

	tests := []struct {
		name  string
		child *figma.Frame
		want  Declarations
	}{
		{
			name: "fixed both axes",
			child: frame(func(fr *figma.Frame) {
				fr.AbsoluteBoundingBox = box
				fr.LayoutSizingHorizontal = figma.SizingFixed
				fr.LayoutSizingVertical = figma.SizingFixed
			}),
			want: Declarations{{"width", "24px"}, {"flex-shrink", "0"}, {"height", "16px"}},
		},
		{
			name: "fill horizontally",
			child: frame(func(fr *figma.Frame) {
				fr.AbsoluteBoundingBox = box
				fr.LayoutSizingHorizontal = figma.SizingFill
				fr.LayoutSizingVertical = figma.SizingHug
				fr.LayoutGrow = 1
			}),
			want: Declarations{{"flex", "1 0 0"}},
		},
		{
			name: "fill horizontally with stretch",
			child: frame(func(fr *figma.Frame) {
				fr.LayoutSizingHorizontal = figma.SizingFill
				fr.LayoutAlign = figma.LayoutAlignStretch
			}),
			want: Declarations{{"align-self", "stretch"}},
		},
		{
			name: "fill vertically",
			child: frame(func(fr *figma.Frame) {
				fr.LayoutSizingHorizontal = figma.SizingHug
				fr.LayoutSizingVertical = figma.SizingFill
			}),
			want: Declarations{{"flex-shrink", "0"}, {"align-self", "stretch"}},
		},
		{
			name: "fill vertically while growing",
			child: frame(func(fr *figma.Frame) {
				fr.LayoutSizingHorizontal = figma.SizingHug
				fr.LayoutSizingVertical = figma.SizingFill
				fr.LayoutGrow = 1
			}),
			want: Declarations{{"flex", "1 0 0"}},
		},
		{
			name: "min and max always emitted",
			child: frame(func(fr *figma.Frame) {
				fr.MinWidth = f(10)
				fr.MaxHeight = f(90)
				fr.LayoutGrow = 1
			}),
			want: Declarations{{"min-width", "10px"}, {"max-height", "90px"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.child, parent))
		})
	}
}

func TestResolveFreeForm(t *testing.T) {
	node := frame(func(fr *figma.Frame) {
		fr.AbsoluteBoundingBox = &figma.Rectangle{Width: f(100)}
		fr.Rotation = f(-math.Pi / 4)
	})

	assert.Equal(t, Declarations{
		{"width", "100px"},
		{"transform", "rotate(-45deg)"},
	}, Resolve(node, nil), "absent height yields no declaration")
}

func TestResolveBorder(t *testing.T) {
	red := solid(1, 0, 0, 1)

	tests := []struct {
		name string
		node *figma.Frame
		want Declarations
	}{
		{
			name: "uniform",
			node: frame(func(fr *figma.Frame) {
				fr.Strokes = []figma.Paint{red}
				fr.StrokeWeight = f(1)
			}),
			want: Declarations{{"border", "1px solid rgba(255,0,0,1)"}},
		},
		{
			name: "dashed",
			node: frame(func(fr *figma.Frame) {
				fr.Strokes = []figma.Paint{red}
				fr.StrokeWeight = f(2)
				fr.StrokeDashes = []float64{4, 4}
			}),
			want: Declarations{{"border", "2px dashed rgba(255,0,0,1)"}},
		},
		{
			name: "individual sides win",
			node: frame(func(fr *figma.Frame) {
				fr.Strokes = []figma.Paint{red}
				fr.StrokeWeight = f(1)
				fr.IndividualStrokeWeights = &figma.StrokeWeights{Top: 1, Bottom: 3}
			}),
			want: Declarations{
				{"border-top", "1px solid rgba(255,0,0,1)"},
				{"border-bottom", "3px solid rgba(255,0,0,1)"},
			},
		},
		{
			name: "no color no border",
			node: frame(func(fr *figma.Frame) {
				fr.StrokeWeight = f(1)
			}),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.node, nil))
		})
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	node := frame(func(fr *figma.Frame) {
		fr.LayoutMode = figma.LayoutHorizontal
		fr.Fills = []figma.Paint{solid(0, 0, 0, 1)}
	})
	before := *node

	_ = Resolve(node, node)
	assert.Equal(t, before, *node)
}

func TestResolveText(t *testing.T) {
	text := &figma.Text{}
	text.Visible = true
	text.Fills = []figma.Paint{solid(0, 0, 0, 1)}
	text.AbsoluteBoundingBox = &figma.Rectangle{Width: f(50), Height: f(20)}
	text.Style = figma.TypeStyle{
		FontFamily:                "Inter",
		FontSize:                  14,
		FontWeight:                600,
		Italic:                    true,
		LetterSpacing:             0.5,
		LineHeightPercentFontSize: 150,
		TextAutoResize:            figma.TextAutoResizeHeight,
		TextAlignHorizontal:       figma.TextAlignCenter,
		TextDecoration:            figma.TextDecorationStrikethrough,
		TextCase:                  figma.TextCaseUpper,
		TextTruncation:            figma.TextTruncationEnding,
		MaxLines:                  f(2),
	}

	assert.Equal(t, Declarations{
		{"color", "rgba(0,0,0,1)"},
		{"font-family", `"Inter"`},
		{"font-size", "14px"},
		{"font-weight", "600"},
		{"font-style", "italic"},
		{"line-height", "1.5"},
		{"letter-spacing", "0.5px"},
		{"width", "50px"},
		{"text-align", "center"},
		{"text-decoration", "line-through"},
		{"text-transform", "uppercase"},
		{"overflow", "hidden"},
		{"text-overflow", "ellipsis"},
		{"display", "-webkit-box"},
		{"-webkit-line-clamp", "2"},
		{"-webkit-box-orient", "vertical"},
	}, ResolveText(text, nil))
}

func TestResolveTextInAutoLayout(t *testing.T) {
	parent := frame(func(fr *figma.Frame) { fr.LayoutMode = figma.LayoutVertical })

	text := &figma.Text{}
	text.Visible = false
	text.LayoutSizingHorizontal = figma.SizingFill
	text.Style = figma.TypeStyle{
		TextCase:       figma.TextCaseSmallCapsForced,
		TextTruncation: figma.TextTruncationEnding,
	}
	text.Style.Fills = []figma.Paint{solid(1, 1, 1, 1)}

	assert.Equal(t, Declarations{
		{"display", "none"},
		{"color", "rgba(255,255,255,1)"},
		{"line-height", "1"},
		{"flex", "1 0 0"},
		{"font-variant", "all-small-caps"},
		{"overflow", "hidden"},
		{"text-overflow", "ellipsis"},
		{"white-space", "nowrap"},
	}, ResolveText(text, parent))
}

func TestDeclarationsSet(t *testing.T) {
	var d Declarations
	d.Set("a", "1")
	d.Set("b", "")
	d.Set("c", "3")
	d.Set("a", "2")

	assert.Equal(t, Declarations{{"a", "2"}, {"c", "3"}}, d)

	d.Set("border", "1px solid red")
	d.Replace("red", "var(--x)", "border")
	v, ok := d.Get("border")
	assert.True(t, ok)
	assert.Equal(t, "1px solid var(--x)", v)
}
