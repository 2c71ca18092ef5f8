package figma

// LayoutMode is the auto-layout direction of a frame. The zero value is treated as NONE.
type LayoutMode string

const (
	LayoutNone       LayoutMode = "NONE"
	LayoutHorizontal LayoutMode = "HORIZONTAL"
	LayoutVertical   LayoutMode = "VERTICAL"
)

// IsAutoLayout reports whether the frame lays out its children in a row or column.
func (m LayoutMode) IsAutoLayout() bool {
	return m == LayoutHorizontal || m == LayoutVertical
}

// IsNone reports whether the frame uses free-form positioning.
func (m LayoutMode) IsNone() bool {
	return !m.IsAutoLayout()
}

// LayoutSizing is the per-axis sizing behaviour of a node. The zero value means unset.
type LayoutSizing string

const (
	SizingHug   LayoutSizing = "HUG"
	SizingFixed LayoutSizing = "FIXED"
	SizingFill  LayoutSizing = "FILL"
)

// AxisSizingMode only applies to auto-layout frames. The zero value is treated as AUTO.
type AxisSizingMode string

const (
	AxisSizingFixed AxisSizingMode = "FIXED"
	AxisSizingAuto  AxisSizingMode = "AUTO"
)

// LayoutAlignItems aligns children along the primary or counter axis.
// The zero value is treated as MIN.
type LayoutAlignItems string

const (
	AlignMin          LayoutAlignItems = "MIN"
	AlignCenter       LayoutAlignItems = "CENTER"
	AlignMax          LayoutAlignItems = "MAX"
	AlignSpaceBetween LayoutAlignItems = "SPACE_BETWEEN"
	AlignBaseline     LayoutAlignItems = "BASELINE"
)

// LayoutAlignContent distributes wrapped tracks. The zero value is treated as AUTO.
type LayoutAlignContent string

const (
	AlignContentAuto         LayoutAlignContent = "AUTO"
	AlignContentSpaceBetween LayoutAlignContent = "SPACE_BETWEEN"
)

// LayoutWrap controls wrapping of auto-layout children. The zero value is treated as NO_WRAP.
type LayoutWrap string

const (
	WrapNone LayoutWrap = "NO_WRAP"
	Wrap     LayoutWrap = "WRAP"
)

// LayoutAlign is how a child aligns itself inside an auto-layout parent.
// The zero value is treated as INHERIT.
type LayoutAlign string

const (
	LayoutAlignInherit LayoutAlign = "INHERIT"
	LayoutAlignStretch LayoutAlign = "STRETCH"
	LayoutAlignMin     LayoutAlign = "MIN"
	LayoutAlignCenter  LayoutAlign = "CENTER"
	LayoutAlignMax     LayoutAlign = "MAX"
)

// LayoutPositioning is AUTO for flowed children and ABSOLUTE for children that opt out of auto-layout.
type LayoutPositioning string

const (
	PositioningAuto     LayoutPositioning = "AUTO"
	PositioningAbsolute LayoutPositioning = "ABSOLUTE"
)
