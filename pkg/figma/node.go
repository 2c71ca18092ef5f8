package figma

import (
	"encoding/json"
	"fmt"
)

// NodeType is the discriminating "type" tag of a document node.
type NodeType string

const (
	TypeDocument         NodeType = "DOCUMENT"
	TypeCanvas           NodeType = "CANVAS"
	TypeFrame            NodeType = "FRAME"
	TypeGroup            NodeType = "GROUP"
	TypeComponent        NodeType = "COMPONENT"
	TypeComponentSet     NodeType = "COMPONENT_SET"
	TypeInstance         NodeType = "INSTANCE"
	TypeVector           NodeType = "VECTOR"
	TypeBooleanOperation NodeType = "BOOLEAN_OPERATION"
	TypeStar             NodeType = "STAR"
	TypeLine             NodeType = "LINE"
	TypeEllipse          NodeType = "ELLIPSE"
	TypeRegularPolygon   NodeType = "REGULAR_POLYGON"
	TypeRectangle        NodeType = "RECTANGLE"
	TypeText             NodeType = "TEXT"
	TypeSlice            NodeType = "SLICE"
)

// Node is one element of the document tree. The concrete type is one of
// *Document, *Canvas, *Frame, *Instance, *VectorNode, *Text, *Slice or *Other.
type Node interface {
	// Common exposes the fields every node kind shares.
	Common() *NodeCommon
	node()
}

// NodeCommon holds the fields every node kind carries.
type NodeCommon struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     NodeType `json:"type"`
	Visible  bool     `json:"visible"`
	Children Nodes    `json:"children,omitempty"`
}

// Common implements Node.
func (c *NodeCommon) Common() *NodeCommon { return c }

// Document is the root of the tree; its children are the pages.
type Document struct {
	NodeCommon
}

// Canvas is a page.
type Canvas struct {
	NodeCommon
	BackgroundColor *Color `json:"backgroundColor,omitempty"`
}

// Appearance groups the paint, effect and style reference fields shared by frame-like
// and vector-like nodes.
type Appearance struct {
	Fills                   []Paint           `json:"fills,omitempty"`
	Strokes                 []Paint           `json:"strokes,omitempty"`
	StrokeWeight            *float64          `json:"strokeWeight,omitempty"`
	StrokeAlign             string            `json:"strokeAlign,omitempty"`
	StrokeDashes            []float64         `json:"strokeDashes,omitempty"`
	IndividualStrokeWeights *StrokeWeights    `json:"individualStrokeWeights,omitempty"`
	Effects                 []Effect          `json:"effects,omitempty"`
	Opacity                 *float64          `json:"opacity,omitempty"`
	BlendMode               string            `json:"blendMode,omitempty"`
	Styles                  map[string]string `json:"styles,omitempty"`
}

// Placement groups the fields describing how a node sits inside its parent.
type Placement struct {
	AbsoluteBoundingBox    *Rectangle        `json:"absoluteBoundingBox,omitempty"`
	Constraints            *LayoutConstraint `json:"constraints,omitempty"`
	LayoutAlign            LayoutAlign       `json:"layoutAlign,omitempty"`
	LayoutGrow             float64           `json:"layoutGrow,omitempty"`
	LayoutPositioning      LayoutPositioning `json:"layoutPositioning,omitempty"`
	LayoutSizingHorizontal LayoutSizing      `json:"layoutSizingHorizontal,omitempty"`
	LayoutSizingVertical   LayoutSizing      `json:"layoutSizingVertical,omitempty"`
	Rotation               *float64          `json:"rotation,omitempty"`
	CornerRadius           *float64          `json:"cornerRadius,omitempty"`
	RectangleCornerRadii   *[4]float64       `json:"rectangleCornerRadii,omitempty"`
	MinWidth               *float64          `json:"minWidth,omitempty"`
	MaxWidth               *float64          `json:"maxWidth,omitempty"`
	MinHeight              *float64          `json:"minHeight,omitempty"`
	MaxHeight              *float64          `json:"maxHeight,omitempty"`
}

// Frame is the shared shape of FRAME, GROUP, COMPONENT and COMPONENT_SET nodes.
// The corner radius tuple is ordered top-left, top-right, bottom-right, bottom-left.
type Frame struct {
	NodeCommon
	Appearance
	Placement

	ClipsContent            bool               `json:"clipsContent,omitempty"`
	LayoutMode              LayoutMode         `json:"layoutMode,omitempty"`
	LayoutWrap              LayoutWrap         `json:"layoutWrap,omitempty"`
	PrimaryAxisSizingMode   AxisSizingMode     `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode   AxisSizingMode     `json:"counterAxisSizingMode,omitempty"`
	PrimaryAxisAlignItems   LayoutAlignItems   `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems   LayoutAlignItems   `json:"counterAxisAlignItems,omitempty"`
	CounterAxisAlignContent LayoutAlignContent `json:"counterAxisAlignContent,omitempty"`
	PaddingLeft             float64            `json:"paddingLeft,omitempty"`
	PaddingRight            float64            `json:"paddingRight,omitempty"`
	PaddingTop              float64            `json:"paddingTop,omitempty"`
	PaddingBottom           float64            `json:"paddingBottom,omitempty"`
	ItemSpacing             *float64           `json:"itemSpacing,omitempty"`
	CounterAxisSpacing      *float64           `json:"counterAxisSpacing,omitempty"`
}

// IsComponentSet reports whether the frame groups the variants of a component.
func (f *Frame) IsComponentSet() bool { return f.Type == TypeComponentSet }

// IsComponent reports whether the frame is a component definition.
func (f *Frame) IsComponent() bool { return f.Type == TypeComponent }

// Instance is a placed copy of a component. ComponentID may not resolve in the
// component table.
type Instance struct {
	Frame
	ComponentID string `json:"componentId"`
}

// VectorNode is the shared shape of vector primitives (rectangles, ellipses, lines, ...).
type VectorNode struct {
	NodeCommon
	Appearance
	Placement
}

// Text is a vector node carrying characters and a text style.
type Text struct {
	VectorNode
	Characters string    `json:"characters"`
	Style      TypeStyle `json:"style"`
}

// Slice is an export region; it has no visual properties.
type Slice struct {
	NodeCommon
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
}

// Other holds node kinds this package does not model (sections, stickies, widgets...).
// Its children are still decoded so traversals see the whole tree.
type Other struct {
	NodeCommon
}

func (*Document) node()   {}
func (*Canvas) node()     {}
func (*Frame) node()      {}
func (*VectorNode) node() {}
func (*Slice) node()      {}
func (*Other) node()      {}

// FrameOf returns the frame shape of frame-like nodes, instances included.
func FrameOf(n Node) (*Frame, bool) {
	switch v := n.(type) {
	case *Frame:
		return v, true
	case *Instance:
		return &v.Frame, true
	default:
		return nil, false
	}
}

// AppearanceOf returns the paint, effect and style reference fields of a node.
func AppearanceOf(n Node) (*Appearance, bool) {
	switch v := n.(type) {
	case *Frame:
		return &v.Appearance, true
	case *Instance:
		return &v.Appearance, true
	case *VectorNode:
		return &v.Appearance, true
	case *Text:
		return &v.Appearance, true
	default:
		return nil, false
	}
}

// Nodes is an ordered list of child nodes. Order is traversal and emission order.
type Nodes []Node

// UnmarshalJSON decodes each element into its concrete node type.
func (ns *Nodes) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Nodes, 0, len(raw))
	for i, r := range raw {
		n, err := DecodeNode(r)
		if err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
		out = append(out, n)
	}
	*ns = out
	return nil
}

// DecodeNode decodes a single node, picking the concrete type from its "type" tag.
// Unknown tags decode into *Other.
func DecodeNode(data []byte) (Node, error) {
	var head struct {
		Type    NodeType `json:"type"`
		Visible *bool    `json:"visible"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	var n Node
	switch head.Type {
	case TypeDocument:
		n = &Document{}
	case TypeCanvas:
		n = &Canvas{}
	case TypeFrame, TypeGroup, TypeComponent, TypeComponentSet:
		n = &Frame{}
	case TypeInstance:
		n = &Instance{}
	case TypeVector, TypeBooleanOperation, TypeStar, TypeLine, TypeEllipse, TypeRegularPolygon, TypeRectangle:
		n = &VectorNode{}
	case TypeText:
		n = &Text{}
	case TypeSlice:
		n = &Slice{}
	default:
		n = &Other{}
	}

	if err := json.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("decode %s node: %w", head.Type, err)
	}

	// visible defaults to true when the document omits it.
	n.Common().Visible = head.Visible == nil || *head.Visible
	return n, nil
}

// UnmarshalJSON decodes the document root into its concrete node type.
func (f *File) UnmarshalJSON(data []byte) error {
	type alias File
	aux := struct {
		*alias
		Document json.RawMessage `json:"document"`
	}{alias: (*alias)(f)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.Document) == 0 {
		return nil
	}

	doc, err := DecodeNode(aux.Document)
	if err != nil {
		return fmt.Errorf("document: %w", err)
	}
	f.Document = doc
	return nil
}

// ParseFile decodes a Figma file API response.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Walk calls fn for n and every descendant in depth-first, document order.
// Returning false from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Common().Children {
		Walk(child, fn)
	}
}
