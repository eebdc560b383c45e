package stroke

import (
	"fmt"
	"strings"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/compose"
	"github.com/gogpu/ink/render"
)

// ShapeKind enumerates the shapes a ShapeStroke can draw.
type ShapeKind uint8

// Shape kinds.
const (
	ShapeLine ShapeKind = iota
	ShapeRectangle
	ShapeEllipse
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeLine:
		return "line"
	case ShapeRectangle:
		return "rectangle"
	case ShapeEllipse:
		return "ellipse"
	default:
		return fmt.Sprintf("ShapeKind(%d)", k)
	}
}

// Shape is a geometric shape defined by two points: the ends of a line, or
// opposite corners of the box enclosing a rectangle or ellipse.
type Shape struct {
	Kind       ShapeKind
	Start, End ink.Vec2
}

// Line returns a line shape.
func Line(start, end ink.Vec2) Shape {
	return Shape{Kind: ShapeLine, Start: start, End: end}
}

// Rectangle returns a rectangle shape covering b.
func Rectangle(b ink.Box) Shape {
	return Shape{Kind: ShapeRectangle, Start: b.Min, End: b.Max}
}

// Ellipse returns an ellipse centred on center with the given radii.
func Ellipse(center, radii ink.Vec2) Shape {
	return Shape{Kind: ShapeEllipse, Start: center.Sub(radii), End: center.Add(radii)}
}

// Box returns the box spanned by the shape's defining points.
func (sh Shape) Box() ink.Box {
	return ink.NewBox(sh.Start, sh.End)
}

// ShapeStyle is the style of a shape stroke.
type ShapeStyle struct {
	// Width is the outline width.
	Width float64
	Color ink.Color
	// Fill paints the interior of rectangles and ellipses. Transparent
	// disables filling.
	Fill ink.Color
}

// DefaultShapeStyle returns a 2 unit wide black outline without fill.
func DefaultShapeStyle() ShapeStyle {
	return ShapeStyle{Width: 2, Color: ink.Black, Fill: ink.Transparent}
}

// ShapeStroke draws a single shape.
type ShapeStroke struct {
	shape  Shape
	style  ShapeStyle
	bounds ink.Box
}

// NewShapeStroke creates a shape stroke.
func NewShapeStroke(shape Shape, style ShapeStyle) *ShapeStroke {
	s := &ShapeStroke{shape: shape, style: style}
	s.bounds, _ = s.GenerateBounds()
	return s
}

// Shape returns the shape.
func (s *ShapeStroke) Shape() Shape {
	return s.shape
}

// SetShape replaces the shape. Bounds must be refreshed afterwards.
func (s *ShapeStroke) SetShape(shape Shape) {
	s.shape = shape
}

// Style returns the style.
func (s *ShapeStroke) Style() ShapeStyle {
	return s.style
}

// SetStyle replaces the style. Bounds must be refreshed afterwards.
func (s *ShapeStroke) SetStyle(style ShapeStyle) {
	s.style = style
}

func (s *ShapeStroke) margin() float64 {
	return s.style.Width / 2
}

// Bounds implements Behaviour.
func (s *ShapeStroke) Bounds() ink.Box { return s.bounds }

// SetBounds implements Behaviour.
func (s *ShapeStroke) SetBounds(b ink.Box) { s.bounds = b }

// GenerateBounds implements Behaviour.
func (s *ShapeStroke) GenerateBounds() (ink.Box, bool) {
	return generateBounds(s)
}

// Translate implements Behaviour.
func (s *ShapeStroke) Translate(offset ink.Vec2) {
	s.shape.Start = s.shape.Start.Add(offset)
	s.shape.End = s.shape.End.Add(offset)
	s.bounds = s.bounds.Translate(offset)
}

// Resize implements Behaviour.
func (s *ShapeStroke) Resize(newBounds ink.Box) {
	target := resizeTarget(newBounds, s.margin())
	m := ink.BoxTransform(s.shape.Box(), target)
	s.shape.Start = clampInto(m.TransformPoint(s.shape.Start), target)
	s.shape.End = clampInto(m.TransformPoint(s.shape.End), target)
	s.bounds = newBounds
}

// GenerateFragments implements Behaviour.
func (s *ShapeStroke) GenerateFragments(offset ink.Vec2) ([]render.Fragment, error) {
	start, end := s.shape.Start.Add(offset), s.shape.End.Add(offset)
	b := ink.NewBox(start, end)

	var sb strings.Builder
	switch s.shape.Kind {
	case ShapeRectangle:
		sb.WriteString("<rect")
		compose.NumAttr(&sb, "x", b.Min.X)
		compose.NumAttr(&sb, "y", b.Min.Y)
		compose.NumAttr(&sb, "width", b.Width())
		compose.NumAttr(&sb, "height", b.Height())
		s.writePaint(&sb, true)
		compose.Attr(&sb, "stroke-linejoin", "round")
	case ShapeEllipse:
		c := b.Center()
		sb.WriteString("<ellipse")
		compose.NumAttr(&sb, "cx", c.X)
		compose.NumAttr(&sb, "cy", c.Y)
		compose.NumAttr(&sb, "rx", b.Width()/2)
		compose.NumAttr(&sb, "ry", b.Height()/2)
		s.writePaint(&sb, true)
	default:
		sb.WriteString("<line")
		compose.NumAttr(&sb, "x1", start.X)
		compose.NumAttr(&sb, "y1", start.Y)
		compose.NumAttr(&sb, "x2", end.X)
		compose.NumAttr(&sb, "y2", end.Y)
		s.writePaint(&sb, false)
		compose.Attr(&sb, "stroke-linecap", "round")
	}
	sb.WriteString("/>")

	return []render.Fragment{{Data: sb.String(), Bounds: b.Loosen(s.margin())}}, nil
}

func (s *ShapeStroke) writePaint(sb *strings.Builder, closed bool) {
	if closed {
		compose.Paint(sb, "fill", s.style.Fill)
	}
	compose.Paint(sb, "stroke", s.style.Color)
	compose.NumAttr(sb, "stroke-width", s.style.Width)
}

// GenerateRasterImage implements Behaviour.
func (s *ShapeStroke) GenerateRasterImage(zoom float64, backend render.Backend) (*render.Image, error) {
	return generateRasterImage(s, s.bounds, zoom, backend)
}

func (s *ShapeStroke) clone() *ShapeStroke {
	c := *s
	return &c
}
