package stroke

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/compose"
	"github.com/gogpu/ink/render"
)

// PressureCurve maps a sample pressure to a width factor in [0, 1].
type PressureCurve uint8

// Pressure curves.
const (
	PressureLinear PressureCurve = iota
	PressureSqrt
	PressureCbrt
	// PressureConst ignores pressure.
	PressureConst
)

var pressureCurveNames = [...]string{
	PressureLinear: "linear",
	PressureSqrt:   "sqrt",
	PressureCbrt:   "cbrt",
	PressureConst:  "const",
}

// String returns the curve name.
func (c PressureCurve) String() string {
	if int(c) < len(pressureCurveNames) {
		return pressureCurveNames[c]
	}
	return fmt.Sprintf("PressureCurve(%d)", c)
}

// ParsePressureCurve parses a curve name as returned by String.
func ParsePressureCurve(s string) (PressureCurve, error) {
	for i, name := range pressureCurveNames {
		if strings.EqualFold(s, name) {
			return PressureCurve(i), nil
		}
	}
	return 0, fmt.Errorf("stroke: unknown pressure curve %q", s)
}

// Apply returns the width factor for pressure p.
func (c PressureCurve) Apply(p float64) float64 {
	p = clampPressure(p)
	switch c {
	case PressureSqrt:
		return math.Sqrt(p)
	case PressureCbrt:
		return math.Cbrt(p)
	case PressureConst:
		return 1
	default:
		return p
	}
}

// BrushStyle is the style of a brush stroke.
type BrushStyle struct {
	// Width is the width at full pressure.
	Width         float64
	Color         ink.Color
	PressureCurve PressureCurve
}

// DefaultBrushStyle returns a 6 unit wide black brush with a linear curve.
func DefaultBrushStyle() BrushStyle {
	return BrushStyle{Width: 6, Color: ink.Black, PressureCurve: PressureLinear}
}

// BrushStroke is a pressure sensitive stroke. Each segment between two
// elements is drawn with the width given by the curve at the mean pressure
// of its ends.
type BrushStroke struct {
	elements []Element
	style    BrushStyle
	bounds   ink.Box
}

// NewBrushStroke starts a brush stroke at first.
func NewBrushStroke(first Element, style BrushStyle) *BrushStroke {
	return NewBrushStrokeFromElements([]Element{first}, style)
}

// NewBrushStrokeFromElements creates a brush stroke through elements.
func NewBrushStrokeFromElements(elements []Element, style BrushStyle) *BrushStroke {
	s := &BrushStroke{elements: append([]Element(nil), elements...), style: style}
	s.bounds, _ = s.GenerateBounds()
	return s
}

// Elements returns the elements of the stroke. The slice must not be modified.
func (s *BrushStroke) Elements() []Element {
	return s.elements
}

// Style returns the style.
func (s *BrushStroke) Style() BrushStyle {
	return s.style
}

// SetStyle replaces the style. Bounds must be refreshed afterwards.
func (s *BrushStroke) SetStyle(style BrushStyle) {
	s.style = style
}

// PushElem appends an element and grows the cached bounds to cover it.
func (s *BrushStroke) PushElem(e Element) {
	s.elements = append(s.elements, e)
	eb := pointBox(e.pos, s.margin()).Ceil()
	if len(s.elements) == 1 {
		s.bounds = eb
		return
	}
	s.bounds = s.bounds.Merge(eb)
}

// margin is the same for every segment so Resize stays exact.
func (s *BrushStroke) margin() float64 {
	return s.style.Width / 2
}

// Bounds implements Behaviour.
func (s *BrushStroke) Bounds() ink.Box { return s.bounds }

// SetBounds implements Behaviour.
func (s *BrushStroke) SetBounds(b ink.Box) { s.bounds = b }

// GenerateBounds implements Behaviour.
func (s *BrushStroke) GenerateBounds() (ink.Box, bool) {
	return generateBounds(s)
}

// Translate implements Behaviour.
func (s *BrushStroke) Translate(offset ink.Vec2) {
	translateElements(s.elements, offset)
	s.bounds = s.bounds.Translate(offset)
}

// Resize implements Behaviour. An empty stroke has no bounds to resize
// and is left unchanged.
func (s *BrushStroke) Resize(newBounds ink.Box) {
	if len(s.elements) == 0 {
		return
	}
	fitElements(s.elements, resizeTarget(newBounds, s.margin()))
	s.bounds = newBounds
}

// GenerateFragments implements Behaviour. It returns one fragment per
// segment, or a single dot for a one element stroke.
func (s *BrushStroke) GenerateFragments(offset ink.Vec2) ([]render.Fragment, error) {
	switch len(s.elements) {
	case 0:
		return nil, nil
	case 1:
		e := s.elements[0]
		p := e.pos.Add(offset)
		var sb strings.Builder
		sb.WriteString("<circle")
		compose.NumAttr(&sb, "cx", p.X)
		compose.NumAttr(&sb, "cy", p.Y)
		compose.NumAttr(&sb, "r", s.segmentWidth(e.pressure, e.pressure)/2)
		compose.Paint(&sb, "fill", s.style.Color)
		sb.WriteString("/>")
		return []render.Fragment{{Data: sb.String(), Bounds: pointBox(p, s.margin())}}, nil
	}

	frags := make([]render.Fragment, 0, len(s.elements)-1)
	for i := 1; i < len(s.elements); i++ {
		e0, e1 := s.elements[i-1], s.elements[i]
		p0, p1 := e0.pos.Add(offset), e1.pos.Add(offset)

		var sb strings.Builder
		sb.WriteString("<path")
		compose.Attr(&sb, "d", compose.PathData([]ink.Vec2{p0, p1}))
		compose.Attr(&sb, "fill", "none")
		compose.Paint(&sb, "stroke", s.style.Color)
		compose.NumAttr(&sb, "stroke-width", s.segmentWidth(e0.pressure, e1.pressure))
		compose.Attr(&sb, "stroke-linecap", "round")
		sb.WriteString("/>")

		frags = append(frags, render.Fragment{
			Data:   sb.String(),
			Bounds: ink.NewBox(p0, p1).Loosen(s.margin()),
		})
	}
	return frags, nil
}

func (s *BrushStroke) segmentWidth(p0, p1 float64) float64 {
	return s.style.Width * s.style.PressureCurve.Apply((p0+p1)/2)
}

// GenerateRasterImage implements Behaviour.
func (s *BrushStroke) GenerateRasterImage(zoom float64, backend render.Backend) (*render.Image, error) {
	return generateRasterImage(s, s.bounds, zoom, backend)
}

func (s *BrushStroke) clone() *BrushStroke {
	c := *s
	c.elements = append([]Element(nil), s.elements...)
	return &c
}
