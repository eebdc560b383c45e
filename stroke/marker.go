package stroke

import (
	"strings"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/compose"
	"github.com/gogpu/ink/render"
)

// MarkerStyle is the style of a marker stroke.
type MarkerStyle struct {
	// Width is the stroke width in canvas units.
	Width float64
	Color ink.Color
}

// DefaultMarkerStyle returns a 2 unit wide black marker.
func DefaultMarkerStyle() MarkerStyle {
	return MarkerStyle{Width: 2, Color: ink.Black}
}

// MarkerStroke is a constant width stroke through its elements, drawn with
// round caps and joins.
type MarkerStroke struct {
	elements []Element
	style    MarkerStyle
	bounds   ink.Box
}

// NewMarkerStroke starts a marker stroke at first.
func NewMarkerStroke(first Element, style MarkerStyle) *MarkerStroke {
	s := &MarkerStroke{elements: []Element{first}, style: style}
	s.bounds, _ = s.GenerateBounds()
	return s
}

// NewMarkerStrokeFromElements creates a marker stroke through elements.
func NewMarkerStrokeFromElements(elements []Element, style MarkerStyle) *MarkerStroke {
	s := &MarkerStroke{elements: append([]Element(nil), elements...), style: style}
	s.bounds, _ = s.GenerateBounds()
	return s
}

// Elements returns the elements of the stroke. The slice must not be modified.
func (s *MarkerStroke) Elements() []Element {
	return s.elements
}

// Style returns the style.
func (s *MarkerStroke) Style() MarkerStyle {
	return s.style
}

// SetStyle replaces the style. Bounds must be refreshed afterwards.
func (s *MarkerStroke) SetStyle(style MarkerStyle) {
	s.style = style
}

// PushElem appends an element and grows the cached bounds to cover it.
func (s *MarkerStroke) PushElem(e Element) {
	s.elements = append(s.elements, e)
	eb := pointBox(e.pos, s.margin()).Ceil()
	if len(s.elements) == 1 {
		s.bounds = eb
		return
	}
	s.bounds = s.bounds.Merge(eb)
}

func (s *MarkerStroke) margin() float64 {
	return s.style.Width / 2
}

// Bounds implements Behaviour.
func (s *MarkerStroke) Bounds() ink.Box { return s.bounds }

// SetBounds implements Behaviour.
func (s *MarkerStroke) SetBounds(b ink.Box) { s.bounds = b }

// GenerateBounds implements Behaviour.
func (s *MarkerStroke) GenerateBounds() (ink.Box, bool) {
	return generateBounds(s)
}

// Translate implements Behaviour.
func (s *MarkerStroke) Translate(offset ink.Vec2) {
	translateElements(s.elements, offset)
	s.bounds = s.bounds.Translate(offset)
}

// Resize implements Behaviour. An empty stroke has no bounds to resize
// and is left unchanged.
func (s *MarkerStroke) Resize(newBounds ink.Box) {
	if len(s.elements) == 0 {
		return
	}
	fitElements(s.elements, resizeTarget(newBounds, s.margin()))
	s.bounds = newBounds
}

// GenerateFragments implements Behaviour. A stroke of a single element is
// a dot; an empty stroke has no fragments.
func (s *MarkerStroke) GenerateFragments(offset ink.Vec2) ([]render.Fragment, error) {
	if len(s.elements) == 0 {
		return nil, nil
	}

	pts := positions(s.elements)
	for i := range pts {
		pts[i] = pts[i].Add(offset)
	}
	hull, _ := ink.BoxFromPoints(pts...)

	var sb strings.Builder
	if len(pts) == 1 {
		sb.WriteString("<circle")
		compose.NumAttr(&sb, "cx", pts[0].X)
		compose.NumAttr(&sb, "cy", pts[0].Y)
		compose.NumAttr(&sb, "r", s.margin())
		compose.Paint(&sb, "fill", s.style.Color)
		sb.WriteString("/>")
	} else {
		sb.WriteString("<path")
		compose.Attr(&sb, "d", compose.PathData(pts))
		compose.Attr(&sb, "fill", "none")
		compose.Paint(&sb, "stroke", s.style.Color)
		compose.NumAttr(&sb, "stroke-width", s.style.Width)
		compose.Attr(&sb, "stroke-linecap", "round")
		compose.Attr(&sb, "stroke-linejoin", "round")
		sb.WriteString("/>")
	}

	return []render.Fragment{{Data: sb.String(), Bounds: hull.Loosen(s.margin())}}, nil
}

// GenerateRasterImage implements Behaviour.
func (s *MarkerStroke) GenerateRasterImage(zoom float64, backend render.Backend) (*render.Image, error) {
	return generateRasterImage(s, s.bounds, zoom, backend)
}

func (s *MarkerStroke) clone() *MarkerStroke {
	c := *s
	c.elements = append([]Element(nil), s.elements...)
	return &c
}

func pointBox(p ink.Vec2, margin float64) ink.Box {
	return ink.Box{Min: p, Max: p}.Loosen(margin)
}
