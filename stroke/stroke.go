package stroke

import (
	"fmt"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/render"
)

// Kind identifies the variant held by a Stroke.
type Kind uint8

// Stroke kinds. The set is closed.
const (
	KindMarkerStroke Kind = iota
	KindBrushStroke
	KindShapeStroke
	KindVectorImage
	KindBitmapImage
)

// DefaultKind is the kind of the zero Stroke and of DefaultStroke.
const DefaultKind = KindMarkerStroke

func (k Kind) String() string {
	switch k {
	case KindMarkerStroke:
		return "marker stroke"
	case KindBrushStroke:
		return "brush stroke"
	case KindShapeStroke:
		return "shape stroke"
	case KindVectorImage:
		return "vector image"
	case KindBitmapImage:
		return "bitmap image"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Stroke holds exactly one stroke variant and forwards every Behaviour
// call to it.
//
// The zero Stroke is an empty marker stroke with the default style. A Stroke
// owns its variant: copying a Stroke value shares the variant, use Clone for
// an independent copy.
type Stroke struct {
	kind   Kind
	marker *MarkerStroke
	brush  *BrushStroke
	shape  *ShapeStroke
	vector *VectorImage
	bitmap *BitmapImage
}

var _ Behaviour = (*Stroke)(nil)

// DefaultStroke returns an empty marker stroke with the default style.
func DefaultStroke() Stroke {
	return FromMarkerStroke(&MarkerStroke{style: DefaultMarkerStyle()})
}

// FromMarkerStroke wraps a marker stroke. A nil s holds an empty marker
// stroke with the default style.
func FromMarkerStroke(s *MarkerStroke) Stroke {
	return Stroke{kind: KindMarkerStroke, marker: s}
}

// FromBrushStroke wraps a brush stroke. A nil s holds an empty brush
// stroke with the default style.
func FromBrushStroke(s *BrushStroke) Stroke {
	if s == nil {
		s = &BrushStroke{style: DefaultBrushStyle()}
	}
	return Stroke{kind: KindBrushStroke, brush: s}
}

// FromShapeStroke wraps a shape stroke. A nil s holds a zero length line
// at the origin with the default style.
func FromShapeStroke(s *ShapeStroke) Stroke {
	if s == nil {
		s = NewShapeStroke(Shape{}, DefaultShapeStyle())
	}
	return Stroke{kind: KindShapeStroke, shape: s}
}

// FromVectorImage wraps a vector image. A nil s holds the zero
// VectorImage.
func FromVectorImage(s *VectorImage) Stroke {
	if s == nil {
		s = &VectorImage{}
	}
	return Stroke{kind: KindVectorImage, vector: s}
}

// FromBitmapImage wraps a bitmap image. A nil s holds the zero
// BitmapImage.
func FromBitmapImage(s *BitmapImage) Stroke {
	if s == nil {
		s = &BitmapImage{}
	}
	return Stroke{kind: KindBitmapImage, bitmap: s}
}

// Kind returns the kind of the held variant.
func (s *Stroke) Kind() Kind {
	return s.kind
}

// MarkerStroke returns the held marker stroke.
func (s *Stroke) MarkerStroke() (*MarkerStroke, bool) {
	if s.kind != KindMarkerStroke {
		return nil, false
	}
	return s.markerStroke(), true
}

// BrushStroke returns the held brush stroke.
func (s *Stroke) BrushStroke() (*BrushStroke, bool) {
	return s.brush, s.kind == KindBrushStroke
}

// ShapeStroke returns the held shape stroke.
func (s *Stroke) ShapeStroke() (*ShapeStroke, bool) {
	return s.shape, s.kind == KindShapeStroke
}

// VectorImage returns the held vector image.
func (s *Stroke) VectorImage() (*VectorImage, bool) {
	return s.vector, s.kind == KindVectorImage
}

// BitmapImage returns the held bitmap image.
func (s *Stroke) BitmapImage() (*BitmapImage, bool) {
	return s.bitmap, s.kind == KindBitmapImage
}

// markerStroke materializes the default marker of a zero Stroke.
func (s *Stroke) markerStroke() *MarkerStroke {
	if s.marker == nil {
		s.marker = &MarkerStroke{style: DefaultMarkerStyle()}
	}
	return s.marker
}

// Bounds implements Behaviour.
func (s *Stroke) Bounds() ink.Box {
	switch s.kind {
	case KindBrushStroke:
		return s.brush.Bounds()
	case KindShapeStroke:
		return s.shape.Bounds()
	case KindVectorImage:
		return s.vector.Bounds()
	case KindBitmapImage:
		return s.bitmap.Bounds()
	default:
		return s.markerStroke().Bounds()
	}
}

// SetBounds implements Behaviour.
func (s *Stroke) SetBounds(b ink.Box) {
	switch s.kind {
	case KindBrushStroke:
		s.brush.SetBounds(b)
	case KindShapeStroke:
		s.shape.SetBounds(b)
	case KindVectorImage:
		s.vector.SetBounds(b)
	case KindBitmapImage:
		s.bitmap.SetBounds(b)
	default:
		s.markerStroke().SetBounds(b)
	}
}

// GenerateBounds implements Behaviour.
func (s *Stroke) GenerateBounds() (ink.Box, bool) {
	switch s.kind {
	case KindBrushStroke:
		return s.brush.GenerateBounds()
	case KindShapeStroke:
		return s.shape.GenerateBounds()
	case KindVectorImage:
		return s.vector.GenerateBounds()
	case KindBitmapImage:
		return s.bitmap.GenerateBounds()
	default:
		return s.markerStroke().GenerateBounds()
	}
}

// Translate implements Behaviour.
func (s *Stroke) Translate(offset ink.Vec2) {
	switch s.kind {
	case KindBrushStroke:
		s.brush.Translate(offset)
	case KindShapeStroke:
		s.shape.Translate(offset)
	case KindVectorImage:
		s.vector.Translate(offset)
	case KindBitmapImage:
		s.bitmap.Translate(offset)
	default:
		s.markerStroke().Translate(offset)
	}
}

// Resize implements Behaviour.
func (s *Stroke) Resize(newBounds ink.Box) {
	switch s.kind {
	case KindBrushStroke:
		s.brush.Resize(newBounds)
	case KindShapeStroke:
		s.shape.Resize(newBounds)
	case KindVectorImage:
		s.vector.Resize(newBounds)
	case KindBitmapImage:
		s.bitmap.Resize(newBounds)
	default:
		s.markerStroke().Resize(newBounds)
	}
}

// GenerateFragments implements Behaviour.
func (s *Stroke) GenerateFragments(offset ink.Vec2) ([]render.Fragment, error) {
	switch s.kind {
	case KindBrushStroke:
		return s.brush.GenerateFragments(offset)
	case KindShapeStroke:
		return s.shape.GenerateFragments(offset)
	case KindVectorImage:
		return s.vector.GenerateFragments(offset)
	case KindBitmapImage:
		return s.bitmap.GenerateFragments(offset)
	default:
		return s.markerStroke().GenerateFragments(offset)
	}
}

// GenerateRasterImage implements Behaviour.
func (s *Stroke) GenerateRasterImage(zoom float64, backend render.Backend) (*render.Image, error) {
	switch s.kind {
	case KindBrushStroke:
		return s.brush.GenerateRasterImage(zoom, backend)
	case KindShapeStroke:
		return s.shape.GenerateRasterImage(zoom, backend)
	case KindVectorImage:
		return s.vector.GenerateRasterImage(zoom, backend)
	case KindBitmapImage:
		return s.bitmap.GenerateRasterImage(zoom, backend)
	default:
		return s.markerStroke().GenerateRasterImage(zoom, backend)
	}
}

// Clone returns a deep copy of the stroke, e.g. for undo snapshots.
func (s *Stroke) Clone() Stroke {
	switch s.kind {
	case KindBrushStroke:
		return FromBrushStroke(s.brush.clone())
	case KindShapeStroke:
		return FromShapeStroke(s.shape.clone())
	case KindVectorImage:
		return FromVectorImage(s.vector.clone())
	case KindBitmapImage:
		return FromBitmapImage(s.bitmap.clone())
	default:
		return FromMarkerStroke(s.markerStroke().clone())
	}
}

// BoundsOf merges the cached bounds of strokes. It returns false for an
// empty collection.
func BoundsOf(strokes []Stroke) (ink.Box, bool) {
	if len(strokes) == 0 {
		return ink.Box{}, false
	}
	b := strokes[0].Bounds()
	for i := range strokes[1:] {
		b = b.Merge(strokes[i+1].Bounds())
	}
	return b, true
}
