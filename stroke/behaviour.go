package stroke

import (
	"math"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/compose"
	"github.com/gogpu/ink/render"
)

// Behaviour is the contract shared by every stroke variant and by Stroke.
type Behaviour interface {
	// Bounds returns the cached bounds without recomputing them.
	Bounds() ink.Box

	// SetBounds overwrites the cached bounds, leaving content untouched.
	SetBounds(b ink.Box)

	// GenerateBounds recomputes the bounds from the fragments generated at
	// a zero offset: their boxes merged and expanded onto the integer grid.
	// It returns false when the stroke generates no fragments.
	GenerateBounds() (ink.Box, bool)

	// Translate shifts content and cached bounds by offset.
	Translate(offset ink.Vec2)

	// Resize maps content so that its bounds become newBounds and sets the
	// cached bounds to newBounds. Aspect ratio is not preserved.
	Resize(newBounds ink.Box)

	// GenerateFragments returns the vector fragments of the stroke as if
	// its origin were shifted by offset. Equal content and offset always
	// give byte-identical output. The only failure is an
	// *UnsupportedContentError.
	GenerateFragments(offset ink.Vec2) ([]render.Fragment, error)

	// GenerateRasterImage renders the stroke at zoom with backend.
	GenerateRasterImage(zoom float64, backend render.Backend) (*render.Image, error)
}

type fragmentGenerator interface {
	GenerateFragments(offset ink.Vec2) ([]render.Fragment, error)
}

func generateBounds(g fragmentGenerator) (ink.Box, bool) {
	frags, err := g.GenerateFragments(ink.Vec2{})
	if err != nil {
		ink.Logger().Warn("stroke: bounds unavailable", "error", err)
		return ink.Box{}, false
	}
	b, ok := render.FragmentsBounds(frags)
	if !ok {
		return ink.Box{}, false
	}
	return b.Ceil(), true
}

// generateRasterImage wraps every fragment into a standalone document whose
// content box and viewport are bounds, then renders them.
func generateRasterImage(g fragmentGenerator, bounds ink.Box, zoom float64, backend render.Backend) (*render.Image, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	frags, err := g.GenerateFragments(ink.Vec2{})
	if err != nil {
		return nil, err
	}
	for i := range frags {
		frags[i].Data = compose.WrapFragment(frags[i].Data, &bounds, &bounds, true, false)
	}
	return backend.GenerateImage(zoom, frags, bounds)
}

// resizeTarget is the box content is mapped onto during Resize: newBounds
// minus the padding the variant adds around its content. Its edges are
// nudged inward until adding the margin back stays within newBounds.
func resizeTarget(newBounds ink.Box, margin float64) ink.Box {
	inner := newBounds.Tighten(margin)
	if margin <= 0 {
		return inner
	}
	if inner.Width() > 0 {
		inner.Min.X, inner.Max.X = innerEdges(inner.Min.X, inner.Max.X, margin, newBounds.Min.X, newBounds.Max.X)
	}
	if inner.Height() > 0 {
		inner.Min.Y, inner.Max.Y = innerEdges(inner.Min.Y, inner.Max.Y, margin, newBounds.Min.Y, newBounds.Max.Y)
	}
	return inner
}

func innerEdges(lo, hi, margin, outerLo, outerHi float64) (float64, float64) {
	for range 4 {
		if lo-margin >= outerLo || lo >= hi {
			break
		}
		lo = math.Nextafter(lo, hi)
	}
	for range 4 {
		if hi+margin <= outerHi || hi <= lo {
			break
		}
		hi = math.Nextafter(hi, lo)
	}
	return lo, hi
}
