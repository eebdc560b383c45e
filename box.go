package ink

import "math"

// Box is an axis-aligned bounding box.
// Min is the top-left corner (minimum coordinates), Max the bottom-right.
//
// A Box with Min <= Max on both axes is valid. A zero-area box is valid too:
// a single point has a degenerate but present box. Absence of geometry is
// never encoded as a zero Box; functions that may have nothing to enclose
// return (Box, bool) instead.
type Box struct {
	Min, Max Vec2
}

// NewBox creates a box from two corners.
// The corners are normalized so Min <= Max.
func NewBox(p1, p2 Vec2) Box {
	return Box{Min: p1.Min(p2), Max: p1.Max(p2)}
}

// BoxFromSize creates a box with its top-left corner at pos.
func BoxFromSize(pos, size Vec2) Box {
	return NewBox(pos, pos.Add(size))
}

// BoxFromPoints returns the smallest box containing all points.
// It returns false when pts is empty.
func BoxFromPoints(pts ...Vec2) (Box, bool) {
	if len(pts) == 0 {
		return Box{}, false
	}
	b := Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Extend(p)
	}
	return b, true
}

// Merge returns the smallest box containing both a and b.
func Merge(a, b Box) Box {
	return a.Merge(b)
}

// Merge returns the smallest box containing both b and other.
// Merge is commutative, associative and idempotent.
func (b Box) Merge(other Box) Box {
	return Box{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Extend returns the smallest box containing b and the point p.
func (b Box) Extend(p Vec2) Box {
	return Box{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Ceil expands the box outward onto the integer grid: mins are floored and
// maxs are ceiled. The result always contains b and Ceil is idempotent.
func (b Box) Ceil() Box {
	return Box{
		Min: Vec2{X: math.Floor(b.Min.X), Y: math.Floor(b.Min.Y)},
		Max: Vec2{X: math.Ceil(b.Max.X), Y: math.Ceil(b.Max.Y)},
	}
}

// Width returns the width of the box.
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the height of the box.
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Size returns the extents of the box as a vector.
func (b Box) Size() Vec2 {
	return b.Max.Sub(b.Min)
}

// Center returns the centre point of the box.
func (b Box) Center() Vec2 {
	return b.Min.Lerp(b.Max, 0.5)
}

// IsValid reports whether Min <= Max on both axes and all corners are finite.
func (b Box) IsValid() bool {
	return b.Min.IsFinite() && b.Max.IsFinite() &&
		b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y
}

// IsDegenerate reports whether the box has zero extent along either axis.
func (b Box) IsDegenerate() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Contains returns true if the point is inside the box (edges included).
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ContainsBox returns true if other lies entirely inside b.
func (b Box) ContainsBox(other Box) bool {
	return b.Contains(other.Min) && b.Contains(other.Max)
}

// Intersects reports whether the two boxes overlap or touch.
func (b Box) Intersects(other Box) bool {
	return b.Min.X <= other.Max.X && other.Min.X <= b.Max.X &&
		b.Min.Y <= other.Max.Y && other.Min.Y <= b.Max.Y
}

// Intersection returns the overlapping region of the two boxes.
// It returns false when they do not intersect.
func (b Box) Intersection(other Box) (Box, bool) {
	if !b.Intersects(other) {
		return Box{}, false
	}
	return Box{Min: b.Min.Max(other.Min), Max: b.Max.Min(other.Max)}, true
}

// Translate returns the box shifted by offset.
func (b Box) Translate(offset Vec2) Box {
	return Box{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Loosen returns the box grown by margin on every side.
func (b Box) Loosen(margin float64) Box {
	m := V2(margin, margin)
	return Box{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Tighten returns the box shrunk by margin on every side.
// An axis that would invert collapses to its centre instead.
func (b Box) Tighten(margin float64) Box {
	out := Box{
		Min: b.Min.Add(V2(margin, margin)),
		Max: b.Max.Sub(V2(margin, margin)),
	}
	c := b.Center()
	if out.Min.X > out.Max.X {
		out.Min.X, out.Max.X = c.X, c.X
	}
	if out.Min.Y > out.Max.Y {
		out.Min.Y, out.Max.Y = c.Y, c.Y
	}
	return out
}

// ApproxEqual reports whether both corners match within epsilon.
func (b Box) ApproxEqual(other Box, epsilon float64) bool {
	return b.Min.Approx(other.Min, epsilon) && b.Max.Approx(other.Max, epsilon)
}

// BoxTransform returns the affine map that takes src onto dst.
//
// An axis along which src has no extent cannot be scaled; it maps with a
// factor of 1 and src's minimum is moved onto dst's minimum.
func BoxTransform(src, dst Box) Matrix {
	sx, sy := 1.0, 1.0
	if w := src.Width(); w > 0 {
		sx = dst.Width() / w
	}
	if h := src.Height(); h > 0 {
		sy = dst.Height() / h
	}
	return Translate(dst.Min.X, dst.Min.Y).
		Multiply(Scale(sx, sy)).
		Multiply(Translate(-src.Min.X, -src.Min.Y))
}
