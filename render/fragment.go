// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/ink"

// Fragment is a self-contained unit of vector output: an SVG payload and
// the bounding box of what it draws, in canvas units.
//
// Payloads produced by strokes are bare elements; before rasterization they
// are wrapped into standalone documents (see compose.WrapFragment). Backends
// accept both forms: a payload whose root is not <svg> is drawn in canvas
// coordinates.
type Fragment struct {
	Data   string
	Bounds ink.Box
}

// FragmentsBounds merges the bounds of all fragments.
// It returns false for an empty slice.
func FragmentsBounds(fragments []Fragment) (ink.Box, bool) {
	if len(fragments) == 0 {
		return ink.Box{}, false
	}
	b := fragments[0].Bounds
	for _, f := range fragments[1:] {
		b = b.Merge(f.Bounds)
	}
	return b, true
}
