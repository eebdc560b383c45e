// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns the vector fragments strokes emit into raster images.
//
// # Core Types
//
//   - Fragment: one self-contained SVG payload plus its bounding box
//   - Image: an RGBA raster covering a known box of the canvas
//   - Backend: the rasterization contract (GenerateImage)
//   - Renderer: a Backend front end with backend selection and an image cache
//
// # Backends
//
// Backends register themselves by name, following the database/sql driver
// pattern. The "software" backend is built in: it scans each fragment
// document, rasterizes vector content with oksvg/rasterx, draws embedded
// data: URI bitmaps with golang.org/x/image/draw and recurses into nested
// <svg> viewports.
//
// # Usage
//
//	r, err := render.NewRenderer(render.WithCacheCapacity(128))
//	if err != nil {
//	    return err
//	}
//	img, err := r.GenerateImage(2.0, fragments, bounds)
//
// # Sizing
//
// An image generated at zoom z for bounds b is ceil(z*b.Width()) by
// ceil(z*b.Height()) pixels and records b as its canvas bounds, so pixel
// (0, 0) corresponds to b.Min.
//
// # Thread Safety
//
// The registry and Renderer are safe for concurrent use. Backends are
// called synchronously on the caller's goroutine.
package render
