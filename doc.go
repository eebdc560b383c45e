// Package ink provides the geometry layer of a freehand drawing core.
//
// # Overview
//
// ink models pen strokes, shapes and embedded images as strokes that share
// one behaviour contract (see package stroke), keeps each stroke's
// axis-aligned bounding box consistent with its content, and renders strokes
// to SVG fragments and, through a pluggable backend, to raster images (see
// package render).
//
// This root package holds the primitives everything else builds on:
//   - Vec2: positions and offsets in canvas units
//   - Box: axis-aligned bounding boxes and their algebra (Merge, Ceil, ...)
//   - Matrix: affine transforms, used to map content between boxes
//   - Color: non-premultiplied RGBA with SVG serialization
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Bounds
//
// Bounding boxes are cached next to stroke content. A stroke with no
// geometry has no box at all, which is reported as (Box{}, false) rather
// than as a zero-size box; a single point has a present, zero-area box.
//
// # Concurrency
//
// Geometry values are plain values. Strokes are owned by one caller at a
// time and are not safe for concurrent mutation.
package ink
