// Package stroke models the strokes of a drawing canvas.
//
// A stroke is one of five closed variants: MarkerStroke (constant width pen
// stroke), BrushStroke (pressure sensitive pen stroke), ShapeStroke (line,
// rectangle or ellipse), VectorImage (embedded SVG document) and
// BitmapImage (embedded raster image). Every variant implements Behaviour;
// the Stroke type holds exactly one of them and forwards each call to it.
//
// # Bounds
//
// Each variant keeps its content next to a cached bounding box. Bounds
// returns the cache; GenerateBounds recomputes the box from the generated
// vector fragments (merged and expanded onto the integer grid). Translate
// and Resize update content and cache together. Any other mutation must be
// followed by SetBounds or a fresh GenerateBounds before Bounds is trusted
// again.
//
// # Rendering
//
// GenerateFragments emits SVG payloads positioned at an offset.
// GenerateRasterImage wraps the fragments into standalone documents framed
// by the stroke bounds and hands them to a render.Backend.
//
// Strokes are not safe for concurrent mutation.
package stroke
