// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/ink"
)

// Image is a rasterized rendering of some region of the canvas.
// Pixels are stored as premultiplied RGBA; pixel (0, 0) covers the top-left
// corner of the canvas region.
type Image struct {
	pix    *image.RGBA
	canvas ink.Box
}

// NewImage creates a transparent image of the given size covering canvas.
func NewImage(width, height int, canvas ink.Box) *Image {
	return &Image{
		pix:    image.NewRGBA(image.Rect(0, 0, width, height)),
		canvas: canvas,
	}
}

// Width returns the width of the image in pixels.
func (m *Image) Width() int {
	return m.pix.Rect.Dx()
}

// Height returns the height of the image in pixels.
func (m *Image) Height() int {
	return m.pix.Rect.Dy()
}

// CanvasBounds returns the region of the canvas the image covers.
func (m *Image) CanvasBounds() ink.Box {
	return m.canvas
}

// Zoom returns the horizontal pixels-per-canvas-unit ratio of the image.
func (m *Image) Zoom() float64 {
	if w := m.canvas.Width(); w > 0 {
		return float64(m.Width()) / w
	}
	return 1
}

// Data returns the raw pixel data (premultiplied RGBA, 4 bytes per pixel).
func (m *Image) Data() []uint8 {
	return m.pix.Pix
}

// RGBA returns the underlying image. It shares memory with m.
func (m *Image) RGBA() *image.RGBA {
	return m.pix
}

// GetPixel returns the non-premultiplied color of a single pixel.
// Out of range coordinates return Transparent.
func (m *Image) GetPixel(x, y int) ink.Color {
	if !(image.Point{X: x, Y: y}).In(m.pix.Rect) {
		return ink.Transparent
	}
	return ink.FromStd(m.pix.RGBAAt(x, y))
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	c := NewImage(m.Width(), m.Height(), m.canvas)
	copy(c.pix.Pix, m.pix.Pix)
	return c
}

// IsBlank reports whether every pixel is fully transparent.
func (m *Image) IsBlank() bool {
	for i := 3; i < len(m.pix.Pix); i += 4 {
		if m.pix.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// EncodePNG writes the image as PNG.
func (m *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, m.pix)
}

// SavePNG saves the image to a PNG file.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := m.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	return m.pix.At(x, y)
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return m.pix.Rect
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}
