// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF for embedded images
	_ "image/jpeg" // register JPEG for embedded images
	_ "image/png"  // register PNG for embedded images
	"math"
	"net/url"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp" // register BMP for embedded images
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF for embedded images
	_ "golang.org/x/image/webp" // register WebP for embedded images

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/compose"
	"github.com/gogpu/ink/internal/svgdoc"
	"github.com/gogpu/ink/unit"
)

// SoftwareName is the registry name of the built-in CPU backend.
const SoftwareName = "software"

// DefaultMaxPixels bounds the size of images the software backend
// allocates (8192x8192).
const DefaultMaxPixels = 1 << 26

// sizeEpsilon absorbs float noise when computing pixel dimensions, so that
// 10 units at zoom 1.1 is 11 pixels and not 12.
const sizeEpsilon = 1e-9

func init() {
	Register(SoftwareName, func() Backend { return NewSoftware() })
}

// Software is a CPU backend.
//
// For every fragment it scans the document, draws runs of vector elements
// with oksvg/rasterx, draws <image> elements carrying data: URIs with
// Catmull-Rom scaling, and recurses into nested <svg> viewports. Viewports
// are always mapped with preserveAspectRatio="none" semantics. External
// image references are skipped with a warning.
type Software struct {
	// MaxPixels is the pixel budget per image (0 = DefaultMaxPixels).
	MaxPixels int

	// DPI resolves physical units (mm, in, ...) inside documents.
	DPI float64
}

// NewSoftware creates a software backend with default limits.
func NewSoftware() *Software {
	return &Software{MaxPixels: DefaultMaxPixels, DPI: unit.DefaultDPI}
}

// Capabilities implements CapableBackend.
func (s *Software) Capabilities() Capabilities {
	return Capabilities{
		EmbeddedImages:  true,
		NestedDocuments: true,
		MaxPixels:       s.maxPixels(),
	}
}

func (s *Software) maxPixels() int {
	if s.MaxPixels <= 0 {
		return DefaultMaxPixels
	}
	return s.MaxPixels
}

func (s *Software) dpi() float64 {
	if s.DPI <= 0 {
		return unit.DefaultDPI
	}
	return s.DPI
}

// GenerateImage implements Backend.
func (s *Software) GenerateImage(zoom float64, fragments []Fragment, bounds ink.Box) (*Image, error) {
	w, h, err := s.imageSize(zoom, bounds)
	if err != nil {
		return nil, &BackendError{Backend: SoftwareName, Fragment: -1, Err: err}
	}

	img := NewImage(w, h, bounds)
	view := ink.Scale(zoom, zoom).Multiply(ink.Translate(-bounds.Min.X, -bounds.Min.Y))
	for i, f := range fragments {
		if err := s.drawFragment(img.pix, f.Data, view); err != nil {
			return nil, &BackendError{Backend: SoftwareName, Fragment: i, Err: err}
		}
	}

	ink.Logger().Debug("render: software image generated",
		"width", w, "height", h, "zoom", zoom, "fragments", len(fragments))
	return img, nil
}

// ImageSize returns the pixel size of an image covering bounds at zoom.
func ImageSize(zoom float64, bounds ink.Box) (width, height int) {
	return int(math.Ceil(bounds.Width()*zoom - sizeEpsilon)),
		int(math.Ceil(bounds.Height()*zoom - sizeEpsilon))
}

func (s *Software) imageSize(zoom float64, bounds ink.Box) (int, int, error) {
	if !(zoom > 0) || math.IsInf(zoom, 0) {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidZoom, zoom)
	}
	if !bounds.IsValid() || bounds.IsDegenerate() {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidBounds, bounds)
	}
	w, h := ImageSize(zoom, bounds)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %v at zoom %v", ErrInvalidBounds, bounds, zoom)
	}
	if float64(w)*float64(h) > float64(s.maxPixels()) {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, w, h)
	}
	return w, h, nil
}

// drawFragment draws one fragment. view maps canvas units to pixels.
func (s *Software) drawFragment(dst *image.RGBA, data string, view ink.Matrix) error {
	root, err := svgdoc.Parse([]byte(data))
	if err != nil || root.Name != "svg" {
		// Bare payload: its coordinates are canvas coordinates.
		root, err = svgdoc.Parse([]byte(compose.WrapFragment(data, nil, nil, false, false)))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}
	return s.drawSVG(dst, root, view)
}

// drawSVG draws an <svg> element whose parent user space maps to pixels
// through parent.
func (s *Software) drawSVG(dst *image.RGBA, el *svgdoc.Element, parent ink.Matrix) error {
	m := s.viewport(el, parent)

	var defs, batch [][]byte
	for _, c := range el.Children {
		if c.Name == "defs" || c.Name == "style" {
			defs = append(defs, c.Raw)
		}
	}

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := drawVector(dst, defs, batch, m)
		batch = batch[:0]
		return err
	}

	for _, c := range el.Children {
		switch c.Name {
		case "defs", "style":
		case "svg":
			if err := flush(); err != nil {
				return err
			}
			if err := s.drawSVG(dst, c, m); err != nil {
				return err
			}
		case "image":
			if err := flush(); err != nil {
				return err
			}
			if err := s.drawImage(dst, c, m); err != nil {
				return err
			}
		default:
			batch = append(batch, c.Raw)
		}
	}
	return flush()
}

// viewport returns the transform from el's user space to pixels.
func (s *Software) viewport(el *svgdoc.Element, parent ink.Matrix) ink.Matrix {
	x, _ := s.length(el, "x")
	y, _ := s.length(el, "y")
	m := parent.Multiply(ink.Translate(x, y))

	vb, ok := el.ViewBox()
	if !ok {
		return m
	}
	w, hasW := s.length(el, "width")
	if !hasW {
		w = vb.Width()
	}
	h, hasH := s.length(el, "height")
	if !hasH {
		h = vb.Height()
	}
	return m.Multiply(ink.Scale(w/vb.Width(), h/vb.Height())).
		Multiply(ink.Translate(-vb.Min.X, -vb.Min.Y))
}

// length resolves a length attribute to pixels, treating unresolvable
// values as absent.
func (s *Software) length(el *svgdoc.Element, name string) (float64, bool) {
	v, ok, err := el.Length(name, s.dpi())
	if err != nil {
		ink.Logger().Debug("render: ignoring attribute", "element", el.Name, "error", err)
		return 0, false
	}
	return v, ok
}

// drawVector rasterizes a run of sibling elements sharing the transform m.
func drawVector(dst *image.RGBA, defs, batch [][]byte, m ink.Matrix) error {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()

	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns=%q xmlns:xlink=%q width="%d" height="%d" viewBox="0 0 %d %d">`,
		compose.SVGNamespace, compose.XLinkNamespace, w, h, w, h)
	for _, d := range defs {
		doc.Write(d)
	}
	// SVG matrix(a b c d e f) maps x' = a*x + c*y + e, y' = b*x + d*y + f.
	fmt.Fprintf(&doc, `<g transform="matrix(%s %s %s %s %s %s)">`,
		compose.Num(m.A), compose.Num(m.D), compose.Num(m.B),
		compose.Num(m.E), compose.Num(m.C), compose.Num(m.F))
	for _, b := range batch {
		doc.Write(b)
	}
	doc.WriteString(`</g></svg>`)

	icon, err := oksvg.ReadIconStream(&doc, oksvg.IgnoreErrorMode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return nil
}

// drawImage draws an <image> element. Only data: URIs are supported.
func (s *Software) drawImage(dst *image.RGBA, el *svgdoc.Element, m ink.Matrix) error {
	href, ok := el.Href()
	if !ok || !strings.HasPrefix(href, "data:") {
		ink.Logger().Warn("render: skipping image without embedded data", "href", truncate(href, 64))
		return nil
	}

	src, err := decodeDataURI(href)
	if err != nil {
		return err
	}

	x, _ := s.length(el, "x")
	y, _ := s.length(el, "y")
	sb := src.Bounds()
	w, ok := s.length(el, "width")
	if !ok {
		w = float64(sb.Dx())
	}
	h, ok := s.length(el, "height")
	if !ok {
		h = float64(sb.Dy())
	}

	r := m.TransformBox(ink.BoxFromSize(ink.V2(x, y), ink.V2(w, h)))
	rect := image.Rect(
		int(math.Round(r.Min.X)), int(math.Round(r.Min.Y)),
		int(math.Round(r.Max.X)), int(math.Round(r.Max.Y)),
	)
	if rect.Empty() {
		return nil
	}
	xdraw.CatmullRom.Scale(dst, rect, src, sb, xdraw.Over, nil)
	return nil
}

// decodeDataURI decodes an RFC 2397 data URI holding a raster image.
func decodeDataURI(uri string) (image.Image, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("%w: data URI without payload", ErrUnsupportedImage)
	}

	var raw []byte
	if strings.HasSuffix(meta, ";base64") {
		clean := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
				return -1
			}
			return r
		}, payload)
		b, err := base64.StdEncoding.DecodeString(clean)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
		}
		raw = b
	} else {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
		}
		raw = []byte(s)
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: unknown format (%s)", ErrUnsupportedImage, meta)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	ink.Logger().Debug("render: decoded embedded image", "format", format, "size", img.Bounds().Size())
	return img, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
