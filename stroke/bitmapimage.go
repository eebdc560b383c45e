package stroke

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"strings"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/compose"
	"github.com/gogpu/ink/render"
)

// bitmapFormats are the raster formats BitmapImage imports, by the
// extension filetype reports.
var bitmapFormats = map[string]bool{
	"png": true, "jpg": true, "gif": true, "bmp": true, "tif": true, "webp": true,
}

// BitmapImage is an embedded raster image placed on the canvas and
// stretched to fill its rectangle. The image is held as PNG, encoded once.
type BitmapImage struct {
	size ink.Vec2
	// href is the data URI of the PNG encoding.
	href      string
	encodeErr error
	rect      ink.Box
	bounds    ink.Box
}

// NewBitmapImage places img with its top-left corner at pos, one canvas
// unit per pixel. An image that cannot be encoded makes GenerateFragments
// fail.
func NewBitmapImage(img image.Image, pos ink.Vec2) *BitmapImage {
	sz := img.Bounds().Size()
	s := &BitmapImage{
		size: ink.V2(float64(sz.X), float64(sz.Y)),
		rect: ink.BoxFromSize(pos, ink.V2(float64(sz.X), float64(sz.Y))),
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		s.encodeErr = err
	} else {
		s.href = pngDataURI(buf.Bytes())
	}
	s.bounds, _ = s.GenerateBounds()
	return s
}

// ImportBitmapImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP payload and
// places it at pos.
func ImportBitmapImage(data []byte, pos ink.Vec2) (*BitmapImage, error) {
	kind, err := filetype.Match(data)
	if err != nil || !bitmapFormats[kind.Extension] {
		format := ""
		if err == nil && kind != filetype.Unknown {
			format = kind.MIME.Value
		}
		return nil, &UnsupportedContentError{Content: KindBitmapImage.String(), Format: format, Err: ErrUnknownFormat}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &UnsupportedContentError{Content: KindBitmapImage.String(), Format: kind.MIME.Value, Err: err}
	}

	var s *BitmapImage
	if kind.Extension == "png" {
		// Already PNG: keep the payload as is.
		sz := img.Bounds().Size()
		s = &BitmapImage{
			size: ink.V2(float64(sz.X), float64(sz.Y)),
			href: pngDataURI(data),
			rect: ink.BoxFromSize(pos, ink.V2(float64(sz.X), float64(sz.Y))),
		}
		s.bounds, _ = s.GenerateBounds()
	} else {
		s = NewBitmapImage(img, pos)
	}

	ink.Logger().Debug("stroke: bitmap image imported",
		"format", kind.MIME.Value, "width", s.size.X, "height", s.size.Y)
	return s, nil
}

func pngDataURI(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}

// PixelSize returns the size of the image in pixels.
func (s *BitmapImage) PixelSize() ink.Vec2 {
	return s.size
}

// Rect returns the rectangle the image is stretched into.
func (s *BitmapImage) Rect() ink.Box {
	return s.rect
}

func (s *BitmapImage) empty() bool {
	return s.href == "" && s.encodeErr == nil
}

// Bounds implements Behaviour.
func (s *BitmapImage) Bounds() ink.Box { return s.bounds }

// SetBounds implements Behaviour.
func (s *BitmapImage) SetBounds(b ink.Box) { s.bounds = b }

// GenerateBounds implements Behaviour. The bounds are those of the single
// fragment, and are known even when the image cannot be serialized.
func (s *BitmapImage) GenerateBounds() (ink.Box, bool) {
	if s.empty() {
		return ink.Box{}, false
	}
	return s.rect.Ceil(), true
}

// Translate implements Behaviour.
func (s *BitmapImage) Translate(offset ink.Vec2) {
	s.rect = s.rect.Translate(offset)
	s.bounds = s.bounds.Translate(offset)
}

// Resize implements Behaviour. The zero BitmapImage is left unchanged.
func (s *BitmapImage) Resize(newBounds ink.Box) {
	if s.empty() {
		return
	}
	s.rect = newBounds
	s.bounds = newBounds
}

// GenerateFragments implements Behaviour. The zero BitmapImage has no
// fragments.
func (s *BitmapImage) GenerateFragments(offset ink.Vec2) ([]render.Fragment, error) {
	if s.encodeErr != nil {
		return nil, &UnsupportedContentError{Content: KindBitmapImage.String(), Format: "image/png", Err: s.encodeErr}
	}
	if s.empty() {
		return nil, nil
	}
	r := s.rect.Translate(offset)

	var sb strings.Builder
	sb.WriteString("<image")
	compose.NumAttr(&sb, "x", r.Min.X)
	compose.NumAttr(&sb, "y", r.Min.Y)
	compose.NumAttr(&sb, "width", r.Width())
	compose.NumAttr(&sb, "height", r.Height())
	compose.Attr(&sb, "preserveAspectRatio", "none")
	compose.Attr(&sb, "xlink:href", s.href)
	sb.WriteString("/>")

	return []render.Fragment{{Data: sb.String(), Bounds: r}}, nil
}

// GenerateRasterImage implements Behaviour.
func (s *BitmapImage) GenerateRasterImage(zoom float64, backend render.Backend) (*render.Image, error) {
	return generateRasterImage(s, s.bounds, zoom, backend)
}

func (s *BitmapImage) clone() *BitmapImage {
	c := *s
	return &c
}
