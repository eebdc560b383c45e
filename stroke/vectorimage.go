package stroke

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/compose"
	"github.com/gogpu/ink/internal/svgdoc"
	"github.com/gogpu/ink/render"
	"github.com/gogpu/ink/unit"
)

// SVGMIMEType is the media type of SVG documents.
const SVGMIMEType = "image/svg+xml"

// Root attributes that describe the viewport rather than the content.
var viewportAttrs = map[string]bool{
	"x": true, "y": true, "width": true, "height": true,
	"viewBox": true, "preserveAspectRatio": true, "version": true,
	"baseProfile": true,
}

// VectorImage is an embedded SVG document placed on the canvas. The
// document is stretched to fill its rectangle.
type VectorImage struct {
	// namespaces are the root's namespace declarations, pre-formatted.
	namespaces string
	// body is the root's content, wrapped in a group carrying the root's
	// presentation attributes.
	body      string
	viewBox   ink.Box
	intrinsic ink.Vec2
	rect      ink.Box
	bounds    ink.Box
}

// ImportVectorImage parses an SVG document and places it with its top-left
// corner at pos, at its intrinsic size. Physical lengths are resolved at
// unit.DefaultDPI.
func ImportVectorImage(data []byte, pos ink.Vec2) (*VectorImage, error) {
	root, err := svgdoc.Parse(data)
	if err != nil {
		return nil, &UnsupportedContentError{Content: KindVectorImage.String(), Format: SVGMIMEType, Err: err}
	}
	if root.Name != "svg" {
		return nil, &UnsupportedContentError{
			Content: KindVectorImage.String(),
			Format:  SVGMIMEType,
			Err:     fmt.Errorf("root element is <%s>, not <svg>", root.Name),
		}
	}
	size, ok := root.Size(unit.DefaultDPI)
	if !ok {
		return nil, &UnsupportedContentError{
			Content: KindVectorImage.String(),
			Format:  SVGMIMEType,
			Err:     errors.New("document has no intrinsic size"),
		}
	}
	vb, ok := root.ViewBox()
	if !ok {
		vb = ink.BoxFromSize(ink.Vec2{}, size)
	}

	var ns, group strings.Builder
	for _, a := range root.Attrs {
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + name
		}
		switch {
		case name == "xmlns" || name == "xmlns:xlink":
		case a.Name.Space == "xmlns":
			compose.Attr(&ns, name, a.Value)
		case !viewportAttrs[name]:
			compose.Attr(&group, name, a.Value)
		}
	}

	var body strings.Builder
	if group.Len() > 0 {
		body.WriteString("<g")
		body.WriteString(group.String())
		body.WriteString(">")
	}
	for _, c := range root.Children {
		body.Write(c.Raw)
	}
	if group.Len() > 0 {
		body.WriteString("</g>")
	}

	s := &VectorImage{
		namespaces: ns.String(),
		body:       body.String(),
		viewBox:    vb,
		intrinsic:  size,
		rect:       ink.BoxFromSize(pos, size),
	}
	s.bounds, _ = s.GenerateBounds()

	ink.Logger().Debug("stroke: vector image imported",
		"size", size, "elements", len(root.Children))
	return s, nil
}

// IntrinsicSize returns the size of the document in pixels.
func (s *VectorImage) IntrinsicSize() ink.Vec2 {
	return s.intrinsic
}

// Rect returns the rectangle the document is stretched into.
func (s *VectorImage) Rect() ink.Box {
	return s.rect
}

// Bounds implements Behaviour.
func (s *VectorImage) Bounds() ink.Box { return s.bounds }

// SetBounds implements Behaviour.
func (s *VectorImage) SetBounds(b ink.Box) { s.bounds = b }

// GenerateBounds implements Behaviour.
func (s *VectorImage) GenerateBounds() (ink.Box, bool) {
	return generateBounds(s)
}

// Translate implements Behaviour.
func (s *VectorImage) Translate(offset ink.Vec2) {
	s.rect = s.rect.Translate(offset)
	s.bounds = s.bounds.Translate(offset)
}

// Resize implements Behaviour. The zero VectorImage is left unchanged.
func (s *VectorImage) Resize(newBounds ink.Box) {
	if s.viewBox.IsDegenerate() {
		return
	}
	s.rect = newBounds
	s.bounds = newBounds
}

// GenerateFragments implements Behaviour. The zero VectorImage has no
// fragments.
func (s *VectorImage) GenerateFragments(offset ink.Vec2) ([]render.Fragment, error) {
	if s.viewBox.IsDegenerate() {
		return nil, nil
	}
	r := s.rect.Translate(offset)

	var sb strings.Builder
	sb.WriteString("<svg")
	compose.NumAttr(&sb, "x", r.Min.X)
	compose.NumAttr(&sb, "y", r.Min.Y)
	compose.NumAttr(&sb, "width", r.Width())
	compose.NumAttr(&sb, "height", r.Height())
	compose.Attr(&sb, "viewBox", compose.ViewBox(s.viewBox))
	compose.Attr(&sb, "preserveAspectRatio", "none")
	sb.WriteString(s.namespaces)
	sb.WriteString(">")
	sb.WriteString(s.body)
	sb.WriteString("</svg>")

	return []render.Fragment{{Data: sb.String(), Bounds: r}}, nil
}

// GenerateRasterImage implements Behaviour.
func (s *VectorImage) GenerateRasterImage(zoom float64, backend render.Backend) (*render.Image, error) {
	return generateRasterImage(s, s.bounds, zoom, backend)
}

func (s *VectorImage) clone() *VectorImage {
	c := *s
	return &c
}
