// Package compose builds SVG documents out of the fragments strokes emit.
//
// All numbers are written through Num so that generating the same content
// twice yields byte-identical output.
package compose

import (
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/ink"
)

// Namespaces declared on every wrapped document.
const (
	SVGNamespace   = "http://www.w3.org/2000/svg"
	XLinkNamespace = "http://www.w3.org/1999/xlink"
)

// XMLHeader is prepended to standalone documents.
const XMLHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n"

// Stylesheet is embedded into documents when requested. Fragments always
// carry explicit presentation attributes, so the stylesheet only provides
// defaults for consumers that honour CSS.
const Stylesheet = `svg { shape-rendering: geometricPrecision; } ` +
	`path, line, polyline { stroke-linecap: round; stroke-linejoin: round; }`

// Num formats v with the shortest representation that round trips.
// Negative zero is written as "0" and non-finite values as "0".
func Num(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Escape returns s with XML special characters escaped for use inside an
// attribute value or text node.
func Escape(s string) string {
	var sb strings.Builder
	// xml.EscapeText only fails when the writer does.
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

// Attr writes ` name="value"` to sb, escaping value.
func Attr(sb *strings.Builder, name, value string) {
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(Escape(value))
	sb.WriteByte('"')
}

// NumAttr writes ` name="v"` to sb using Num.
func NumAttr(sb *strings.Builder, name string, v float64) {
	Attr(sb, name, Num(v))
}

// ViewBox formats b as an SVG viewBox attribute value.
func ViewBox(b ink.Box) string {
	return Num(b.Min.X) + " " + Num(b.Min.Y) + " " + Num(b.Width()) + " " + Num(b.Height())
}

// PathData returns the "d" attribute of a polyline through pts.
func PathData(pts []ink.Vec2) string {
	var sb strings.Builder
	for i, p := range pts {
		if i == 0 {
			sb.WriteByte('M')
		} else {
			sb.WriteString(" L")
		}
		sb.WriteString(Num(p.X))
		sb.WriteByte(' ')
		sb.WriteString(Num(p.Y))
	}
	return sb.String()
}

// Paint writes fill or stroke attributes for c. A transparent color is
// written as "none".
func Paint(sb *strings.Builder, attr string, c ink.Color) {
	if c.IsTransparent() {
		Attr(sb, attr, "none")
		return
	}
	Attr(sb, attr, c.SVG())
	if op := c.Opacity(); op < 1 {
		NumAttr(sb, attr+"-opacity", op)
	}
}

// WrapFragment turns a bare fragment payload into a self-contained SVG
// document.
//
// content, when non-nil, becomes the document's x, y, width and height;
// viewport, when non-nil, becomes its viewBox (mapped without preserving the
// aspect ratio). standalone prepends the XML declaration and embedStyles adds
// a <style> element holding Stylesheet.
func WrapFragment(payload string, content, viewport *ink.Box, standalone, embedStyles bool) string {
	var sb strings.Builder
	if standalone {
		sb.WriteString(XMLHeader)
	}
	sb.WriteString("<svg")
	Attr(&sb, "xmlns", SVGNamespace)
	Attr(&sb, "xmlns:xlink", XLinkNamespace)
	if content != nil {
		NumAttr(&sb, "x", content.Min.X)
		NumAttr(&sb, "y", content.Min.Y)
		NumAttr(&sb, "width", content.Width())
		NumAttr(&sb, "height", content.Height())
	}
	if viewport != nil {
		Attr(&sb, "viewBox", ViewBox(*viewport))
		Attr(&sb, "preserveAspectRatio", "none")
	}
	sb.WriteString(">\n")
	if embedStyles {
		sb.WriteString("<style>")
		sb.WriteString(Stylesheet)
		sb.WriteString("</style>\n")
	}
	sb.WriteString(payload)
	sb.WriteString("\n</svg>\n")
	return sb.String()
}
