// Package svgdoc scans SVG documents into an element tree that keeps the
// exact source bytes of every element, so subtrees can be re-emitted or
// handed to another renderer without a lossy encode step.
package svgdoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/unit"
)

// ErrMalformed is returned for input that is not a well-formed XML document
// with a root element.
var ErrMalformed = errors.New("svgdoc: malformed document")

// Element is one element of a scanned document.
type Element struct {
	// Name is the local element name, e.g. "svg" or "path".
	Name string
	// Prefix is the namespace prefix as written in the source, if any.
	Prefix string
	// Attrs are the attributes as written; Name.Space holds the prefix.
	Attrs []xml.Attr
	// Raw is the source of the element from its start tag through its end tag.
	Raw []byte
	// Children are the direct child elements in document order.
	Children []*Element
}

// Parse scans data and returns the root element.
// Prolog content (XML declaration, doctype, comments) is skipped and so is
// anything after the root element.
func Parse(data []byte) (*Element, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = true
	d.Entity = xml.HTMLEntity

	var (
		root  *Element
		stack []*Element
		start []int64
	)
	for {
		off := d.InputOffset()
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Name:   t.Name.Local,
				Prefix: t.Name.Space,
				Attrs:  append([]xml.Attr(nil), t.Attr...),
			}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
			start = append(start, off)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected </%s>", ErrMalformed, t.Name.Local)
			}
			el := stack[len(stack)-1]
			if el.Name != t.Name.Local || el.Prefix != t.Name.Space {
				return nil, fmt.Errorf("%w: <%s> closed by </%s>", ErrMalformed, el.Name, t.Name.Local)
			}
			el.Raw = data[start[len(start)-1]:d.InputOffset()]
			stack = stack[:len(stack)-1]
			start = start[:len(start)-1]
			if len(stack) == 0 {
				return root, nil
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return nil, fmt.Errorf("%w: unclosed <%s>", ErrMalformed, stack[len(stack)-1].Name)
}

// Attr returns the value of the attribute with the given qualified name,
// e.g. "width" or "xlink:href".
func (e *Element) Attr(name string) (string, bool) {
	prefix, local := "", name
	if i := strings.IndexByte(name, ':'); i >= 0 {
		prefix, local = name[:i], name[i+1:]
	}
	for _, a := range e.Attrs {
		if a.Name.Local == local && a.Name.Space == prefix {
			return a.Value, true
		}
	}
	return "", false
}

// Href returns the element's link target from either href or xlink:href.
func (e *Element) Href() (string, bool) {
	if v, ok := e.Attr("href"); ok {
		return v, true
	}
	return e.Attr("xlink:href")
}

// Length returns the named length attribute converted to pixels at dpi.
// ok is false when the attribute is absent; err is set when it is present
// but cannot be parsed.
func (e *Element) Length(name string, dpi float64) (v float64, ok bool, err error) {
	s, ok := e.Attr(name)
	if !ok {
		return 0, false, nil
	}
	v, err = unit.ParseLengthPx(s, dpi)
	if err != nil {
		return 0, true, fmt.Errorf("svgdoc: attribute %s: %w", name, err)
	}
	return v, true, nil
}

// ViewBox returns the element's viewBox. ok is false when the attribute is
// absent, malformed or has a non-positive size.
func (e *Element) ViewBox() (ink.Box, bool) {
	s, ok := e.Attr("viewBox")
	if !ok {
		return ink.Box{}, false
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return ink.Box{}, false
	}
	var nums [4]float64
	for i, f := range fields {
		v, n := strconv.ParseFloat([]byte(f))
		if n != len(f) {
			return ink.Box{}, false
		}
		nums[i] = v
	}
	if nums[2] <= 0 || nums[3] <= 0 {
		return ink.Box{}, false
	}
	return ink.BoxFromSize(ink.V2(nums[0], nums[1]), ink.V2(nums[2], nums[3])), true
}

// Size returns the intrinsic size of an <svg> element in pixels at dpi:
// width and height when present, completed from the viewBox otherwise.
// Lengths that cannot be resolved to pixels (percentages, font relative
// units) count as absent. ok is false when no positive size results.
func (e *Element) Size(dpi float64) (size ink.Vec2, ok bool) {
	vb, hasVB := e.ViewBox()
	w, hasW, err := e.Length("width", dpi)
	if err != nil {
		hasW = false
	}
	h, hasH, err := e.Length("height", dpi)
	if err != nil {
		hasH = false
	}

	switch {
	case hasW && hasH:
	case hasVB && hasW:
		h = w * vb.Height() / vb.Width()
	case hasVB && hasH:
		w = h * vb.Width() / vb.Height()
	case hasVB:
		w, h = vb.Width(), vb.Height()
	default:
		return ink.Vec2{}, false
	}
	if w <= 0 || h <= 0 {
		return ink.Vec2{}, false
	}
	return ink.V2(w, h), true
}
