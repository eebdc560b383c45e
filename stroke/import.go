package stroke

import (
	"bytes"

	"github.com/h2non/filetype"

	"github.com/gogpu/ink"
)

// Import creates a stroke from an image payload placed at pos: a raster
// image becomes a BitmapImage and an SVG document a VectorImage. Anything
// else fails with an *UnsupportedContentError wrapping ErrUnknownFormat.
func Import(data []byte, pos ink.Vec2) (Stroke, error) {
	kind, _ := filetype.Match(data)
	switch {
	case bitmapFormats[kind.Extension]:
		s, err := ImportBitmapImage(data, pos)
		if err != nil {
			return Stroke{}, err
		}
		return FromBitmapImage(s), nil

	case looksLikeXML(data):
		s, err := ImportVectorImage(data, pos)
		if err != nil {
			return Stroke{}, err
		}
		return FromVectorImage(s), nil
	}

	format := ""
	if kind != filetype.Unknown {
		format = kind.MIME.Value
	}
	return Stroke{}, &UnsupportedContentError{Content: "payload", Format: format, Err: ErrUnknownFormat}
}

func looksLikeXML(data []byte) bool {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte("<"))
}
