package stroke

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is wrapped by UnsupportedContentError when a payload
	// is neither a known raster format nor an SVG document.
	ErrUnknownFormat = errors.New("stroke: unknown content format")

	// ErrNilBackend is returned by GenerateRasterImage without a backend.
	ErrNilBackend = errors.New("stroke: nil rendering backend")
)

// UnsupportedContentError reports content that cannot be imported or
// serialized into vector fragments.
type UnsupportedContentError struct {
	// Content names what was being handled, e.g. "bitmap image".
	Content string

	// Format describes the payload, e.g. a MIME type, if known.
	Format string

	Err error
}

func (e *UnsupportedContentError) Error() string {
	msg := "stroke: unsupported " + e.Content
	if e.Format != "" {
		msg += fmt.Sprintf(" (%s)", e.Format)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnsupportedContentError) Unwrap() error {
	return e.Err
}
