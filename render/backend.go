// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/ink"
)

// Backend rasterizes vector fragments.
//
// GenerateImage renders fragments into an image covering bounds at the given
// zoom (pixels per canvas unit). The result is ceil(zoom*width) by
// ceil(zoom*height) pixels. Fragments are drawn in order, later ones on top.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using render.Register() if it should be selectable by name
//  2. Report failures as errors, never as a blank or placeholder image
//  3. Leave the fragments slice unmodified
type Backend interface {
	GenerateImage(zoom float64, fragments []Fragment, bounds ink.Box) (*Image, error)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(zoom float64, fragments []Fragment, bounds ink.Box) (*Image, error)

// GenerateImage calls f.
func (f BackendFunc) GenerateImage(zoom float64, fragments []Fragment, bounds ink.Box) (*Image, error) {
	return f(zoom, fragments, bounds)
}

// Capabilities describes what a backend can draw.
type Capabilities struct {
	// EmbeddedImages indicates <image> elements with data: URIs are drawn.
	EmbeddedImages bool

	// NestedDocuments indicates nested <svg> viewports are honoured.
	NestedDocuments bool

	// MaxPixels is the largest image the backend produces (0 = unlimited).
	MaxPixels int
}

// CapableBackend is an optional interface for backends that can report
// their capabilities.
type CapableBackend interface {
	Backend

	// Capabilities returns the backend's capabilities.
	Capabilities() Capabilities
}

// Sentinel causes wrapped by BackendError.
var (
	// ErrInvalidZoom is returned for a zoom that is not a finite positive number.
	ErrInvalidZoom = errors.New("render: invalid zoom")

	// ErrInvalidBounds is returned for bounds that are inverted, non-finite
	// or have no area.
	ErrInvalidBounds = errors.New("render: invalid bounds")

	// ErrImageTooLarge is returned when the requested image exceeds the
	// backend's pixel budget.
	ErrImageTooLarge = errors.New("render: image too large")

	// ErrMalformedDocument is returned for fragments that are not well-formed.
	ErrMalformedDocument = errors.New("render: malformed fragment document")

	// ErrUnsupportedImage is returned for embedded bitmaps that cannot be decoded.
	ErrUnsupportedImage = errors.New("render: unsupported embedded image")
)

// BackendError reports a failure inside a backend.
type BackendError struct {
	// Backend is the registered name of the failing backend, if known.
	Backend string

	// Fragment is the index of the offending fragment, or -1.
	Fragment int

	Err error
}

func (e *BackendError) Error() string {
	if e.Fragment >= 0 {
		return fmt.Sprintf("render: backend %q: fragment %d: %v", e.Backend, e.Fragment, e.Err)
	}
	return fmt.Sprintf("render: backend %q: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
