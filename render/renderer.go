// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/ink"
)

// ErrNilBackend is returned by NewRenderer when WithBackend is given nil.
var ErrNilBackend = errors.New("render: nil backend")

// Renderer is a Backend that fronts another backend with an image cache.
//
// Renderers are safe for concurrent use when the wrapped backend is.
//
// Example:
//
//	r, err := render.NewRenderer()
//	if err != nil {
//	    return err
//	}
//	img, err := stroke.GenerateRasterImage(1, r)
type Renderer struct {
	backend Backend
	name    string
	cache   *imageCache
}

// NewRenderer creates a renderer. Without options it uses the software
// backend and a cache of DefaultCacheCapacity images.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{backend: o.backend, name: o.backendName}
	if r.backend == nil {
		if o.backendName == "" {
			return nil, ErrNilBackend
		}
		b, err := NewBackend(o.backendName)
		if err != nil {
			return nil, err
		}
		r.backend = b
	} else {
		r.name = fmt.Sprintf("%T", o.backend)
	}
	if o.cacheCapacity > 0 {
		r.cache = newImageCache(o.cacheCapacity)
	}

	ink.Logger().Debug("render: renderer created",
		"backend", r.name, "cache", o.cacheCapacity)
	return r, nil
}

// GenerateImage implements Backend. Equal requests are served from the
// cache; the returned image is always a private copy.
func (r *Renderer) GenerateImage(zoom float64, fragments []Fragment, bounds ink.Box) (*Image, error) {
	if r.cache == nil {
		return r.backend.GenerateImage(zoom, fragments, bounds)
	}

	key := requestKey(zoom, fragments, bounds)
	if img, ok := r.cache.get(key); ok {
		ink.Logger().Debug("render: cache hit", "key", key)
		return img, nil
	}

	img, err := r.backend.GenerateImage(zoom, fragments, bounds)
	if err != nil {
		return nil, err
	}
	r.cache.set(key, img)
	return img, nil
}

// Backend returns the wrapped backend.
func (r *Renderer) Backend() Backend {
	return r.backend
}

// BackendName returns the registry name of the backend, or its Go type when
// it was supplied with WithBackend.
func (r *Renderer) BackendName() string {
	return r.name
}

// Capabilities implements CapableBackend. Backends that do not report
// capabilities are assumed to draw plain vector content only.
func (r *Renderer) Capabilities() Capabilities {
	if cb, ok := r.backend.(CapableBackend); ok {
		return cb.Capabilities()
	}
	return Capabilities{}
}

// CacheStats returns image cache statistics. It is the zero value when
// caching is disabled.
func (r *Renderer) CacheStats() CacheStats {
	if r.cache == nil {
		return CacheStats{}
	}
	return r.cache.stats()
}

// ClearCache drops every cached image.
func (r *Renderer) ClearCache() {
	if r.cache != nil {
		r.cache.clear()
		ink.Logger().Info("render: image cache cleared", "backend", r.name)
	}
}
