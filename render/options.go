// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default software backend with image cache
//	r, err := render.NewRenderer()
//
//	// Custom backend, no cache
//	r, err := render.NewRenderer(render.WithBackend(myBackend), render.WithCacheCapacity(0))
type Option func(*options)

type options struct {
	backend       Backend
	backendName   string
	cacheCapacity int
}

func defaultOptions() options {
	return options{
		backendName:   SoftwareName,
		cacheCapacity: DefaultCacheCapacity,
	}
}

// WithBackend sets the backend instance used by the Renderer.
// It takes precedence over WithBackendName.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithBackendName selects a registered backend by name.
func WithBackendName(name string) Option {
	return func(o *options) {
		o.backendName = name
	}
}

// WithCacheCapacity sets how many rendered images are kept.
// A capacity of 0 or less disables caching.
func WithCacheCapacity(n int) Option {
	return func(o *options) {
		o.cacheCapacity = n
	}
}
