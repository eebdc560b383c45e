// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"strconv"
	"sync"
	"testing"

	"github.com/gogpu/ink"
)

func testImage(w int) *Image {
	return NewImage(w, 1, box(0, 0, float64(w), 1))
}

func TestImageCacheGetSet(t *testing.T) {
	c := newImageCache(4)

	if _, ok := c.get(1); ok {
		t.Error("empty cache should miss")
	}
	c.set(1, testImage(3))

	img, ok := c.get(1)
	if !ok {
		t.Fatal("expected key 1 to exist")
	}
	if img.Width() != 3 {
		t.Errorf("Width() = %d, want 3", img.Width())
	}

	s := c.stats()
	if s.Hits != 1 || s.Misses != 1 || s.Len != 1 || s.HitRate != 0.5 {
		t.Errorf("stats = %+v", s)
	}
}

func TestImageCacheReturnsCopies(t *testing.T) {
	c := newImageCache(4)
	orig := testImage(1)
	c.set(7, orig)

	// Mutating the stored original or a returned copy must not leak.
	orig.Data()[3] = 255
	got, _ := c.get(7)
	if !got.IsBlank() {
		t.Fatal("cache should hold its own copy")
	}
	got.Data()[3] = 255
	again, _ := c.get(7)
	if !again.IsBlank() {
		t.Error("get should return a private copy")
	}
}

func TestImageCacheEviction(t *testing.T) {
	c := newImageCache(2)
	c.set(1, testImage(1))
	c.set(2, testImage(2))
	c.get(1) // 2 becomes least recently used
	c.set(3, testImage(3))

	if _, ok := c.get(2); ok {
		t.Error("least recently used entry should be evicted")
	}
	for _, k := range []uint64{1, 3} {
		if _, ok := c.get(k); !ok {
			t.Errorf("key %d should survive", k)
		}
	}
	if s := c.stats(); s.Evictions != 1 || s.Len != 2 {
		t.Errorf("stats = %+v, want 1 eviction and 2 entries", s)
	}

	// Overwriting does not evict.
	c.set(3, testImage(4))
	if img, _ := c.get(3); img.Width() != 4 {
		t.Errorf("overwritten Width() = %d, want 4", img.Width())
	}
	if s := c.stats(); s.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", s.Evictions)
	}
}

func TestImageCacheClear(t *testing.T) {
	c := newImageCache(4)
	c.set(1, testImage(1))
	c.clear()
	if c.len() != 0 {
		t.Errorf("len() = %d after clear, want 0", c.len())
	}
	if _, ok := c.get(1); ok {
		t.Error("cleared entry should miss")
	}
}

func TestImageCacheConcurrent(t *testing.T) {
	c := newImageCache(16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range 100 {
				k := uint64(g*100 + i%20)
				if _, ok := c.get(k); !ok {
					c.set(k, testImage(1))
				}
			}
		}(g)
	}
	wg.Wait()
	if c.len() > 16 {
		t.Errorf("len() = %d exceeds capacity 16", c.len())
	}
}

func TestRequestKey(t *testing.T) {
	b := box(0, 0, 10, 10)
	base := []Fragment{{Data: "<rect/>", Bounds: b}}
	k := requestKey(1, base, b)

	if requestKey(1, []Fragment{{Data: "<rect/>", Bounds: b}}, b) != k {
		t.Error("equal requests should have equal keys")
	}

	variants := map[string]uint64{
		"zoom":      requestKey(2, base, b),
		"bounds":    requestKey(1, base, box(0, 0, 10, 11)),
		"data":      requestKey(1, []Fragment{{Data: "<rect />", Bounds: b}}, b),
		"frag box":  requestKey(1, []Fragment{{Data: "<rect/>", Bounds: b.Translate(ink.V2(1, 0))}}, b),
		"count":     requestKey(1, append(base, base...), b),
		"no frags":  requestKey(1, nil, b),
		"data join": requestKey(1, []Fragment{{Data: "<re", Bounds: b}, {Data: "ct/>", Bounds: b}}, b),
	}
	seen := map[uint64]string{k: "base"}
	for name, v := range variants {
		if other, dup := seen[v]; dup {
			t.Errorf("key for %s collides with %s", name, other)
		}
		seen[v] = name
	}
}

func BenchmarkRequestKey(b *testing.B) {
	bounds := box(0, 0, 100, 100)
	frags := make([]Fragment, 50)
	for i := range frags {
		frags[i] = Fragment{Data: `<path d="M0 0 L` + strconv.Itoa(i) + ` 10"/>`, Bounds: bounds}
	}
	b.ResetTimer()
	for range b.N {
		requestKey(1, frags, bounds)
	}
}
