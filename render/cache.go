// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"container/list"
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gogpu/ink"
)

// DefaultCacheCapacity is the number of images a Renderer keeps by default.
const DefaultCacheCapacity = 64

// CacheStats holds image cache statistics.
type CacheStats struct {
	// Len is the current number of cached images.
	Len int

	// Capacity is the maximum number of cached images.
	Capacity int

	// Hits is the number of requests served from the cache.
	Hits uint64

	// Misses is the number of requests that reached the backend.
	Misses uint64

	// HitRate is Hits / (Hits + Misses), or 0 before the first request.
	HitRate float64

	// Evictions is the number of images dropped to stay within Capacity.
	Evictions uint64
}

// imageCache is a thread-safe LRU cache of rendered images keyed on a digest
// of the request. Fragment generation is reproducible, so equal requests
// always produce equal images.
type imageCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[uint64]*list.Element
	lru      *list.List // front is most recently used

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type cacheEntry struct {
	key uint64
	img *Image
}

func newImageCache(capacity int) *imageCache {
	return &imageCache{
		capacity: capacity,
		entries:  make(map[uint64]*list.Element, capacity),
		lru:      list.New(),
	}
}

// get returns a copy of the cached image for key.
func (c *imageCache) get(key uint64) (*Image, bool) {
	c.mu.Lock()
	el, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		return nil, false
	}
	c.lru.MoveToFront(el)
	img := el.Value.(*cacheEntry).img
	c.mu.Unlock()

	c.hits.Add(1)
	return img.Clone(), true
}

// set stores a copy of img under key, evicting the least recently used
// images when full.
func (c *imageCache) set(key uint64, img *Image) {
	img = img.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).img = img
		c.lru.MoveToFront(el)
		return
	}
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.lru.PushFront(&cacheEntry{key: key, img: img})
}

func (c *imageCache) clear() {
	c.mu.Lock()
	c.entries = make(map[uint64]*list.Element, c.capacity)
	c.lru.Init()
	c.mu.Unlock()
}

func (c *imageCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *imageCache) stats() CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return CacheStats{
		Len:       c.len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}

// requestKey computes the FNV-1a digest of a render request.
func requestKey(zoom float64, fragments []Fragment, bounds ink.Box) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:]) // fnv.Write never returns an error
	}
	putBox := func(b ink.Box) {
		putFloat(b.Min.X)
		putFloat(b.Min.Y)
		putFloat(b.Max.X)
		putFloat(b.Max.Y)
	}

	putFloat(zoom)
	putBox(bounds)
	binary.LittleEndian.PutUint64(buf[:], uint64(len(fragments)))
	_, _ = h.Write(buf[:])
	for _, f := range fragments {
		putBox(f.Bounds)
		binary.LittleEndian.PutUint64(buf[:], uint64(len(f.Data)))
		_, _ = h.Write(buf[:])
		_, _ = h.Write([]byte(f.Data))
	}
	return h.Sum64()
}
