package texture

import (
	"image"
	"sync"
)

// Resolver resolves a texture name to a decoded NRGBA image, or nil.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache over an Index.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img    *image.NRGBA
	loaded bool // true if we've attempted to load (img may still be nil)
}

// NewCache creates a new texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture by name. Returns nil if not found.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, _ := Load(path)

	// Write lock with double-check
	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.img
	}
	c.items[path] = &cacheEntry{img: img, loaded: true}
	c.mu.Unlock()

	return img
}

// Chain tries each resolver in order and returns the first hit.
type Chain []Resolver

func (ch Chain) Resolve(texName string) *image.NRGBA {
	for _, r := range ch {
		if r == nil {
			continue
		}
		if img := r.Resolve(texName); img != nil {
			return img
		}
	}
	return nil
}

// Static resolves from a fixed in-memory map. Used for procedural
// fallbacks so the binaries run with no assets on disk.
type Static map[string]*image.NRGBA

func (s Static) Resolve(texName string) *image.NRGBA {
	return s[texName]
}

// NewResolver returns disk textures under dir layered over fallback. With
// no dir the fallback serves everything.
func NewResolver(dir string, fallback Static) Resolver {
	if dir == "" {
		return fallback
	}
	return Chain{NewCache(BuildIndex(dir)), fallback}
}
