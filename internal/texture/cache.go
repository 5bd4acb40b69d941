// Package texture finds, decodes and caches images used as shader textures.
package texture

import (
	"sync"

	"softraster/internal/canvas"
	"softraster/internal/raster"
)

// Resolver resolves a texture name to a decoded canvas.
type Resolver interface {
	Resolve(texName string) (*canvas.Canvas, error)
}

// Cache is a concurrency-safe texture cache. Cached canvases are shared;
// callers must treat them as read-only.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*canvas.Canvas
	index *Index
}

// NewCache creates a new texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*canvas.Canvas),
		index: index,
	}
}

// Resolve loads and caches a texture by name.
func (c *Cache) Resolve(texName string) (*canvas.Canvas, error) {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil, &NotFoundError{Name: texName}
	}

	// Fast path: read lock
	c.mu.RLock()
	if tex, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return tex, nil
	}
	c.mu.RUnlock()

	tex, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, exists := c.items[path]; exists {
		return existing, nil
	}
	c.items[path] = tex
	raster.Logger().Debug("texture loaded", "name", texName, "path", path,
		"width", tex.Width(), "height", tex.Height())
	return tex, nil
}

// NotFoundError reports a texture name missing from the index.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "texture: " + e.Name + " not found"
}
