package assets

import (
	"context"
	"image"
	"sync"
)

// Cache memoizes decoded images by name.
//
// To avoid holding the lock during decode, concurrent requests for the same
// uncached name may each invoke the loader. Only the first result is kept.
type Cache struct {
	loader *Loader

	mu    sync.Mutex
	items map[string]image.Image
}

// NewCache wraps loader with a cache.
func NewCache(loader *Loader) *Cache {
	return &Cache{loader: loader, items: make(map[string]image.Image)}
}

// Load returns the cached image or loads and caches it. Failures are not cached.
func (c *Cache) Load(ctx context.Context, name string) (image.Image, error) {
	c.mu.Lock()
	if img := c.items[name]; img != nil {
		c.mu.Unlock()
		return img, nil
	}
	c.mu.Unlock()

	img, err := c.loader.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing := c.items[name]; existing != nil {
		return existing, nil
	}
	c.items[name] = img
	return img, nil
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Purge drops every cached image.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.items = make(map[string]image.Image)
	c.mu.Unlock()
}
