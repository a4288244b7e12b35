package picture

import (
	"fmt"
	"image"
	"sync"
)

type scaledKey struct {
	key           string
	width, height int
}

// Cache holds decoded images and their fitted versions.
// Failed keys are remembered so the view can hide them.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
	failed map[string]error
	scaled map[scaledKey]image.Image
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		images: make(map[string]image.Image),
		failed: make(map[string]error),
		scaled: make(map[scaledKey]image.Image),
	}
}

// Store records a load outcome.
func (c *Cache) Store(msg LoadedMsg) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if msg.Err != nil || msg.Image == nil {
		err := msg.Err
		if err == nil {
			err = fmt.Errorf("no image for %s", msg.Key)
		}
		c.failed[msg.Key] = err
		return
	}
	delete(c.failed, msg.Key)
	c.images[msg.Key] = msg.Image
}

// Known returns true once a load for key has completed either way.
func (c *Cache) Known(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.images[key]
	_, bad := c.failed[key]
	return ok || bad
}

// Failed returns the load error for key, if any.
func (c *Cache) Failed(key string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.failed[key]
}

// Image returns the decoded image for key.
func (c *Cache) Image(key string) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[key]
	return img, ok
}

// Fitted returns the image for key fitted to width x height cells.
func (c *Cache) Fitted(key string, width, height int) (image.Image, bool) {
	sk := scaledKey{key: key, width: width, height: height}

	c.mu.RLock()
	if img, ok := c.scaled[sk]; ok {
		c.mu.RUnlock()
		return img, true
	}
	src, ok := c.images[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	img := Fit(src, width, height)
	if img == nil {
		return nil, false
	}

	c.mu.Lock()
	c.scaled[sk] = img
	c.mu.Unlock()
	return img, true
}
