package display

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultCacheSize = 32

// LabelTexture is a rendered label or icon and its size in pixels.
type LabelTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

type cacheEntry struct {
	key   string
	label LabelTexture
}

// TextureCache keeps rendered labels so unchanged links are not rasterized
// every frame. Keys should include everything that affects the pixels. When
// full, the least recently used texture is destroyed.
type TextureCache struct {
	entries map[string]*list.Element
	lru     *list.List // front is most recently used
	size    int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultCacheSize)
}

func NewTextureCacheWithSize(size int) *TextureCache {
	return &TextureCache{
		entries: make(map[string]*list.Element),
		lru:     list.New(),
		size:    max(size, 1),
	}
}

func (c *TextureCache) Get(key string) (LabelTexture, bool) {
	el, ok := c.entries[key]
	if !ok {
		return LabelTexture{}, false
	}
	c.lru.MoveToFront(el)
	return el.Value.(*cacheEntry).label, true
}

// Set stores label under key, destroying any texture it replaces.
func (c *TextureCache) Set(key string, label LabelTexture) {
	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry)
		if entry.label.Texture != label.Texture {
			entry.label.Texture.Destroy()
		}
		entry.label = label
		c.lru.MoveToFront(el)
		return
	}

	for c.lru.Len() >= c.size {
		c.evict(c.lru.Back())
	}
	c.entries[key] = c.lru.PushFront(&cacheEntry{key: key, label: label})
}

func (c *TextureCache) Len() int {
	return c.lru.Len()
}

func (c *TextureCache) evict(el *list.Element) {
	entry := c.lru.Remove(el).(*cacheEntry)
	delete(c.entries, entry.key)
	entry.label.Texture.Destroy()
}

// Destroy releases every cached texture. The cache stays usable.
func (c *TextureCache) Destroy() {
	for c.lru.Len() > 0 {
		c.evict(c.lru.Back())
	}
}
