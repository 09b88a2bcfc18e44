package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// TextureCache keeps recently used textures, evicting the least recently used.
// Card labels are re-used across frames while a card is on screen, so the
// cache only needs to cover the visible window plus the card leaving it.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string
	maxSize  int
}

func NewTextureCache(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture, maxSize),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// GetOrCreate returns the cached texture for key, building it with create on
// a miss. Failed creations are not cached.
func (c *TextureCache) GetOrCreate(key string, create func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	if texture, ok := c.textures[key]; ok {
		c.touch(key)
		return texture, nil
	}

	texture, err := create()
	if err != nil {
		return nil, err
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = texture
	c.order = append(c.order, key)
	return texture, nil
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if texture, ok := c.textures[oldest]; ok {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	clear(c.textures)
	c.order = c.order[:0]
}
