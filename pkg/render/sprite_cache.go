package render

import (
	"aimon-defense/internal/assets"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteCache turns decoded sprites into ebiten images on first use.
// It must only be used from the ebiten update/draw goroutine.
type SpriteCache struct {
	set    *assets.SpriteSet
	images map[string]*ebiten.Image
}

func NewSpriteCache(set *assets.SpriteSet) *SpriteCache {
	return &SpriteCache{set: set, images: make(map[string]*ebiten.Image)}
}

// Get returns the sprite for a kind, or false while it is still loading
// or if loading failed.
func (c *SpriteCache) Get(kindID string) (*ebiten.Image, bool) {
	if img, ok := c.images[kindID]; ok {
		return img, true
	}
	if c.set == nil {
		return nil, false
	}
	src, ok := c.set.Get(kindID)
	if !ok {
		return nil, false
	}
	img := ebiten.NewImageFromImage(src)
	c.images[kindID] = img
	return img, true
}
