// Package assets fetches and prepares turret sprites. Loading runs in the
// background and never blocks or fails the simulation.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"aimon-defense/internal/defs"

	"golang.org/x/image/draw"
)

// Loader downloads sprite images and scales them to a square of Size pixels.
type Loader struct {
	client *http.Client
	size   int
}

// NewLoader creates a loader with the given request timeout and output size.
func NewLoader(timeout time.Duration, size int) *Loader {
	return &Loader{
		client: &http.Client{Timeout: timeout},
		size:   size,
	}
}

// Fetch downloads, decodes and scales one sprite.
func (l *Loader) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sprite: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching sprite: unexpected status %s", resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding sprite: %w", err)
	}
	return Scale(img, l.size), nil
}

// Scale resizes src into a size x size RGBA image.
func Scale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// SpriteSet holds sprites keyed by kind id as they arrive.
type SpriteSet struct {
	mu     sync.RWMutex
	images map[string]image.Image
	errs   map[string]error
	wg     sync.WaitGroup
}

// LoadAll starts one background fetch per kind and returns immediately.
// Kinds without a sprite reference are skipped.
func (l *Loader) LoadAll(ctx context.Context, kinds []*defs.KindDefinition) *SpriteSet {
	set := &SpriteSet{
		images: make(map[string]image.Image),
		errs:   make(map[string]error),
	}
	for _, kind := range kinds {
		if kind.Sprite == "" {
			continue
		}
		set.wg.Add(1)
		go func(id, url string) {
			defer set.wg.Done()
			img, err := l.Fetch(ctx, url)
			set.mu.Lock()
			defer set.mu.Unlock()
			if err != nil {
				log.Printf("Sprite for %s not loaded: %v", id, err)
				set.errs[id] = err
				return
			}
			set.images[id] = img
		}(kind.ID, kind.Sprite)
	}
	return set
}

// Get returns the sprite for a kind if it has finished loading.
func (s *SpriteSet) Get(id string) (image.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[id]
	return img, ok
}

// Err returns the load error for a kind, if any.
func (s *SpriteSet) Err(id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errs[id]
}

// Wait blocks until every fetch has finished.
func (s *SpriteSet) Wait() {
	s.wg.Wait()
}
