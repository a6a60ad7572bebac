// internal/ui/kind_selector.go
package ui

import (
	"image"
	"strings"

	"aimon-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
)

// KindSelector — боковая панель выбора вида башни.
type KindSelector struct {
	catalog  *defs.Catalog
	kinds    []*defs.KindDefinition
	buttons  []Button
	selected int
}

// NewKindSelector lays out one button per catalog kind in a column
// starting at (left, top).
func NewKindSelector(catalog *defs.Catalog, left, top, width, height, margin int) *KindSelector {
	ks := &KindSelector{catalog: catalog, kinds: catalog.Kinds()}
	y := top
	for _, k := range ks.kinds {
		label := "[" + strings.ToUpper(k.ID[:1]) + "] " + k.Name
		ks.buttons = append(ks.buttons, Button{
			Rect: image.Rect(left, y, left+width, y+height),
			Text: label,
		})
		y += height + margin
	}
	return ks
}

// Selected returns the currently selected kind, nil for an empty catalog.
func (ks *KindSelector) Selected() *defs.KindDefinition {
	if len(ks.kinds) == 0 {
		return nil
	}
	return ks.kinds[ks.selected]
}

// HandleClick selects the button under (x, y). Returns false if the click
// missed every button.
func (ks *KindSelector) HandleClick(x, y int) bool {
	for i, b := range ks.buttons {
		if b.Contains(x, y) {
			ks.selected = i
			return true
		}
	}
	return false
}

// HandleKey resolves a key through the catalog and selects the match.
func (ks *KindSelector) HandleKey(key string) bool {
	kind, ok := ks.catalog.Resolve(key)
	if !ok {
		return false
	}
	for i, k := range ks.kinds {
		if k.ID == kind.ID {
			ks.selected = i
			return true
		}
	}
	return false
}

func (ks *KindSelector) Draw(screen *ebiten.Image) {
	for i, b := range ks.buttons {
		b.Draw(screen, i == ks.selected)
	}
}
