// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"aimon-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// Contains reports whether (x, y) lies inside the button.
func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b Button) Draw(screen *ebiten.Image, active bool) {
	var bg color.RGBA = config.ButtonColor
	if active {
		bg = config.ButtonActive
	}
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, config.TextDarkColor, false)

	face := basicfont.Face7x13
	width := len(b.Text) * face.Advance
	x := r.Min.X + (r.Dx()-width)/2
	y := r.Min.Y + (r.Dy()+face.Ascent)/2
	text.Draw(screen, b.Text, face, x, y, config.TextLightColor)
}
