// pkg/render/field_renderer.go
package render

import (
	"fmt"

	"aimon-defense/internal/config"
	"aimon-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// FieldRenderer рисует поле, башни, врагов и выстрелы. Только чтение.
type FieldRenderer struct {
	field     config.FieldConfig
	enemySize float64
	colors    FieldColors
	sprites   *SpriteCache
	ShowRange bool
}

func NewFieldRenderer(field config.FieldConfig, enemySize float64, colors FieldColors, sprites *SpriteCache) *FieldRenderer {
	return &FieldRenderer{field: field, enemySize: enemySize, colors: colors, sprites: sprites}
}

// Draw renders the current view onto screen.
func (r *FieldRenderer) Draw(screen *ebiten.Image, view interfaces.SimulationView) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.field.Width), float32(r.field.Height), r.colors.BackgroundColor, false)

	// Линия движения врагов
	laneY := float32(r.field.LaneY)
	vector.StrokeLine(screen, 0, laneY, float32(r.field.Width), laneY, config.LaneWidth, r.colors.LaneColor, true)

	r.drawTurrets(screen, view.ListTurrets())
	r.drawEnemies(screen, view.ListEnemies())
	r.drawShots(screen, view.ListEffects())
}

func (r *FieldRenderer) drawTurrets(screen *ebiten.Image, turrets []interfaces.TurretView) {
	half := float32(config.SpriteSize) / 2
	for _, t := range turrets {
		x, y := float32(t.Position.X), float32(t.Position.Y)
		if r.ShowRange {
			vector.DrawFilledCircle(screen, x, y, float32(t.Kind.Range), r.colors.RangeColor, true)
		}
		if img, ok := r.sprites.Get(t.Kind.ID); ok {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x-half), float64(y-half))
			screen.DrawImage(img, op)
			continue
		}
		vector.DrawFilledRect(screen, x-half, y-half, 2*half, 2*half, r.colors.FallbackColor, false)
	}
}

func (r *FieldRenderer) drawEnemies(screen *ebiten.Image, enemies []interfaces.EnemyView) {
	half := float32(r.enemySize) / 2
	for _, e := range enemies {
		x, y := float32(e.Position.X), float32(e.Position.Y)
		vector.DrawFilledRect(screen, x-half, y-half, 2*half, 2*half, r.colors.EnemyColor, false)
		label := fmt.Sprintf("%d", e.Health)
		text.Draw(screen, label, basicfont.Face7x13, int(x-half), int(y-half)-config.TextOffsetY/2, r.colors.TextColor)
	}
}

func (r *FieldRenderer) drawShots(screen *ebiten.Image, shots []interfaces.ShotView) {
	for _, s := range shots {
		vector.StrokeLine(screen,
			float32(s.From.X), float32(s.From.Y),
			float32(s.To.X), float32(s.To.Y),
			config.ShotWidth, r.colors.ShotColor, true)
	}
}
