// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"aimon-defense/internal/config"
	"aimon-defense/internal/defs"
	"aimon-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 16

// InfoPanel displays simulation counters under the kind selector.
type InfoPanel struct {
	X, Y int
}

func NewInfoPanel(x, y int) *InfoPanel {
	return &InfoPanel{X: x, Y: y}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, view interfaces.SimulationView, selected *defs.KindDefinition) {
	lines := []string{
		fmt.Sprintf("t = %.1fs", view.GameTime()),
		fmt.Sprintf("turrets: %d", len(view.ListTurrets())),
		fmt.Sprintf("enemies: %d", len(view.ListEnemies())),
	}
	if selected != nil {
		lines = append(lines,
			"",
			selected.Name,
			fmt.Sprintf("lv %d  atk %d", selected.Level, selected.Attack),
			fmt.Sprintf("range %.0f", selected.Range),
		)
	}
	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, p.X, p.Y+i*lineHeight, config.TextDarkColor)
	}
}
