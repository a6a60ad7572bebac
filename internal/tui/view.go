// Package tui draws a simulation view onto a tcell screen.
package tui

import (
	"fmt"
	"strings"

	"aimon-defense/internal/config"
	"aimon-defense/internal/defs"
	"aimon-defense/internal/interfaces"
	"aimon-defense/internal/utils"

	"github.com/gdamore/tcell/v2"
)

const shotDots = 6

var (
	styleLane    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleTurret  = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

// Grid maps field coordinates onto terminal cells. The last row is kept
// for the status line.
type Grid struct {
	Cols, Rows    int
	width, height float64
}

func NewGrid(cols, rows int, field config.FieldConfig) Grid {
	if rows > 1 {
		rows--
	}
	return Grid{Cols: cols, Rows: rows, width: field.Width, height: field.Height}
}

// ToField returns the centre of cell (cx, cy) in field coordinates.
func (g Grid) ToField(cx, cy int) (x, y float64, ok bool) {
	if cx < 0 || cy < 0 || cx >= g.Cols || cy >= g.Rows {
		return 0, 0, false
	}
	x = (float64(cx) + 0.5) * g.width / float64(g.Cols)
	y = (float64(cy) + 0.5) * g.height / float64(g.Rows)
	return x, y, true
}

// ToCell is the inverse of ToField; points off the field report false.
func (g Grid) ToCell(x, y float64) (cx, cy int, ok bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, 0, false
	}
	cx = int(x * float64(g.Cols) / g.width)
	cy = int(y * float64(g.Rows) / g.height)
	return cx, cy, true
}

// Draw renders view and a status line, then shows the screen.
func Draw(s tcell.Screen, g Grid, laneY float64, view interfaces.SimulationView, selected *defs.KindDefinition) {
	s.Clear()

	if _, ly, ok := g.ToCell(0, laneY); ok {
		for cx := 0; cx < g.Cols; cx++ {
			s.SetContent(cx, ly, '─', nil, styleLane)
		}
	}
	for _, sh := range view.ListEffects() {
		for i := 1; i <= shotDots; i++ {
			p := utils.Lerp(sh.From, sh.To, float64(i)/shotDots)
			if cx, cy, ok := g.ToCell(p.X, p.Y); ok {
				s.SetContent(cx, cy, '·', nil, styleShot)
			}
		}
		if cx, cy, ok := g.ToCell(sh.To.X, sh.To.Y); ok {
			s.SetContent(cx, cy, '*', nil, styleShot)
		}
	}
	for _, t := range view.ListTurrets() {
		if cx, cy, ok := g.ToCell(t.Position.X, t.Position.Y); ok {
			r := []rune(strings.ToUpper(t.Kind.ID))[0]
			s.SetContent(cx, cy, r, nil, styleTurret)
		}
	}
	for _, e := range view.ListEnemies() {
		if cx, cy, ok := g.ToCell(e.Position.X, e.Position.Y); ok {
			s.SetContent(cx, cy, '●', nil, styleEnemy)
		}
	}

	name := "-"
	if selected != nil {
		name = selected.Name
	}
	status := fmt.Sprintf(" t=%.1fs  kind=%s  turrets=%d  enemies=%d  [letter] kind  [click] place  [enter] spawn  [q] quit ",
		view.GameTime(), name, len(view.ListTurrets()), len(view.ListEnemies()))
	drawText(s, 0, g.Rows, status, styleStatus)
	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
