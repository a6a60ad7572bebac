// internal/state/play_state.go
package state

import (
	"log"

	"aimon-defense/internal/app"
	"aimon-defense/internal/config"
	"aimon-defense/internal/ui"
	"aimon-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PlayState)(nil)

// PlayState — основное состояние: ввод, шаг симуляции, отрисовка.
type PlayState struct {
	sm        *StateMachine
	session   *app.Session
	sim       *app.Simulation
	renderer  *render.FieldRenderer
	selector  *ui.KindSelector
	infoPanel *ui.InfoPanel
	inputBuf  []rune
}

// NewPlayState wires a session's simulation to the ebiten frontend.
func NewPlayState(sm *StateMachine, session *app.Session, sprites *render.SpriteCache) *PlayState {
	sim := session.Sim
	field := sim.Config.Field
	left := int(field.Width) + config.ButtonMargin
	width := config.SidebarWidth - 2*config.ButtonMargin
	selector := ui.NewKindSelector(sim.Catalog, left, config.ButtonMargin, width, config.ButtonHeight, config.ButtonMargin)
	panelTop := config.ButtonMargin + sim.Catalog.Len()*(config.ButtonHeight+config.ButtonMargin) + config.TextOffsetY*2

	log.Printf("Session %s started", sim.ID)
	return &PlayState{
		sm:        sm,
		session:   session,
		sim:       sim,
		renderer:  render.NewFieldRenderer(field, sim.Config.Enemy.Size, render.DefaultFieldColors(), sprites),
		selector:  selector,
		infoPanel: ui.NewInfoPanel(left, panelTop),
	}
}

func (g *PlayState) Enter() {}

func (g *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.renderer.ShowRange = !g.renderer.ShowRange
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sim.Submit(app.SpawnCommand())
	}

	g.inputBuf = ebiten.AppendInputChars(g.inputBuf[:0])
	for _, r := range g.inputBuf {
		g.selector.HandleKey(string(r))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}

	// Команды пользователя применяются до шага, в порядке поступления.
	g.sim.Submit(app.TickCommand(deltaTime))
	g.sim.Process()
	g.session.Observe()
}

func (g *PlayState) handleClick(x, y int) {
	if g.selector.HandleClick(x, y) {
		return
	}
	field := g.sim.Config.Field
	if float64(x) >= field.Width || float64(y) >= field.Height {
		return
	}
	kind := g.selector.Selected()
	if kind == nil {
		return
	}
	g.sim.Submit(app.PlaceTurretCommand(float64(x), float64(y), kind.ID))
}

func (g *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.sim)
	g.selector.Draw(screen)
	g.infoPanel.Draw(screen, g.sim, g.selector.Selected())
}

func (g *PlayState) Exit() {}

