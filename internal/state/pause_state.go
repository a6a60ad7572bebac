// internal/state/pause_state.go
package state

import (
	"image/color"

	"aimon-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the previous state: it keeps drawing it but never
// forwards the delta, so game time does not advance.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 128}, false)

	pauseText := "PAUSED"
	x := (w - len(pauseText)*basicfont.Face7x13.Advance) / 2
	text.Draw(screen, pauseText, basicfont.Face7x13, x, h/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
