// internal/state/title_state.go
package state

import (
	"aimon-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*TitleState)(nil)

// TitleState — заставка до начала игры.
type TitleState struct {
	sm   *StateMachine
	next func() State
}

// NewTitleState shows the title until Space or a click, then switches to
// the state built by next.
func NewTitleState(sm *StateMachine, next func() State) *TitleState {
	return &TitleState{sm: sm, next: next}
}

func (t *TitleState) Enter() {}

func (t *TitleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		t.sm.SetState(t.next())
	}
}

func (t *TitleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.TextDarkColor)
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	face := basicfont.Face7x13
	for i, line := range []string{"AIMON DEFENSE", "", "Press SPACE or click to start"} {
		x := (w - len(line)*face.Advance) / 2
		text.Draw(screen, line, face, x, h/2+i*config.TextOffsetY*2, config.TextLightColor)
	}
}

func (t *TitleState) Exit() {}
