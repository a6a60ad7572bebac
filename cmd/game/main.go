// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"math"
	"time"

	"aimon-defense/internal/app"
	"aimon-defense/internal/assets"
	"aimon-defense/internal/clock"
	"aimon-defense/internal/config"
	"aimon-defense/internal/state"
	"aimon-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
	clock        clock.Clock
	width        int
	height       int
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.clock.Delta())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	skipTitle := flag.Bool("skip-title", false, "Start directly in the field")
	recordPath := flag.String("record", "", "Write a msgpack replay to this file")
	flag.Parse()

	session, err := app.OpenSession(app.SessionOptions{ConfigPath: *configPath, RecordPath: *recordPath})
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}
	cfg := session.Sim.Config

	clk, err := clock.New(cfg.Clock, clock.SystemTime{})
	if err != nil {
		log.Fatal(err)
	}
	if fixed, ok := clk.(clock.FixedClock); ok {
		ebiten.SetTPS(int(math.Round(1 / fixed.Step)))
	}

	// Спрайты грузятся в фоне; до загрузки рисуется синий квадрат.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loader := assets.NewLoader(config.SpriteTimeout*time.Second, config.SpriteSize)
	sprites := render.NewSpriteCache(loader.LoadAll(ctx, session.Sim.Catalog.Kinds()))

	sm := state.NewStateMachine()
	play := func() state.State { return state.NewPlayState(sm, session, sprites) }
	if *skipTitle {
		sm.SetState(play())
	} else {
		sm.SetState(state.NewTitleState(sm, play))
	}

	a := &AppGame{
		stateMachine: sm,
		clock:        clk,
		width:        int(cfg.Field.Width) + config.SidebarWidth,
		height:       int(cfg.Field.Height),
	}
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle("Aimon Defense")
	runErr := ebiten.RunGame(a)
	if err := session.Close(); err != nil {
		log.Printf("Shutdown: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
