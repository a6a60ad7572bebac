// cmd/tui/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"aimon-defense/internal/app"
	"aimon-defense/internal/clock"
	"aimon-defense/internal/config"
	"aimon-defense/internal/defs"
	"aimon-defense/internal/event"
	"aimon-defense/internal/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	shotTone   = 880
	toneGap    = 80 * time.Millisecond
)

type terminal struct {
	screen   tcell.Screen
	session  *app.Session
	selected *defs.KindDefinition
	grid     tui.Grid
	pressed  bool

	audioInit bool
	lastTone  time.Time
}

func (t *terminal) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		t.audioInit = true
	}
	return err
}

// OnEvent plays a short tone per shot, at most one per toneGap.
func (t *terminal) OnEvent(e event.Event) {
	if !t.audioInit || time.Since(t.lastTone) < toneGap {
		return
	}
	t.lastTone = time.Now()
	sine, err := generators.SineTone(sampleRate, shotTone)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(40*time.Millisecond), sine))
}

// handleEvent returns false when the user asked to quit.
func (t *terminal) handleEvent(ev tcell.Event) bool {
	sim := t.session.Sim
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := t.screen.Size()
		t.grid = tui.NewGrid(cols, rows, sim.Config.Field)
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			sim.Submit(app.SpawnCommand())
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			if kind, ok := sim.Catalog.Resolve(string(ev.Rune())); ok {
				t.selected = kind
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		wasDown := t.pressed
		t.pressed = down
		if !down || wasDown || t.selected == nil {
			return true
		}
		cx, cy := ev.Position()
		if x, y, ok := t.grid.ToField(cx, cy); ok {
			sim.Submit(app.PlaceTurretCommand(x, y, t.selected.ID))
		}
	}
	return true
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	recordPath := flag.String("record", "", "Write a msgpack replay to this file")
	logPath := flag.String("log", "aimon-tui.log", "Log file (the terminal is owned by the UI)")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	session, err := app.OpenSession(app.SessionOptions{ConfigPath: *configPath, RecordPath: *recordPath})
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()
	cfg := session.Sim.Config

	clk, err := clock.New(cfg.Clock, clock.SystemTime{})
	if err != nil {
		log.Fatal(err)
	}
	interval := time.Duration(config.TerminalTickMs) * time.Millisecond
	if fixed, ok := clk.(clock.FixedClock); ok {
		interval = fixed.Interval()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	cols, rows := screen.Size()
	t := &terminal{
		screen:  screen,
		session: session,
		grid:    tui.NewGrid(cols, rows, cfg.Field),
	}
	if kinds := session.Sim.Catalog.Kinds(); len(kinds) > 0 {
		t.selected = kinds[0]
	}
	if err := t.initAudio(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	session.Sim.EventDispatcher.Subscribe(event.ShotFired, t)

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			sim := session.Sim
			sim.Submit(app.TickCommand(clk.Delta()))
			sim.Process()
			session.Observe()
			tui.Draw(screen, t.grid, cfg.Field.LaneY, sim, t.selected)
		}
	}
}
