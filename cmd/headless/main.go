// cmd/headless/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"aimon-defense/internal/app"
	"aimon-defense/internal/config"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	duration := flag.Float64("duration", 60, "Seconds of game time to simulate")
	turrets := flag.Int("turrets", 3, "Number of turrets to place near the lane")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	kind := flag.String("kind", "", "Kind key for every turret (empty = random)")
	recordPath := flag.String("record", "", "Write a msgpack replay to this file")
	replayPath := flag.String("replay", "", "Re-run a recorded replay and print the result")
	outputDir := flag.String("out", "", "Output directory for telemetry CSV and config snapshot")
	flag.Parse()

	if *replayPath != "" {
		replay(*replayPath)
		return
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	session, err := app.OpenSession(app.SessionOptions{
		ConfigPath: *configPath,
		RecordPath: *recordPath,
		Override: func(cfg *config.Config) {
			if *outputDir != "" {
				cfg.Telemetry.OutputDir = *outputDir
			}
		},
	})
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}

	log.Printf("Headless: session %s seed=%d duration=%.1fs turrets=%d", session.Sim.ID, rngSeed, *duration, *turrets)
	started := time.Now()
	counts := run(session, runOptions{
		Duration: *duration,
		Turrets:  *turrets,
		KindKey:  *kind,
		Seed:     rngSeed,
	})
	if err := session.Close(); err != nil {
		log.Fatalf("Shutdown: %v", err)
	}
	log.Printf("Headless: %d ticks in %v, %s", session.Sim.Ticks(), time.Since(started).Round(time.Millisecond), counts)
}

func replay(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Opening replay: %v", err)
	}
	defer f.Close()

	sim, err := app.Replay(f)
	if err != nil {
		log.Fatalf("Replay: %v", err)
	}
	log.Printf("Replay: session %s t=%.2fs ticks=%d turrets=%d enemies=%d effects=%d",
		sim.ID, sim.GameTime(), sim.Ticks(), len(sim.ListTurrets()), len(sim.ListEnemies()), len(sim.ListEffects()))
}
