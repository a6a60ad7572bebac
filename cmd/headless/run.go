// cmd/headless/run.go
package main

import (
	"fmt"

	"aimon-defense/internal/app"
	"aimon-defense/internal/event"
	"aimon-defense/internal/utils"
)

type runOptions struct {
	Duration float64 // seconds of game time
	Turrets  int
	KindKey  string // empty = random kind per turret
	Seed     int64
}

// tally counts whole-run totals for the summary line.
type tally struct {
	Spawned, Dropped, Killed, Escaped, Shots, Placed, Rejected int
}

func (t *tally) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		t.Spawned++
	case event.EnemyDropped:
		t.Dropped++
	case event.EnemyKilled:
		t.Killed++
	case event.EnemyEscaped:
		t.Escaped++
	case event.ShotFired:
		t.Shots++
	case event.TurretPlaced:
		t.Placed++
	case event.PlacementRejected:
		t.Rejected++
	}
}

func (t tally) String() string {
	return fmt.Sprintf("spawned=%d dropped=%d killed=%d escaped=%d shots=%d placed=%d rejected=%d",
		t.Spawned, t.Dropped, t.Killed, t.Escaped, t.Shots, t.Placed, t.Rejected)
}

// run places the seeded turrets and steps the session at the configured
// fixed step until Duration seconds of game time have passed.
func run(session *app.Session, opts runOptions) *tally {
	sim := session.Sim
	cfg := sim.Config
	counts := &tally{}
	sim.EventDispatcher.SubscribeAll(counts)

	rng := utils.NewPRNGService(opts.Seed)
	kinds := sim.Catalog.Kinds()
	for i := 0; i < opts.Turrets && len(kinds) > 0; i++ {
		key := opts.KindKey
		if key == "" {
			key = kinds[rng.Intn(len(kinds))].ID
		}
		reach := 0.0
		if kind, ok := sim.Catalog.Resolve(key); ok {
			reach = kind.Range * 0.9
		}
		pos := rng.PointNearLane(cfg.Field.Width, cfg.Field.Height, cfg.Field.LaneY, reach)
		sim.Submit(app.PlaceTurretCommand(pos.X, pos.Y, key))
	}
	sim.Process()

	step := cfg.Clock.FixedStep
	for sim.GameTime() < opts.Duration {
		sim.Submit(app.TickCommand(step))
		sim.Process()
		session.Observe()
	}
	return counts
}
