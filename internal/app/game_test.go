package app

import (
	"errors"
	"testing"

	"aimon-defense/internal/component"
	"aimon-defense/internal/config"
	"aimon-defense/internal/event"
)

// newTestSim builds a simulation with the lane at y=150 and the periodic
// spawner off, so tests control every enemy.
func newTestSim(t *testing.T, mutate func(*config.Config)) *Simulation {
	t.Helper()
	cfg := config.Default()
	cfg.Field.LaneY = 150
	cfg.Spawn.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config: %v", err)
	}
	return New(cfg, nil)
}

func mustPlace(t *testing.T, sim *Simulation, x, y float64, key string) {
	t.Helper()
	if _, err := sim.PlaceTurret(component.Position{X: x, Y: y}, key); err != nil {
		t.Fatalf("PlaceTurret(%s): %v", key, err)
	}
}

func TestScenarioFirstHit(t *testing.T) {
	for _, model := range []string{config.FireModelCooldown, config.FireModelTimestamp} {
		t.Run(model, func(t *testing.T) {
			sim := newTestSim(t, func(c *config.Config) { c.Combat.FireModel = model })
			mustPlace(t, sim, 50, 150, "b")
			if _, ok := sim.SpawnEnemy(); !ok {
				t.Fatal("spawn failed")
			}

			sim.Step(1.0)

			enemies := sim.ListEnemies()
			if len(enemies) != 1 || enemies[0].Health != 60 {
				t.Fatalf("enemies = %+v, want one at health 60", enemies)
			}
			turret := sim.ListTurrets()[0]
			if turret.Cooldown != 0.8 || turret.LastShot != 1.0 {
				t.Errorf("turret = %+v, want cooldown 0.8 and last shot 1.0", turret.Turret)
			}
		})
	}
}

func TestScenarioEntersRangeLater(t *testing.T) {
	sim := newTestSim(t, nil)
	// 200 units down the lane: the enemy enters range at x >= 80.
	mustPlace(t, sim, 200, 150, "bulbasaur")
	sim.SpawnEnemy()

	for i := 0; i < 10; i++ {
		sim.Step(1.0)
		e := sim.ListEnemies()[0]
		inRange := e.Position.X >= 80
		if !inRange && e.Health != 100 {
			t.Fatalf("hit at x=%v before entering range", e.Position.X)
		}
		if inRange {
			if e.Health != 60 {
				t.Errorf("health on first in-range tick = %d, want 60", e.Health)
			}
			return
		}
	}
	t.Fatal("enemy never entered range")
}

func TestScenarioTwoHitsNotRemoved(t *testing.T) {
	sim := newTestSim(t, nil)
	mustPlace(t, sim, 50, 150, "b")
	sim.SpawnEnemy()

	sim.Step(1.0)
	sim.Step(1.0)

	enemies := sim.ListEnemies()
	if len(enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(enemies))
	}
	if enemies[0].Health != 20 {
		t.Errorf("health = %d, want 20", enemies[0].Health)
	}
}

func TestScenarioExactKillRemoved(t *testing.T) {
	sim := newTestSim(t, func(c *config.Config) { c.Enemy.Health = 80 })
	mustPlace(t, sim, 50, 150, "b")
	sim.SpawnEnemy()

	sim.Step(1.0)
	if len(sim.ListEnemies()) != 1 {
		t.Fatal("enemy removed too early")
	}
	sim.Step(1.0) // health 80 -> 40 -> 0
	if n := len(sim.ListEnemies()); n != 0 {
		t.Errorf("enemies = %d, want 0 after reaching exactly 0", n)
	}
}

func TestScenarioEscapeRemoved(t *testing.T) {
	sim := newTestSim(t, nil)
	sim.SpawnEnemy()

	// 40 u/s: past 800 after 21 s.
	for i := 0; i < 20; i++ {
		sim.Step(1.0)
	}
	if len(sim.ListEnemies()) != 1 {
		t.Fatal("enemy removed before leaving the field")
	}
	sim.Step(1.0)
	if len(sim.ListEnemies()) != 0 {
		t.Error("escaped enemy not removed")
	}
}

func TestScenarioEscapeWithFullHealth(t *testing.T) {
	sim := newTestSim(t, nil)
	id, _ := sim.SpawnEnemy()
	e, _ := sim.ECS.Enemies.Get(id)
	e.Position.X = 900

	var escaped []event.Event
	sim.EventDispatcher.Subscribe(event.EnemyEscaped, event.ListenerFunc(func(ev event.Event) { escaped = append(escaped, ev) }))
	sim.Step(0)

	if len(sim.ListEnemies()) != 0 {
		t.Error("enemy past the edge not removed")
	}
	if len(escaped) != 1 {
		t.Errorf("EnemyEscaped = %d, want 1", len(escaped))
	}
}

func TestScenarioTwoTurretsSameTick(t *testing.T) {
	tests := []struct {
		name        string
		health      int
		wantHealth  int
		wantRemoved bool
	}{
		{"survives", 100, 10, false},
		{"sum kills", 90, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSim(t, func(c *config.Config) { c.Enemy.Health = tt.health })
			mustPlace(t, sim, 50, 150, "bulbasaur")  // 40 damage
			mustPlace(t, sim, 60, 160, "charmander") // 50 damage
			sim.SpawnEnemy()

			var hits int
			sim.EventDispatcher.Subscribe(event.EnemyHit, event.ListenerFunc(func(event.Event) { hits++ }))
			sim.Step(0.5)

			if hits != 2 {
				t.Errorf("hits = %d, want 2", hits)
			}
			enemies := sim.ListEnemies()
			if tt.wantRemoved {
				if len(enemies) != 0 {
					t.Errorf("enemy not removed, health %d", enemies[0].Health)
				}
				return
			}
			if len(enemies) != 1 || enemies[0].Health != tt.wantHealth {
				t.Errorf("enemies = %+v, want health %d", enemies, tt.wantHealth)
			}
		})
	}
}

func TestSpawnerThroughStep(t *testing.T) {
	sim := newTestSim(t, func(c *config.Config) { c.Spawn.Enabled = true })
	sim.Step(1.0)
	if len(sim.ListEnemies()) != 0 {
		t.Fatal("spawned before the first interval")
	}
	sim.Step(1.0)
	enemies := sim.ListEnemies()
	if len(enemies) != 1 {
		t.Fatalf("enemies = %d, want 1 at t=2", len(enemies))
	}
	// The step that spawns also moves the new enemy.
	if enemies[0].Position.X != 40 {
		t.Errorf("x = %v, want 40", enemies[0].Position.X)
	}
}

func TestEnemyInvariantsOverLongRun(t *testing.T) {
	sim := newTestSim(t, func(c *config.Config) {
		c.Spawn.Enabled = true
		c.Spawn.Interval = 0.7
	})
	mustPlace(t, sim, 100, 150, "b")
	mustPlace(t, sim, 400, 200, "c")
	mustPlace(t, sim, 700, 100, "s")

	type snapshot struct {
		x      float64
		health int
	}
	last := map[uint64]snapshot{}
	for i := 0; i < 600; i++ {
		sim.Step(0.05)
		for _, e := range sim.ListEnemies() {
			if e.Position.Y != 150 {
				t.Fatalf("enemy %d left the lane: y=%v", e.ID, e.Position.Y)
			}
			if e.Health <= 0 {
				t.Fatalf("dead enemy %d survived a sweep", e.ID)
			}
			if e.Position.X > sim.Config.Field.Width {
				t.Fatalf("escaped enemy %d survived a sweep", e.ID)
			}
			if prev, ok := last[uint64(e.ID)]; ok {
				if e.Position.X < prev.x {
					t.Fatalf("enemy %d moved backwards", e.ID)
				}
				if e.Health > prev.health {
					t.Fatalf("enemy %d healed", e.ID)
				}
			}
			last[uint64(e.ID)] = snapshot{e.Position.X, e.Health}
		}
		for _, s := range sim.ListEffects() {
			if s.TTL <= 0 {
				t.Fatalf("expired shot %d survived a sweep", s.ID)
			}
		}
	}
	if sim.GameTime() < 29.99 {
		t.Errorf("GameTime = %v", sim.GameTime())
	}
}

func TestAtMostOneHitPerFireInterval(t *testing.T) {
	sim := newTestSim(t, func(c *config.Config) { c.Enemy.Health = 100000 })
	tid, _ := sim.PlaceTurret(component.Position{X: 50, Y: 150}, "b")
	sim.SpawnEnemy()

	var times []float64
	sim.EventDispatcher.Subscribe(event.EnemyHit, event.ListenerFunc(func(e event.Event) {
		if e.Data.(event.HitData).TurretID == tid {
			times = append(times, e.Time)
		}
	}))
	for i := 0; i < 100; i++ {
		sim.Step(0.03)
	}
	if len(times) < 2 {
		t.Fatalf("hits = %d", len(times))
	}
	for i := 1; i < len(times); i++ {
		if times[i]-times[i-1] < sim.Config.Combat.FireRate-1e-9 {
			t.Errorf("hits at %.3f and %.3f", times[i-1], times[i])
		}
	}
}

func TestListsReturnCopies(t *testing.T) {
	sim := newTestSim(t, nil)
	mustPlace(t, sim, 50, 150, "b")
	sim.SpawnEnemy()
	sim.Step(0.05)

	enemies := sim.ListEnemies()
	enemies[0].Health = 1
	enemies[0].Position.X = 500
	turrets := sim.ListTurrets()
	turrets[0].Position.X = 999
	effects := sim.ListEffects()
	if len(effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(effects))
	}
	effects[0].TTL = 99

	if e := sim.ListEnemies()[0]; e.Health == 1 || e.Position.X == 500 {
		t.Error("ListEnemies exposed internal state")
	}
	if sim.ListTurrets()[0].Position.X == 999 {
		t.Error("ListTurrets exposed internal state")
	}
	if sim.ListEffects()[0].TTL == 99 {
		t.Error("ListEffects exposed internal state")
	}
}

func TestShotExpiresAfterTTL(t *testing.T) {
	sim := newTestSim(t, nil)
	mustPlace(t, sim, 50, 150, "b")
	sim.SpawnEnemy()

	sim.Step(0.05)
	if len(sim.ListEffects()) != 1 {
		t.Fatal("shot not visible on the tick it was fired")
	}
	sim.Step(0.05) // TTL 0.1 - 0.05 - 0.05 = 0
	if len(sim.ListEffects()) != 0 {
		t.Error("shot outlived its TTL")
	}
}

func TestInvalidPlacement(t *testing.T) {
	sim := newTestSim(t, nil)
	var rejected int
	sim.EventDispatcher.Subscribe(event.PlacementRejected, event.ListenerFunc(func(event.Event) { rejected++ }))

	for _, key := range []string{"", "z", "mewtwo"} {
		if _, err := sim.PlaceTurret(component.Position{X: 10, Y: 10}, key); !errors.Is(err, ErrInvalidPlacement) {
			t.Errorf("PlaceTurret(%q) err = %v, want ErrInvalidPlacement", key, err)
		}
	}
	if _, err := sim.PlaceTurretKind(component.Position{}, nil); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("nil kind err = %v", err)
	}
	if len(sim.ListTurrets()) != 0 {
		t.Error("invalid placement created a turret")
	}
	if rejected != 4 {
		t.Errorf("PlacementRejected = %d, want 4", rejected)
	}
}

func TestPlacementAnywhere(t *testing.T) {
	sim := newTestSim(t, nil)
	// No collision or path checks: stacked and off-lane turrets are fine.
	mustPlace(t, sim, 10, 10, "s")
	mustPlace(t, sim, 10, 10, "s")
	mustPlace(t, sim, 799, 599, "c")
	turrets := sim.ListTurrets()
	if len(turrets) != 3 {
		t.Fatalf("turrets = %d", len(turrets))
	}
	if turrets[0].Kind.ID != "squirtle" || turrets[2].Kind.ID != "charmander" {
		t.Errorf("kinds = %s, %s", turrets[0].Kind.ID, turrets[2].Kind.ID)
	}
}

func TestMovePowerFormula(t *testing.T) {
	sim := newTestSim(t, func(c *config.Config) { c.Combat.DamageFormula = config.DamageMovePower })
	kind, _ := sim.Catalog.Resolve("b")
	sim.PlaceTurretKind(component.Position{X: 50, Y: 150}, kind)
	sim.SpawnEnemy()
	sim.Step(0.1)

	want := 100 - kind.Level*kind.MovePower
	if got := sim.ListEnemies()[0].Health; got != want {
		t.Errorf("health = %d, want %d", got, want)
	}
}

func TestIndependentSimulations(t *testing.T) {
	a := newTestSim(t, nil)
	b := newTestSim(t, nil)
	mustPlace(t, a, 50, 150, "b")
	a.SpawnEnemy()
	a.Step(1)

	if len(b.ListTurrets()) != 0 || len(b.ListEnemies()) != 0 || b.GameTime() != 0 {
		t.Error("simulations share state")
	}
	if a.ID == b.ID {
		t.Error("session ids collide")
	}
}
