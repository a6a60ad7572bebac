package system

import (
	"testing"

	"aimon-defense/internal/config"
	"aimon-defense/internal/event"
)

func TestSpawnSchedule(t *testing.T) {
	tests := []struct {
		name  string
		times []float64
		want  []int
	}{
		{"before first interval", []float64{0.5, 1.9}, []int{0, 0}},
		{"at interval", []float64{2.0}, []int{1}},
		{"regular steps", []float64{1, 2, 3, 4, 5, 6}, []int{0, 1, 0, 1, 0, 1}},
		{"catch up after a long step", []float64{7.5}, []int{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cfg, d, _ := newTestWorld(nil)
			spawner := NewSpawnSystem(store, cfg, d)
			for i, now := range tt.times {
				if got := spawner.Tick(now); got != tt.want[i] {
					t.Errorf("Tick(%v) = %d, want %d", now, got, tt.want[i])
				}
			}
		})
	}
}

func TestSpawnedEnemyBaseline(t *testing.T) {
	store, cfg, d, log := newTestWorld(nil)
	NewSpawnSystem(store, cfg, d).Tick(2)

	enemies := store.Enemies.Values()
	if len(enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(enemies))
	}
	e := enemies[0]
	if e.Position.X != 0 || e.Position.Y != cfg.Field.LaneY {
		t.Errorf("position = %+v, want lane start", e.Position)
	}
	if e.Health != 100 || e.Speed != 40 {
		t.Errorf("enemy = %+v", e)
	}
	if log.count(event.EnemySpawned) != 1 {
		t.Error("EnemySpawned not dispatched")
	}
}

func TestSpawnDisabled(t *testing.T) {
	store, cfg, d, _ := newTestWorld(func(c *config.Config) { c.Spawn.Enabled = false })
	spawner := NewSpawnSystem(store, cfg, d)
	if n := spawner.Tick(100); n != 0 || store.Enemies.Len() != 0 {
		t.Errorf("disabled spawner spawned %d", n)
	}
	if _, ok := spawner.SpawnEnemy(0); !ok {
		t.Error("manual spawn should still work")
	}
}

func TestSpawnCapacityDrops(t *testing.T) {
	store, cfg, d, log := newTestWorld(func(c *config.Config) { c.Capacity.MaxEnemies = 2 })
	spawner := NewSpawnSystem(store, cfg, d)

	if n := spawner.Tick(8); n != 2 {
		t.Errorf("spawned = %d, want 2", n)
	}
	if log.count(event.EnemyDropped) != 2 {
		t.Errorf("dropped = %d, want 2", log.count(event.EnemyDropped))
	}
	if spawner.NextSpawn() != 10 {
		t.Errorf("NextSpawn = %v, dropped spawns must still advance the schedule", spawner.NextSpawn())
	}
}
