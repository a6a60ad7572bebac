package system

import (
	"testing"

	"aimon-defense/internal/component"
	"aimon-defense/internal/event"
	"aimon-defense/internal/types"
)

func TestSweep(t *testing.T) {
	store, cfg, d, log := newTestWorld(nil)
	alive := addEnemy(store, 100, 50)
	zero := addEnemy(store, 200, 0)
	overkill := addEnemy(store, 300, -15)
	escaped := addEnemy(store, 900, 100)
	deadAndOut := addEnemy(store, 850, -1)
	edge := addEnemy(store, 800, 100) // exactly on the edge stays
	store.AddShot(component.Shot{TTL: 0.05})
	store.AddShot(component.Shot{TTL: 0})
	store.AddShot(component.Shot{TTL: -0.2})

	res := NewLifecycleSystem(store, cfg.Field.Width, d).Sweep(1)

	if res.Killed != 3 || res.Escaped != 1 || res.Expired != 2 {
		t.Errorf("result = %+v", res)
	}
	for _, tt := range []struct {
		name string
		id   types.EntityID
		live bool
	}{
		{"alive", alive, true},
		{"zero", zero, false},
		{"overkill", overkill, false},
		{"escaped", escaped, false},
		{"dead and out", deadAndOut, false},
		{"on edge", edge, true},
	} {
		if _, ok := store.Enemies.Get(tt.id); ok != tt.live {
			t.Errorf("%s: live = %v, want %v", tt.name, ok, tt.live)
		}
	}
	if store.Shots.Len() != 1 {
		t.Errorf("shots = %d, want 1", store.Shots.Len())
	}
	if log.count(event.EnemyKilled) != 3 || log.count(event.EnemyEscaped) != 1 {
		t.Errorf("killed events = %d, escaped events = %d", log.count(event.EnemyKilled), log.count(event.EnemyEscaped))
	}
}

func TestSweepKeepsOrder(t *testing.T) {
	store, cfg, d, _ := newTestWorld(nil)
	a := addEnemy(store, 10, 100)
	addEnemy(store, 20, 0)
	c := addEnemy(store, 30, 100)

	NewLifecycleSystem(store, cfg.Field.Width, d).Sweep(0)
	next := addEnemy(store, 0, 100)

	order := store.Enemies.IDs()
	want := []types.EntityID{a, c, next}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestMovement(t *testing.T) {
	store, _, _, _ := newTestWorld(nil)
	id := addEnemy(store, 0, 100)
	m := NewMovementSystem(store)

	m.Update(1)
	m.Update(0.5)
	m.Update(-1) // ignored

	e, _ := store.Enemies.Get(id)
	if e.Position.X != 60 || e.Position.Y != 150 {
		t.Errorf("position = %+v, want (60, 150)", e.Position)
	}
}

func TestVisualEffectAges(t *testing.T) {
	store, _, _, _ := newTestWorld(nil)
	store.AddShot(component.Shot{TTL: 0.1})
	NewVisualEffectSystem(store).Update(0.06)

	shots := store.Shots.Values()
	if len(shots) != 1 || shots[0].TTL > 0.04+1e-9 || shots[0].Expired() {
		t.Errorf("shots = %+v", shots)
	}
}
