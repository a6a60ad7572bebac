package system

import (
	"aimon-defense/internal/component"
	"aimon-defense/internal/config"
	"aimon-defense/internal/defs"
	"aimon-defense/internal/entity"
	"aimon-defense/internal/event"
	"aimon-defense/internal/types"
)

var testKind = &defs.KindDefinition{ID: "bulbasaur", Name: "Bulbasaur", Level: 5, Attack: 8, MovePower: 11, Range: 120}

// eventLog records every dispatched event.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestWorld(mutate func(*config.Config)) (*entity.Store, *config.Config, *event.Dispatcher, *eventLog) {
	cfg := config.Default()
	cfg.Field.LaneY = 150
	if mutate != nil {
		mutate(cfg)
	}
	store := entity.NewStore(entity.Limits{MaxEnemies: cfg.Capacity.MaxEnemies, MaxShots: cfg.Capacity.MaxShots})
	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log)
	return store, cfg, d, log
}

func addEnemy(s *entity.Store, x float64, health int) types.EntityID {
	id, err := s.AddEnemy(component.Enemy{Position: component.Position{X: x, Y: 150}, Health: health, Speed: 40})
	if err != nil {
		panic(err)
	}
	return id
}

func addTurret(s *entity.Store, x, y float64) types.EntityID {
	id, err := s.AddTurret(component.Turret{Position: component.Position{X: x, Y: y}, Kind: testKind})
	if err != nil {
		panic(err)
	}
	return id
}

func health(s *entity.Store, id types.EntityID) int {
	e, ok := s.Enemies.Get(id)
	if !ok {
		return -1 << 31
	}
	return e.Health
}
