// internal/system/spawn.go
package system

import (
	"errors"
	"log"

	"aimon-defense/internal/component"
	"aimon-defense/internal/config"
	"aimon-defense/internal/entity"
	"aimon-defense/internal/event"
	"aimon-defense/internal/types"
)

// SpawnSystem выпускает одного врага в начале линии каждые Interval секунд.
// Без разброса и без роста сложности.
type SpawnSystem struct {
	ecs             *entity.Store
	eventDispatcher *event.Dispatcher
	laneY           float64
	health          int
	speed           float64
	enabled         bool
	interval        float64
	nextSpawn       float64
	dropLogged      bool
}

func NewSpawnSystem(ecs *entity.Store, cfg *config.Config, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		laneY:           cfg.Field.LaneY,
		health:          cfg.Enemy.Health,
		speed:           cfg.Enemy.Speed,
		enabled:         cfg.Spawn.Enabled,
		interval:        cfg.Spawn.Interval,
		nextSpawn:       cfg.Spawn.Interval,
	}
}

// Tick fires once for every period boundary reached by now and returns the
// number of enemies spawned. The first fire happens at now == Interval.
func (s *SpawnSystem) Tick(now float64) int {
	if !s.enabled {
		return 0
	}
	spawned := 0
	for now >= s.nextSpawn {
		if _, ok := s.SpawnEnemy(s.nextSpawn); ok {
			spawned++
		}
		s.nextSpawn += s.interval
	}
	return spawned
}

// NextSpawn returns the game time of the next scheduled spawn.
func (s *SpawnSystem) NextSpawn() float64 {
	return s.nextSpawn
}

// SpawnEnemy appends one baseline enemy at x = 0 on the lane.
// It fails only when the enemy pool has a cap and is full.
func (s *SpawnSystem) SpawnEnemy(now float64) (types.EntityID, bool) {
	enemy := component.Enemy{
		Position: component.Position{X: 0, Y: s.laneY},
		Health:   s.health,
		Speed:    s.speed,
	}
	id, err := s.ecs.AddEnemy(enemy)
	if err != nil {
		if errors.Is(err, entity.ErrPoolFull) && !s.dropLogged {
			log.Printf("SpawnSystem: enemy pool full (%d live), dropping spawns", s.ecs.Enemies.Len())
			s.dropLogged = true
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDropped, Time: now})
		return 0, false
	}
	s.dropLogged = false
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Time: now,
		Data: event.EnemyData{ID: id, Position: enemy.Position, Health: enemy.Health},
	})
	return id, true
}
