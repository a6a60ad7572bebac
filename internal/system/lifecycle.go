package system

import (
	"aimon-defense/internal/component"
	"aimon-defense/internal/entity"
	"aimon-defense/internal/event"
	"aimon-defense/internal/types"
)

// LifecycleSystem removes finished entities. Removal is final.
type LifecycleSystem struct {
	ecs             *entity.Store
	eventDispatcher *event.Dispatcher
	fieldWidth      float64
}

func NewLifecycleSystem(ecs *entity.Store, fieldWidth float64, eventDispatcher *event.Dispatcher) *LifecycleSystem {
	return &LifecycleSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		fieldWidth:      fieldWidth,
	}
}

// SweepResult counts what one sweep removed.
type SweepResult struct {
	Killed  int
	Escaped int
	Expired int
}

// Sweep removes dead enemies, enemies past the far edge and expired shots,
// then compacts the store. A dead enemy past the edge counts as killed.
func (s *LifecycleSystem) Sweep(now float64) SweepResult {
	var res SweepResult

	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		var eventType event.EventType
		switch {
		case e.Dead():
			eventType = event.EnemyKilled
			res.Killed++
		case e.Position.X > s.fieldWidth:
			eventType = event.EnemyEscaped
			res.Escaped++
		default:
			return true
		}
		s.ecs.Enemies.Remove(id)
		s.eventDispatcher.Dispatch(event.Event{
			Type: eventType,
			Time: now,
			Data: event.EnemyData{ID: id, Position: e.Position, Health: e.Health},
		})
		return true
	})

	s.ecs.Shots.Each(func(id types.EntityID, shot *component.Shot) bool {
		if shot.Expired() {
			s.ecs.Shots.Remove(id)
			res.Expired++
		}
		return true
	})

	s.ecs.Compact()
	return res
}
