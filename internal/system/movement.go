// internal/system/movement.go
package system

import (
	"aimon-defense/internal/component"
	"aimon-defense/internal/entity"
	"aimon-defense/internal/types"
)

// MovementSystem двигает врагов вдоль прямой линии.
type MovementSystem struct {
	ecs *entity.Store
}

func NewMovementSystem(ecs *entity.Store) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update advances every enemy by speed*dt along x. y never changes.
func (s *MovementSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	s.ecs.Enemies.Each(func(_ types.EntityID, e *component.Enemy) bool {
		e.Position.X += e.Speed * deltaTime
		return true
	})
}
