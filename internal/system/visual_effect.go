// internal/system/visual_effect.go
package system

import (
	"aimon-defense/internal/component"
	"aimon-defense/internal/entity"
	"aimon-defense/internal/types"
)

// VisualEffectSystem уменьшает время жизни визуальных эффектов.
// Удалением истёкших эффектов занимается LifecycleSystem.
type VisualEffectSystem struct {
	ecs *entity.Store
}

func NewVisualEffectSystem(ecs *entity.Store) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	s.ecs.Shots.Each(func(_ types.EntityID, shot *component.Shot) bool {
		shot.TTL -= deltaTime
		return true
	})
}
