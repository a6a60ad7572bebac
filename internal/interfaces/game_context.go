// internal/interfaces/game_context.go
package interfaces

import (
	"aimon-defense/internal/component"
	"aimon-defense/internal/types"
)

// TurretView is a copy of a turret handed to readers.
type TurretView struct {
	ID types.EntityID
	component.Turret
}

// EnemyView is a copy of an enemy handed to readers.
type EnemyView struct {
	ID types.EntityID
	component.Enemy
}

// ShotView is a copy of a shot effect handed to readers.
type ShotView struct {
	ID types.EntityID
	component.Shot
}

// SimulationView — то, что рендерер и UI могут читать из симуляции.
// Every call returns fresh copies, so reading never mutates the store.
type SimulationView interface {
	ListTurrets() []TurretView
	ListEnemies() []EnemyView
	ListEffects() []ShotView
	GameTime() float64
}
