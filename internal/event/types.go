// internal/event/types.go
package event

import (
	"aimon-defense/internal/component"
	"aimon-defense/internal/types"
)

const (
	TurretPlaced      EventType = "TurretPlaced"      // Башня размещена
	PlacementRejected EventType = "PlacementRejected" // Вид не выбран или не найден
	EnemySpawned      EventType = "EnemySpawned"
	EnemyDropped      EventType = "EnemyDropped" // Пул врагов заполнен
	EnemyHit          EventType = "EnemyHit"
	ShotFired         EventType = "ShotFired"
	EnemyKilled       EventType = "EnemyKilled"  // Здоровье <= 0
	EnemyEscaped      EventType = "EnemyEscaped" // Вышел за границу поля
)

// TurretPlacedData is the payload of TurretPlaced.
type TurretPlacedData struct {
	ID       types.EntityID
	Kind     string
	Position component.Position
}

// PlacementRejectedData is the payload of PlacementRejected.
type PlacementRejectedData struct {
	Key      string
	Position component.Position
}

// EnemyData is the payload of EnemySpawned, EnemyKilled and EnemyEscaped.
type EnemyData struct {
	ID       types.EntityID
	Position component.Position
	Health   int
}

// HitData is the payload of EnemyHit.
type HitData struct {
	TurretID types.EntityID
	EnemyID  types.EntityID
	Damage   int
	Health   int // after the hit
}

// ShotData is the payload of ShotFired.
type ShotData struct {
	TurretID types.EntityID
	Shot     component.Shot
}
