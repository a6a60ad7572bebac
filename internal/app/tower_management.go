// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"
	"log"

	"aimon-defense/internal/component"
	"aimon-defense/internal/defs"
	"aimon-defense/internal/event"
	"aimon-defense/internal/types"
)

// ErrInvalidPlacement is returned when a placement names no known kind.
var ErrInvalidPlacement = errors.New("invalid placement: no kind selected")

// PlaceTurret resolves key against the catalog and places a turret at pos.
// An unresolved key creates nothing.
func (s *Simulation) PlaceTurret(pos component.Position, key string) (types.EntityID, error) {
	kind, ok := s.Catalog.Resolve(key)
	if !ok {
		s.EventDispatcher.Dispatch(event.Event{
			Type: event.PlacementRejected,
			Time: s.ECS.GameTime,
			Data: event.PlacementRejectedData{Key: key, Position: pos},
		})
		return 0, fmt.Errorf("%w: %q", ErrInvalidPlacement, key)
	}
	return s.PlaceTurretKind(pos, kind)
}

// PlaceTurretKind places a turret of an already resolved kind.
// A nil kind is an invalid placement.
func (s *Simulation) PlaceTurretKind(pos component.Position, kind *defs.KindDefinition) (types.EntityID, error) {
	if kind == nil {
		s.EventDispatcher.Dispatch(event.Event{
			Type: event.PlacementRejected,
			Time: s.ECS.GameTime,
			Data: event.PlacementRejectedData{Position: pos},
		})
		return 0, ErrInvalidPlacement
	}

	// A fresh turret is ready to fire on its first tick.
	id, err := s.ECS.AddTurret(component.Turret{Position: pos, Kind: kind})
	if err != nil {
		return 0, fmt.Errorf("placing %s: %w", kind.ID, err)
	}

	s.EventDispatcher.Dispatch(event.Event{
		Type: event.TurretPlaced,
		Time: s.ECS.GameTime,
		Data: event.TurretPlacedData{ID: id, Kind: kind.ID, Position: pos},
	})
	log.Printf("Placed %s at (%.0f, %.0f)", kind.Name, pos.X, pos.Y)
	return id, nil
}
