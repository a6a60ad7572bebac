// internal/entity/ecs.go
package entity

import (
	"aimon-defense/internal/component"
	"aimon-defense/internal/types"
)

// Store owns every mutable collection of the simulation.
// Only the simulation thread mutates it; renderers read through copies.
type Store struct {
	GameTime float64
	NextID   types.EntityID
	Turrets  *Pool[component.Turret]
	Enemies  *Pool[component.Enemy]
	Shots    *Pool[component.Shot]
}

// Limits caps the transient pools. Zero means unbounded.
type Limits struct {
	MaxEnemies int
	MaxShots   int
}

func NewStore(limits Limits) *Store {
	return &Store{
		NextID:  1,
		Turrets: NewPool[component.Turret](0),
		Enemies: NewPool[component.Enemy](limits.MaxEnemies),
		Shots:   NewPool[component.Shot](limits.MaxShots),
	}
}

func (s *Store) NewEntity() types.EntityID {
	id := s.NextID
	s.NextID++
	return id
}

// AddTurret creates a turret entity.
func (s *Store) AddTurret(t component.Turret) (types.EntityID, error) {
	id := s.NewEntity()
	if err := s.Turrets.Add(id, t); err != nil {
		return 0, err
	}
	return id, nil
}

// AddEnemy creates an enemy entity.
func (s *Store) AddEnemy(e component.Enemy) (types.EntityID, error) {
	id := s.NewEntity()
	if err := s.Enemies.Add(id, e); err != nil {
		return 0, err
	}
	return id, nil
}

// AddShot creates a transient shot record.
func (s *Store) AddShot(sh component.Shot) (types.EntityID, error) {
	id := s.NewEntity()
	if err := s.Shots.Add(id, sh); err != nil {
		return 0, err
	}
	return id, nil
}

// Compact compacts every pool after a sweep.
func (s *Store) Compact() {
	s.Turrets.Compact()
	s.Enemies.Compact()
	s.Shots.Compact()
}
