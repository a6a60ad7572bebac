// internal/app/game.go
package app

import (
	"aimon-defense/internal/component"
	"aimon-defense/internal/config"
	"aimon-defense/internal/defs"
	"aimon-defense/internal/entity"
	"aimon-defense/internal/event"
	"aimon-defense/internal/interfaces"
	"aimon-defense/internal/system"
	"aimon-defense/internal/types"

	"github.com/google/uuid"
)

// Simulation is one independent simulation session. It owns the entity
// store and the systems that mutate it; nothing else writes to the store.
// All methods must be called from a single goroutine.
type Simulation struct {
	ID                 uuid.UUID
	Config             *config.Config
	Catalog            *defs.Catalog
	ECS                *entity.Store
	EventDispatcher    *event.Dispatcher
	SpawnSystem        *system.SpawnSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	VisualEffectSystem *system.VisualEffectSystem
	LifecycleSystem    *system.LifecycleSystem

	commands []Command
	recorder *Recorder
	ticks    uint64
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithID fixes the session id instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(s *Simulation) { s.ID = id }
}

// New builds a simulation. cfg must already be validated; a nil catalog
// means the built-in one.
func New(cfg *config.Config, catalog *defs.Catalog, opts ...Option) *Simulation {
	if catalog == nil {
		catalog = defs.DefaultCatalog()
	}
	s := &Simulation{
		ID:      uuid.New(),
		Config:  cfg,
		Catalog: catalog,
		ECS: entity.NewStore(entity.Limits{
			MaxEnemies: cfg.Capacity.MaxEnemies,
			MaxShots:   cfg.Capacity.MaxShots,
		}),
		EventDispatcher: event.NewDispatcher(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.SpawnSystem = system.NewSpawnSystem(s.ECS, cfg, s.EventDispatcher)
	s.MovementSystem = system.NewMovementSystem(s.ECS)
	s.CombatSystem = system.NewCombatSystem(s.ECS, cfg, s.EventDispatcher)
	s.VisualEffectSystem = system.NewVisualEffectSystem(s.ECS)
	s.LifecycleSystem = system.NewLifecycleSystem(s.ECS, cfg.Field.Width, s.EventDispatcher)
	return s
}

// Step advances the simulation by deltaTime seconds:
// spawn, move, fire, age effects, sweep.
func (s *Simulation) Step(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	s.ECS.GameTime += deltaTime
	now := s.ECS.GameTime

	s.SpawnSystem.Tick(now)
	s.MovementSystem.Update(deltaTime)
	s.CombatSystem.Update(deltaTime, now)
	s.VisualEffectSystem.Update(deltaTime)
	s.LifecycleSystem.Sweep(now)
	s.ticks++
}

// SpawnEnemy adds a baseline enemy right now, outside the spawner's period.
func (s *Simulation) SpawnEnemy() (types.EntityID, bool) {
	return s.SpawnSystem.SpawnEnemy(s.ECS.GameTime)
}

// GameTime returns the simulated seconds elapsed.
func (s *Simulation) GameTime() float64 {
	return s.ECS.GameTime
}

// Ticks returns the number of completed steps.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// --- Read-only accessors ---

func (s *Simulation) ListTurrets() []interfaces.TurretView {
	out := make([]interfaces.TurretView, 0, s.ECS.Turrets.Len())
	s.ECS.Turrets.Each(func(id types.EntityID, t *component.Turret) bool {
		out = append(out, interfaces.TurretView{ID: id, Turret: *t})
		return true
	})
	return out
}

func (s *Simulation) ListEnemies() []interfaces.EnemyView {
	out := make([]interfaces.EnemyView, 0, s.ECS.Enemies.Len())
	s.ECS.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		out = append(out, interfaces.EnemyView{ID: id, Enemy: *e})
		return true
	})
	return out
}

func (s *Simulation) ListEffects() []interfaces.ShotView {
	out := make([]interfaces.ShotView, 0, s.ECS.Shots.Len())
	s.ECS.Shots.Each(func(id types.EntityID, sh *component.Shot) bool {
		out = append(out, interfaces.ShotView{ID: id, Shot: *sh})
		return true
	})
	return out
}

var _ interfaces.SimulationView = (*Simulation)(nil)
