package system

import (
	"errors"
	"log"

	"aimon-defense/internal/component"
	"aimon-defense/internal/config"
	"aimon-defense/internal/defs"
	"aimon-defense/internal/entity"
	"aimon-defense/internal/event"
	"aimon-defense/internal/types"
	"aimon-defense/internal/utils"
)

// CombatSystem управляет атакой башен.
//
// Turrets are visited in creation order. A ready turret hits the first enemy,
// in store order, that is within range. It is not the nearest enemy, and
// enemies already at zero health this tick can still be hit.
type CombatSystem struct {
	ecs             *entity.Store
	eventDispatcher *event.Dispatcher
	fireRate        float64
	shotTTL         float64
	fireModel       string
	damageFormula   string
	shotDropLogged  bool
}

func NewCombatSystem(ecs *entity.Store, cfg *config.Config, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		fireRate:        cfg.Combat.FireRate,
		shotTTL:         cfg.Combat.ShotTTL,
		fireModel:       cfg.Combat.FireModel,
		damageFormula:   cfg.Combat.DamageFormula,
	}
}

// Update resolves one tick of turret fire. now is the game time after the
// clock advanced by deltaTime.
func (s *CombatSystem) Update(deltaTime, now float64) {
	s.ecs.Turrets.Each(func(turretID types.EntityID, turret *component.Turret) bool {
		if !s.ready(turret, deltaTime, now) {
			return true
		}

		enemyID, target := s.findFirstEnemyInRange(turret)
		if target == nil {
			// Башня остаётся готовой и проверяет снова на следующем тике.
			return true
		}

		aim := target.Position
		damage := Damage(turret.Kind, s.damageFormula)
		target.Health -= damage
		s.rearm(turret, now)

		shot := component.Shot{From: turret.Position, To: aim, TTL: s.shotTTL}
		s.emitShot(turretID, shot, now)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyHit,
			Time: now,
			Data: event.HitData{TurretID: turretID, EnemyID: enemyID, Damage: damage, Health: target.Health},
		})
		return true
	})
}

// ready advances the turret's fire timer and reports whether it may shoot.
func (s *CombatSystem) ready(turret *component.Turret, deltaTime, now float64) bool {
	if s.fireModel == config.FireModelTimestamp {
		return !turret.HasFired || now-turret.LastShot >= s.fireRate
	}
	turret.Cooldown -= deltaTime
	return turret.Cooldown <= 0
}

func (s *CombatSystem) rearm(turret *component.Turret, now float64) {
	turret.Cooldown = s.fireRate
	turret.LastShot = now
	turret.HasFired = true
}

func (s *CombatSystem) findFirstEnemyInRange(turret *component.Turret) (types.EntityID, *component.Enemy) {
	var (
		foundID types.EntityID
		found   *component.Enemy
	)
	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		if utils.InRange(turret.Position, e.Position, turret.Kind.Range) {
			foundID, found = id, e
			return false
		}
		return true
	})
	return foundID, found
}

func (s *CombatSystem) emitShot(turretID types.EntityID, shot component.Shot, now float64) {
	if _, err := s.ecs.AddShot(shot); err != nil {
		// Выстрел уже нанёс урон, теряется только визуальный эффект.
		if errors.Is(err, entity.ErrPoolFull) && !s.shotDropLogged {
			log.Printf("CombatSystem: shot pool full, dropping effects")
			s.shotDropLogged = true
		}
	} else {
		s.shotDropLogged = false
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Time: now,
		Data: event.ShotData{TurretID: turretID, Shot: shot},
	})
}

// Damage returns the damage one hit of kind deals: level times attack, or
// level times move power.
func Damage(kind *defs.KindDefinition, formula string) int {
	if formula == config.DamageMovePower {
		return kind.Level * kind.MovePower
	}
	return kind.Level * kind.Attack
}
