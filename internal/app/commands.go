package app

import (
	"errors"
	"log"

	"aimon-defense/internal/component"
)

// CommandKind identifies a queued input.
type CommandKind uint8

const (
	CommandPlaceTurret CommandKind = iota + 1
	CommandTick
	CommandSpawn
)

func (k CommandKind) String() string {
	switch k {
	case CommandPlaceTurret:
		return "place"
	case CommandTick:
		return "tick"
	case CommandSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Command is one input to the simulation. UI callbacks and timers turn into
// commands, so input timing is decoupled from stepping and a session can be
// replayed from its command stream.
type Command struct {
	Kind    CommandKind `msgpack:"k"`
	X       float64     `msgpack:"x,omitempty"`
	Y       float64     `msgpack:"y,omitempty"`
	KindKey string      `msgpack:"key,omitempty"`
	Delta   float64     `msgpack:"dt,omitempty"`
}

// PlaceTurretCommand asks for a turret of the kind named by key at (x, y).
func PlaceTurretCommand(x, y float64, key string) Command {
	return Command{Kind: CommandPlaceTurret, X: x, Y: y, KindKey: key}
}

// TickCommand asks for one step of dt seconds.
func TickCommand(dt float64) Command {
	return Command{Kind: CommandTick, Delta: dt}
}

// SpawnCommand asks for one extra enemy at the lane origin.
func SpawnCommand() Command {
	return Command{Kind: CommandSpawn}
}

// Submit queues a command for the next Process call.
func (s *Simulation) Submit(cmd Command) {
	s.commands = append(s.commands, cmd)
}

// Pending returns the number of queued commands.
func (s *Simulation) Pending() int {
	return len(s.commands)
}

// Process applies queued commands in FIFO order and returns how many ran.
// Commands submitted while processing run in the same call.
func (s *Simulation) Process() int {
	n := 0
	for len(s.commands) > 0 {
		cmd := s.commands[0]
		s.commands = s.commands[1:]
		s.Apply(cmd)
		n++
	}
	return n
}

// Apply runs a single command immediately. Invalid placements are dropped
// without effect.
func (s *Simulation) Apply(cmd Command) {
	switch cmd.Kind {
	case CommandPlaceTurret:
		_, err := s.PlaceTurret(component.Position{X: cmd.X, Y: cmd.Y}, cmd.KindKey)
		if err != nil && !errors.Is(err, ErrInvalidPlacement) {
			log.Printf("Simulation: place command failed: %v", err)
		}
	case CommandTick:
		s.Step(cmd.Delta)
	case CommandSpawn:
		s.SpawnEnemy()
	default:
		log.Printf("Simulation: ignoring unknown command kind %d", cmd.Kind)
		return
	}
	if s.recorder != nil {
		s.recorder.Record(cmd)
	}
}
