// Package telemetry aggregates simulation events into per-window statistics.
package telemetry

import (
	"aimon-defense/internal/event"
	"aimon-defense/internal/interfaces"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one window of game time.
type WindowStats struct {
	SessionID   string  `csv:"session"`
	WindowStart float64 `csv:"-"`
	SimTimeSec  float64 `csv:"sim_time"`

	// Events during window
	Spawned  int `csv:"spawned"`
	Dropped  int `csv:"dropped"`
	Killed   int `csv:"killed"`
	Escaped  int `csv:"escaped"`
	Shots    int `csv:"shots"`
	Damage   int `csv:"damage"`
	Placed   int `csv:"turrets_placed"`
	Rejected int `csv:"placements_rejected"`

	// Population at window end
	Turrets int `csv:"turrets"`
	Enemies int `csv:"enemies"`
	Effects int `csv:"effects"`

	// Live enemy health at window end
	HealthMean float64 `csv:"health_mean"`
	HealthStd  float64 `csv:"health_std"`
}

// Collector counts events as they are dispatched and closes a window every
// Window seconds of game time. It runs on the simulation goroutine.
type Collector struct {
	sessionID string
	window    float64
	current   WindowStats
}

func NewCollector(sessionID string, window float64) *Collector {
	c := &Collector{sessionID: sessionID, window: window}
	c.current.SessionID = sessionID
	return c
}

// OnEvent implements event.Listener.
func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		c.current.Spawned++
	case event.EnemyDropped:
		c.current.Dropped++
	case event.EnemyKilled:
		c.current.Killed++
	case event.EnemyEscaped:
		c.current.Escaped++
	case event.ShotFired:
		c.current.Shots++
	case event.EnemyHit:
		if hit, ok := e.Data.(event.HitData); ok {
			c.current.Damage += hit.Damage
		}
	case event.TurretPlaced:
		c.current.Placed++
	case event.PlacementRejected:
		c.current.Rejected++
	}
}

// Due reports whether the current window has run its full length at now.
func (c *Collector) Due(now float64) bool {
	return now-c.current.WindowStart >= c.window
}

// Flush closes the current window at now, samples the live population from
// view and starts a new window.
func (c *Collector) Flush(now float64, view interfaces.SimulationView) WindowStats {
	out := c.current
	out.SimTimeSec = now

	out.Turrets = len(view.ListTurrets())
	enemies := view.ListEnemies()
	out.Enemies = len(enemies)
	out.Effects = len(view.ListEffects())

	health := make([]float64, len(enemies))
	for i, e := range enemies {
		health[i] = float64(e.Health)
	}
	out.HealthMean, out.HealthStd = HealthStats(health)

	c.current = WindowStats{SessionID: c.sessionID, WindowStart: now}
	return out
}

// HealthStats returns the mean and sample standard deviation of values.
// Fewer than two samples have a zero deviation.
func HealthStats(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}
