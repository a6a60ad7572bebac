package telemetry

import (
	"log"

	"aimon-defense/internal/config"
	"aimon-defense/internal/event"
	"aimon-defense/internal/interfaces"
)

// Recorder ties a Collector to an OutputManager: call Observe after every
// step and Finish once at the end.
type Recorder struct {
	Collector *Collector
	Output    *OutputManager
	rows      int
}

func NewRecorder(c *Collector, out *OutputManager) *Recorder {
	return &Recorder{Collector: c, Output: out}
}

// Start subscribes a collector to d and opens the output directory.
// It returns nil when telemetry is disabled (no output dir configured).
func Start(cfg *config.Config, sessionID string, d *event.Dispatcher) (*Recorder, error) {
	if cfg.Telemetry.OutputDir == "" {
		return nil, nil
	}
	out, err := NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := out.WriteConfig(cfg); err != nil {
		out.Close()
		return nil, err
	}
	c := NewCollector(sessionID, cfg.Telemetry.Window)
	d.SubscribeAll(c)
	log.Printf("Telemetry: writing to %s", out.Dir())
	return NewRecorder(c, out), nil
}

// Observe flushes a row when the window is due.
func (r *Recorder) Observe(now float64, view interfaces.SimulationView) {
	if r == nil || !r.Collector.Due(now) {
		return
	}
	r.write(r.Collector.Flush(now, view))
}

// Finish flushes the partial last window and closes the output.
func (r *Recorder) Finish(now float64, view interfaces.SimulationView) error {
	if r == nil {
		return nil
	}
	r.write(r.Collector.Flush(now, view))
	return r.Output.Close()
}

// Rows returns the number of rows written.
func (r *Recorder) Rows() int {
	if r == nil {
		return 0
	}
	return r.rows
}

func (r *Recorder) write(stats WindowStats) {
	if err := r.Output.WriteWindow(stats); err != nil {
		log.Printf("Telemetry: %v", err)
		return
	}
	r.rows++
}
