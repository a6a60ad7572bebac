// internal/app/session.go
package app

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"

	"aimon-defense/internal/config"
	"aimon-defense/internal/defs"
	"aimon-defense/internal/telemetry"
)

// SessionOptions are the command-line inputs shared by every frontend.
type SessionOptions struct {
	ConfigPath string
	RecordPath string                // msgpack replay output, empty = off
	Override   func(*config.Config) // applied after loading, before validation
}

// Session bundles a simulation with its optional replay and telemetry sinks.
type Session struct {
	Sim       *Simulation
	Telemetry *telemetry.Recorder

	replayFile *os.File
	replayBuf  *bufio.Writer
	recorder   *Recorder
}

// OpenSession loads config and catalog, builds the simulation and starts
// the sinks requested by opts.
func OpenSession(opts SessionOptions) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Override != nil {
		opts.Override(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	catalog, err := defs.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	sim := New(cfg, catalog)
	s := &Session{Sim: sim}

	if opts.RecordPath != "" {
		f, err := os.Create(opts.RecordPath)
		if err != nil {
			return nil, fmt.Errorf("creating replay file: %w", err)
		}
		s.replayFile = f
		s.replayBuf = bufio.NewWriter(f)
		if s.recorder, err = sim.StartRecording(s.replayBuf); err != nil {
			f.Close()
			return nil, err
		}
	}

	if s.Telemetry, err = telemetry.Start(cfg, sim.ID.String(), sim.EventDispatcher); err != nil {
		s.Close()
		return nil, fmt.Errorf("starting telemetry: %w", err)
	}
	return s, nil
}

// Observe feeds telemetry after a step.
func (s *Session) Observe() {
	s.Telemetry.Observe(s.Sim.GameTime(), s.Sim)
}

// Close flushes telemetry and the replay file.
func (s *Session) Close() error {
	var errs []error
	errs = append(errs, s.Telemetry.Finish(s.Sim.GameTime(), s.Sim))
	if s.replayFile != nil {
		errs = append(errs, s.recorder.Err(), s.replayBuf.Flush(), s.replayFile.Close())
		log.Printf("Replay: %d commands recorded", s.recorder.Count())
	}
	return errors.Join(errs...)
}
