package app

import (
	"errors"
	"fmt"
	"io"

	"aimon-defense/internal/config"
	"aimon-defense/internal/defs"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const replayVersion = 1

// ReplayHeader opens a replay stream. It carries everything needed to
// rebuild an identical simulation before the commands are applied.
type ReplayHeader struct {
	Version   int                   `msgpack:"version"`
	SessionID string                `msgpack:"session"`
	Config    config.Config         `msgpack:"config"`
	Kinds     []defs.KindDefinition `msgpack:"kinds"`
}

// NewReplayHeader describes sim for a recording.
func NewReplayHeader(sim *Simulation) ReplayHeader {
	h := ReplayHeader{
		Version:   replayVersion,
		SessionID: sim.ID.String(),
		Config:    *sim.Config,
	}
	for _, k := range sim.Catalog.Kinds() {
		h.Kinds = append(h.Kinds, *k)
	}
	return h
}

// Recorder writes a msgpack stream: the header, then one value per command.
type Recorder struct {
	enc   *msgpack.Encoder
	err   error
	count int
}

// NewRecorder writes header to w and returns a recorder for the commands.
func NewRecorder(w io.Writer, header ReplayHeader) (*Recorder, error) {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(&header); err != nil {
		return nil, fmt.Errorf("writing replay header: %w", err)
	}
	return &Recorder{enc: enc}, nil
}

// Record appends cmd. After the first write error every call is a no-op;
// the error is reported by Err.
func (r *Recorder) Record(cmd Command) {
	if r.err != nil {
		return
	}
	if err := r.enc.Encode(&cmd); err != nil {
		r.err = fmt.Errorf("writing replay command %d: %w", r.count, err)
		return
	}
	r.count++
}

// StartRecording writes a header for s to w and records every command
// applied from now on.
func (s *Simulation) StartRecording(w io.Writer) (*Recorder, error) {
	rec, err := NewRecorder(w, NewReplayHeader(s))
	if err != nil {
		return nil, err
	}
	s.recorder = rec
	return rec, nil
}

// Count returns the number of commands written.
func (r *Recorder) Count() int { return r.count }

// Err returns the first write error.
func (r *Recorder) Err() error { return r.err }

// ReadReplay decodes a whole replay stream.
func ReadReplay(r io.Reader) (ReplayHeader, []Command, error) {
	dec := msgpack.NewDecoder(r)

	var header ReplayHeader
	if err := dec.Decode(&header); err != nil {
		return header, nil, fmt.Errorf("reading replay header: %w", err)
	}
	if header.Version != replayVersion {
		return header, nil, fmt.Errorf("unsupported replay version %d", header.Version)
	}

	var cmds []Command
	for {
		var cmd Command
		err := dec.Decode(&cmd)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return header, cmds, fmt.Errorf("reading replay command %d: %w", len(cmds), err)
		}
		cmds = append(cmds, cmd)
	}
	return header, cmds, nil
}

// Replay rebuilds the recorded simulation and applies every command in order.
func Replay(r io.Reader, opts ...Option) (*Simulation, error) {
	header, cmds, err := ReadReplay(r)
	if err != nil {
		return nil, err
	}

	cfg := header.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("replay config: %w", err)
	}
	catalog, err := defs.NewCatalog(header.Kinds)
	if err != nil {
		return nil, fmt.Errorf("replay catalog: %w", err)
	}
	if id, err := uuid.Parse(header.SessionID); err == nil {
		opts = append([]Option{WithID(id)}, opts...)
	}

	sim := New(&cfg, catalog, opts...)
	for _, cmd := range cmds {
		sim.Apply(cmd)
	}
	return sim, nil
}
