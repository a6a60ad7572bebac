package clock

import (
	"fmt"
	"time"

	"aimon-defense/internal/config"
)

// Clock yields the delta, in seconds, for the next simulation step.
type Clock interface {
	Delta() float64
}

// FrameClock measures the wall-clock time between calls, like a frame
// callback. The first call returns 0; later deltas are clamped to maxDelta
// so a stalled window does not fast-forward the field.
type FrameClock struct {
	provider TimeProvider
	maxDelta float64
	last     time.Time
	started  bool
}

// NewFrameClock creates a variable-delta clock. maxDelta <= 0 disables clamping.
func NewFrameClock(provider TimeProvider, maxDelta float64) *FrameClock {
	if provider == nil {
		provider = SystemTime{}
	}
	return &FrameClock{provider: provider, maxDelta: maxDelta}
}

func (c *FrameClock) Delta() float64 {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt
}

// FixedClock returns the same step every call, as a fixed polling interval does.
type FixedClock struct {
	Step float64
}

func (c FixedClock) Delta() float64 { return c.Step }

// Interval is the step as a duration, for driving a ticker.
func (c FixedClock) Interval() time.Duration {
	return time.Duration(c.Step * float64(time.Second))
}

// New builds the clock selected by cfg.
func New(cfg config.ClockConfig, provider TimeProvider) (Clock, error) {
	switch cfg.Mode {
	case config.ClockFrame:
		return NewFrameClock(provider, cfg.MaxDelta), nil
	case config.ClockFixed:
		return FixedClock{Step: cfg.FixedStep}, nil
	default:
		return nil, fmt.Errorf("unknown clock mode %q", cfg.Mode)
	}
}
