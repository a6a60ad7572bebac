package clock

import (
	"math"
	"testing"
	"time"

	"aimon-defense/internal/config"
)

func TestFrameClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	c := NewFrameClock(mock, 0.06)

	if d := c.Delta(); d != 0 {
		t.Fatalf("first Delta = %v, want 0", d)
	}

	steps := []struct {
		advance time.Duration
		want    float64
	}{
		{16 * time.Millisecond, 0.016},
		{50 * time.Millisecond, 0.05},
		{2 * time.Second, 0.06}, // clamped
		{0, 0},
	}
	for _, s := range steps {
		mock.Advance(s.advance)
		if got := c.Delta(); math.Abs(got-s.want) > 1e-9 {
			t.Errorf("after %v: Delta = %v, want %v", s.advance, got, s.want)
		}
	}
}

func TestFrameClockNoClamp(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	c := NewFrameClock(mock, 0)
	c.Delta()
	mock.Advance(3 * time.Second)
	if got := c.Delta(); got != 3 {
		t.Errorf("Delta = %v, want 3", got)
	}
}

func TestFrameClockNegative(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(100, 0))
	c := NewFrameClock(mock, 0)
	c.Delta()
	mock.Advance(-time.Second)
	if got := c.Delta(); got != 0 {
		t.Errorf("Delta = %v, want 0 for a backwards clock", got)
	}
}

func TestFixedClock(t *testing.T) {
	c := FixedClock{Step: 0.1}
	for i := 0; i < 3; i++ {
		if c.Delta() != 0.1 {
			t.Fatalf("Delta = %v", c.Delta())
		}
	}
	if c.Interval() != 100*time.Millisecond {
		t.Errorf("Interval = %v", c.Interval())
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{config.ClockFrame, false},
		{config.ClockFixed, false},
		{"vsync", true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			c, err := New(config.ClockConfig{Mode: tt.mode, FixedStep: 0.1, MaxDelta: 0.06}, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) err = %v", tt.mode, err)
			}
			if err == nil && c == nil {
				t.Error("nil clock")
			}
		})
	}
}
