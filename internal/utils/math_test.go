package utils

import (
	"math"
	"testing"

	"aimon-defense/internal/component"
)

func TestInRange(t *testing.T) {
	origin := component.Position{X: 50, Y: 150}
	tests := []struct {
		name   string
		p      component.Position
		radius float64
		want   bool
	}{
		{"inside", component.Position{X: 40, Y: 150}, 120, true},
		{"on boundary", component.Position{X: 170, Y: 150}, 120, true},
		{"just outside", component.Position{X: 170.001, Y: 150}, 120, false},
		{"diagonal", component.Position{X: 53, Y: 154}, 5, true},
		{"zero radius same point", origin, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRange(origin, tt.p, tt.radius); got != tt.want {
				t.Errorf("InRange = %v, want %v (distance %v)", got, tt.want, Distance(origin, tt.p))
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := component.Position{X: 0, Y: 0}
	b := component.Position{X: 10, Y: -20}
	got := Lerp(a, b, 0.25)
	if math.Abs(got.X-2.5) > 1e-9 || math.Abs(got.Y+5) > 1e-9 {
		t.Errorf("Lerp = %+v", got)
	}
}

func TestPointNearLane(t *testing.T) {
	rng := NewPRNGService(42)
	for i := 0; i < 200; i++ {
		p := rng.PointNearLane(800, 600, 300, 100)
		if p.X < 0 || p.X >= 800 {
			t.Fatalf("x = %v out of field", p.X)
		}
		if math.Abs(p.Y-300) > 100 {
			t.Fatalf("y = %v too far from lane", p.Y)
		}
	}
}

func TestPRNGSeeded(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 10; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed produced different sequences")
		}
	}
}
