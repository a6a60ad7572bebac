// internal/utils/math.go
package utils

import (
	"aimon-defense/internal/component"

	"github.com/go-gl/mathgl/mgl64"
)

// Distance возвращает евклидово расстояние между двумя точками.
func Distance(a, b component.Position) float64 {
	return a.Vec2().Sub(b.Vec2()).Len()
}

// InRange reports whether b lies within radius of a, boundary included.
func InRange(a, b component.Position, radius float64) bool {
	return Distance(a, b) <= radius
}

// Lerp выполняет стандартную линейную интерполяцию между точками.
func Lerp(from, to component.Position, t float64) component.Position {
	v := from.Vec2().Add(to.Vec2().Sub(from.Vec2()).Mul(t))
	return component.Position{X: v.X(), Y: v.Y()}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return mgl64.Clamp(v, lo, hi)
}
