// component/movement.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Vec2 returns the position as a mathgl vector.
func (p Position) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}
