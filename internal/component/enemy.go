package component

// Enemy представляет вражескую сущность на линии.
// Health only goes down and Position.X only goes up.
type Enemy struct {
	Position Position
	Health   int
	Speed    float64 // единиц в секунду
}

// Dead reports whether the enemy has no health left, whatever the overshoot.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}
