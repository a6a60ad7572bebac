// internal/component/turret.go
package component

import "aimon-defense/internal/defs"

// Turret — стационарная башня. После размещения меняются только
// Cooldown и LastShot.
type Turret struct {
	Position Position
	// Kind разделяется всеми башнями одного вида и никогда не изменяется.
	Kind *defs.KindDefinition
	// Cooldown - оставшееся время до следующего выстрела (модель "cooldown").
	Cooldown float64
	// LastShot - игровое время последнего выстрела (модель "timestamp").
	LastShot float64
	// HasFired is false until the first shot; the timestamp model treats
	// a turret that never fired as ready.
	HasFired bool
}
