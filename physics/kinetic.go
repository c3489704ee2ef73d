package physics

import (
	"github.com/lixenwraith/microcosm/vmath"
)

// Kinetic is the mutable motion state of a body, in world units per tick
type Kinetic struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// Integrate advances position by one tick of velocity: p = p + v
func Integrate(k *Kinetic) {
	k.Pos = vmath.V2Add(k.Pos, k.Vel)
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *Kinetic, dv vmath.Vec2) {
	k.Vel = vmath.V2Add(k.Vel, dv)
}

// Damp scales velocity by factor (1 = no damping)
func Damp(k *Kinetic, factor float64) {
	k.Vel = vmath.V2Scale(k.Vel, factor)
}
