package physics

import (
	"math"

	"github.com/lixenwraith/microcosm/vmath"
)

// CentralAccel returns the per-tick velocity increment on a body at pos toward center
// force = k / d², directed along (center - pos) / d
// ok is false when the force is undefined (pos at center) or not finite; the increment is then zero
func CentralAccel(pos, center vmath.Vec2, k float64) (vmath.Vec2, bool) {
	delta := vmath.V2Sub(center, pos)
	distSq := vmath.V2MagSq(delta)
	if distSq == 0 {
		return vmath.Vec2{}, false
	}

	dist := math.Sqrt(distSq)
	force := k / distSq
	accel := vmath.V2Scale(delta, force/dist)
	if !vmath.V2Finite(accel) {
		return vmath.Vec2{}, false
	}
	return accel, true
}

// ApplyGravity folds the central attraction into the body's velocity
// Returns false if the body sits on the center and no force was applied
func ApplyGravity(kin *Kinetic, center vmath.Vec2, k float64) bool {
	accel, ok := CentralAccel(kin.Pos, center, k)
	if !ok {
		return false
	}
	ApplyImpulse(kin, accel)
	return true
}
