package physics

import (
	"github.com/lixenwraith/microcosm/vmath"
)

// Orbit holds the closed-form elliptical elements of a primary and its advancing phase
type Orbit struct {
	SemiMajor    float64 // a >= 0
	Eccentricity float64 // 0 <= e < 1
	Phase        float64 // θ in [0, 2π)
	Rate         float64 // ω, radians per tick
}

// AdvanceOrbit places the body on its ellipse around center for the current phase,
// advances the phase for the next tick, then applies and decays the perturbation
// k.Vel is a one-tick position offset here, not an integrated velocity
func AdvanceOrbit(o *Orbit, k *Kinetic, center vmath.Vec2, damping float64) {
	k.Pos = vmath.EllipsePoint(center, o.SemiMajor, o.Eccentricity, o.Phase)
	o.Phase = vmath.WrapAngle(o.Phase + o.Rate)

	Integrate(k)
	Damp(k, damping)
}

// PathAround offsets a focus-relative orbit path to center
func PathAround(path []vmath.Vec2, center vmath.Vec2) []vmath.Vec2 {
	out := make([]vmath.Vec2, len(path))
	for i, p := range path {
		out[i] = vmath.V2Add(p, center)
	}
	return out
}
