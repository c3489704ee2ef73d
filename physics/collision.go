package physics

import (
	"github.com/lixenwraith/microcosm/vmath"
)

// Circle is the collision shape of a body
type Circle interface {
	Position() vmath.Vec2
	Size() float64
}

// Overlaps reports whether two circles intersect
// Strict: exact tangency is not a collision
func Overlaps(posA vmath.Vec2, radiusA float64, posB vmath.Vec2, radiusB float64) bool {
	return vmath.V2Dist(posA, posB) < radiusA+radiusB
}

// Collides is Overlaps over two shapes, symmetric in its arguments
func Collides(a, b Circle) bool {
	return Overlaps(a.Position(), a.Size(), b.Position(), b.Size())
}

// Contact binds a body's kinetic state to its collision parameters for resolution
type Contact struct {
	K      *Kinetic
	Radius float64
	Mass   float64
}

// CollisionNormal returns the unit normal from a to b and the center distance
// Coincident centers fall back to +X so resolution stays defined
func CollisionNormal(a, b Contact) (n vmath.Vec2, dist float64) {
	delta := vmath.V2Sub(b.K.Pos, a.K.Pos)
	dist = vmath.V2Mag(delta)
	return vmath.V2NormalizeOr(delta, vmath.UnitX), dist
}

// ElasticImpulse exchanges a perfectly elastic impulse along n
// j = 2·((vB-vA)·n) / (mA+mB); vA += j·mB·n; vB -= j·mA·n
// Total momentum mA·vA + mB·vB is unchanged
func ElasticImpulse(a, b Contact, n vmath.Vec2) {
	massSum := a.Mass + b.Mass
	if massSum <= 0 {
		return
	}

	rel := vmath.V2Dot(vmath.V2Sub(b.K.Vel, a.K.Vel), n)
	j := 2 * rel / massSum

	ApplyImpulse(a.K, vmath.V2Scale(n, j*b.Mass))
	ApplyImpulse(b.K, vmath.V2Scale(n, -j*a.Mass))
}

// SeparateOverlap pushes both bodies apart along n by half the overlap each, regardless of mass
func SeparateOverlap(a, b Contact, n vmath.Vec2, dist float64) {
	overlap := (a.Radius + b.Radius - dist) / 2
	a.K.Pos = vmath.V2Sub(a.K.Pos, vmath.V2Scale(n, overlap))
	b.K.Pos = vmath.V2Add(b.K.Pos, vmath.V2Scale(n, overlap))
}

// ResolveCollision applies the elastic impulse then the positional correction, in place
func ResolveCollision(a, b Contact) {
	n, dist := CollisionNormal(a, b)
	ElasticImpulse(a, b, n)
	SeparateOverlap(a, b, n, dist)
}
