package component

import (
	"github.com/lixenwraith/microcosm/core"
	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/physics"
	"github.com/lixenwraith/microcosm/vmath"
)

// OrbiterSpec is one row of the static catalog of primaries
type OrbiterSpec struct {
	Name         string
	SemiMajor    float64
	Eccentricity float64
	Color        core.RGB
	Radius       float64
	Mass         float64
	Rate         float64 // radians per tick
}

// Orbiter is a primary whose position follows a closed-form ellipse around the attractor
// Kinetic.Vel holds the transient perturbation offset from collisions and gravity
type Orbiter struct {
	Name string
	physics.Orbit
	physics.Kinetic

	Radius float64
	Mass   float64
	Color  core.RGB

	// Damage accumulates debris radii; the orbiter is destroyed once Damage >= Radius
	Damage float64
}

// NewOrbiter creates an orbiter from a catalog row at the given initial phase
func NewOrbiter(spec OrbiterSpec, phase float64) *Orbiter {
	return &Orbiter{
		Name: spec.Name,
		Orbit: physics.Orbit{
			SemiMajor:    spec.SemiMajor,
			Eccentricity: spec.Eccentricity,
			Phase:        vmath.WrapAngle(phase),
			Rate:         spec.Rate,
		},
		Radius: spec.Radius,
		Mass:   spec.Mass,
		Color:  spec.Color,
	}
}

// Update recomputes the position on the ellipse, then applies the gravity perturbation
func (o *Orbiter) Update(center vmath.Vec2) {
	physics.AdvanceOrbit(&o.Orbit, &o.Kinetic, center, parameter.OrbitDamping)
	physics.ApplyGravity(&o.Kinetic, center, parameter.OrbiterGravity)
}

// TakeDamage adds a hit and reports whether the orbiter is now destroyed
func (o *Orbiter) TakeDamage(amount float64) bool {
	o.Damage += amount
	return o.Destroyed()
}

// Destroyed reports whether accumulated damage reached the radius
func (o *Orbiter) Destroyed() bool {
	return o.Damage >= o.Radius
}

// Contact exposes the orbiter to the collision resolver
func (o *Orbiter) Contact() physics.Contact {
	return physics.Contact{K: &o.Kinetic, Radius: o.Radius, Mass: o.Mass}
}

// Path samples the orbit ellipse relative to the attracting focus
func (o *Orbiter) Path(steps int) []vmath.Vec2 {
	return vmath.EllipsePath(o.SemiMajor, o.Eccentricity, steps)
}

func (o *Orbiter) Position() vmath.Vec2 { return o.Pos }
func (o *Orbiter) Size() float64        { return o.Radius }
func (o *Orbiter) Velocity() vmath.Vec2 { return o.Vel }
func (o *Orbiter) Weight() float64      { return o.Mass }
func (o *Orbiter) Tint() core.RGB       { return o.Color }
func (o *Orbiter) Kind() Kind           { return KindOrbiter }
func (o *Orbiter) sealed()              {}
