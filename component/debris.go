package component

import (
	"github.com/lixenwraith/microcosm/core"
	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/physics"
	"github.com/lixenwraith/microcosm/vmath"
)

// Debris is a free body moved only by its velocity, central gravity and collisions
type Debris struct {
	physics.Kinetic

	Radius float64
	Mass   float64 // Radius²
	Color  core.RGB
}

// NewDebris creates a debris body with mass derived from its radius
func NewDebris(pos, vel vmath.Vec2, radius float64, color core.RGB) *Debris {
	return &Debris{
		Kinetic: physics.Kinetic{Pos: pos, Vel: vel},
		Radius:  radius,
		Mass:    radius * radius,
		Color:   color,
	}
}

// Update advances position by velocity, then folds gravity into velocity
func (d *Debris) Update(center vmath.Vec2) {
	physics.Integrate(&d.Kinetic)
	physics.ApplyGravity(&d.Kinetic, center, parameter.DebrisGravity)
}

// Contact exposes the debris to the collision resolver
func (d *Debris) Contact() physics.Contact {
	return physics.Contact{K: &d.Kinetic, Radius: d.Radius, Mass: d.Mass}
}

func (d *Debris) Position() vmath.Vec2 { return d.Pos }
func (d *Debris) Size() float64        { return d.Radius }
func (d *Debris) Velocity() vmath.Vec2 { return d.Vel }
func (d *Debris) Weight() float64      { return d.Mass }
func (d *Debris) Tint() core.RGB       { return d.Color }
func (d *Debris) Kind() Kind           { return KindDebris }
func (d *Debris) sealed()              {}
