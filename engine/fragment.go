package engine

import (
	"github.com/lixenwraith/microcosm/component"
	"github.com/lixenwraith/microcosm/event"
	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/physics"
	"github.com/lixenwraith/microcosm/vmath"
)

// fragmentPlacementAttempts bounds the rejection loop before clamping the offset
const fragmentPlacementAttempts = 8

// strikeOrbiter resolves a debris impact on a live orbiter and applies damage
// A destroyed orbiter stages its fragments; removal happens in commit
func (w *World) strikeOrbiter(d *component.Debris, o *component.Orbiter) {
	physics.ResolveCollision(d.Contact(), o.Contact())

	destroyed := o.TakeDamage(d.Radius)
	w.statHits.Add(1)
	w.log.Info().
		Str("orbiter", o.Name).
		Float64("damage", o.Damage).
		Msg("orbiter hit")
	w.emit(event.EventOrbiterHit, &event.OrbiterHitPayload{
		Name:   o.Name,
		Damage: o.Damage,
		Amount: d.Radius,
		Pos:    o.Pos,
	})

	if !destroyed {
		return
	}

	frags := Fragment(o, w.rng)
	w.fragments = append(w.fragments, frags...)
	w.statLost.Add(1)
	w.statFragments.Add(int64(len(frags)))
	w.log.Warn().
		Str("orbiter", o.Name).
		Int("fragments", len(frags)).
		Msg("orbiter destroyed")
	w.emit(event.EventOrbiterDestroyed, &event.OrbiterDestroyedPayload{
		Name:      o.Name,
		Pos:       o.Pos,
		Fragments: len(frags),
	})
}

// Fragment breaks an orbiter into int(2R) debris around its last position
// Each fragment lies within distance R of that position, takes a radius in [2,6],
// the orbiter's color and a velocity uniform in [-1,1] per axis
func Fragment(o *component.Orbiter, rng vmath.Rand) []*component.Debris {
	count := int(parameter.FragmentsPerRadius * o.Radius)
	if count <= 0 {
		return nil
	}

	frags := make([]*component.Debris, 0, count)
	for range count {
		pos := vmath.V2Add(o.Pos, fragmentOffset(rng, o.Radius))
		radius := float64(vmath.RandIntRange(rng, parameter.FragmentRadiusMin, parameter.FragmentRadiusMax))
		vel := vmath.Vec2{
			X: vmath.RandRange(rng, -parameter.FragmentSpeedMax, parameter.FragmentSpeedMax),
			Y: vmath.RandRange(rng, -parameter.FragmentSpeedMax, parameter.FragmentSpeedMax),
		}
		frags = append(frags, component.NewDebris(pos, vel, radius, o.Color))
	}
	return frags
}

// fragmentOffset samples [-R,R] per axis, rejecting corners outside the disc of radius R
func fragmentOffset(rng vmath.Rand, r float64) vmath.Vec2 {
	var off vmath.Vec2
	for range fragmentPlacementAttempts {
		off = vmath.Vec2{X: vmath.RandRange(rng, -r, r), Y: vmath.RandRange(rng, -r, r)}
		if vmath.V2MagSq(off) <= r*r {
			return off
		}
	}
	n, ok := vmath.V2Normalize(off)
	if !ok {
		return vmath.Vec2{}
	}
	return vmath.V2Scale(n, r)
}
