package engine

import (
	"time"

	"github.com/lixenwraith/microcosm/component"
	"github.com/lixenwraith/microcosm/event"
	"github.com/lixenwraith/microcosm/physics"
	"github.com/lixenwraith/microcosm/vmath"
)

// Step advances the simulation by one tick
// Order: glow decay, orbiters, debris over a stable snapshot, removals and fragment
// insertion, edge spawn, cull
func (w *World) Step() {
	start := time.Now()
	center := w.Attractor.Pos

	w.Attractor.DecayGlow()

	for _, o := range w.Orbiters {
		o.Update(center)
	}

	w.stepDebris(center)
	w.commit()

	w.spawn()
	w.cull()

	w.tick++
	w.publish(time.Since(start))
}

// stepDebris integrates and collides every debris present at step start
// Mutations are deferred: swallowed debris are tombstoned, fragments are staged
func (w *World) stepDebris(center vmath.Vec2) {
	snapshot := w.Debris
	w.removed = resetFlags(w.removed, len(snapshot))
	w.fragments = w.fragments[:0]

	for i, d := range snapshot {
		if w.removed[i] {
			continue
		}

		d.Update(center)

		if w.swallowed(d) {
			w.removed[i] = true
			w.Attractor.Strike()
			w.statSwallowed.Add(1)
			w.emit(event.EventAttractorStrike, &event.AttractorStrikePayload{Pos: d.Pos, Radius: d.Radius})
			continue
		}

		// First hit wins: at most one orbiter collision per debris per tick
		for _, o := range w.Orbiters {
			if o.Destroyed() {
				continue
			}
			if physics.Collides(d, o) {
				w.strikeOrbiter(d, o)
				break
			}
		}

		for j := i + 1; j < len(snapshot); j++ {
			if w.removed[j] {
				continue
			}
			other := snapshot[j]
			if physics.Collides(d, other) {
				physics.ResolveCollision(d.Contact(), other.Contact())
			}
		}
	}
}

// swallowed reports an attractor strike; a body exactly at the center always counts
func (w *World) swallowed(d *component.Debris) bool {
	if d.Pos == w.Attractor.Pos {
		return true
	}
	return physics.Collides(d, &w.Attractor)
}

// commit applies the deferred removals and appends staged fragments
func (w *World) commit() {
	if len(w.removed) > 0 {
		kept := w.Debris[:0]
		for i, d := range w.Debris {
			if !w.removed[i] {
				kept = append(kept, d)
			}
		}
		clearTail(w.Debris, len(kept))
		w.Debris = kept
	}

	alive := w.Orbiters[:0]
	for _, o := range w.Orbiters {
		if o.Destroyed() {
			delete(w.paths, o)
			continue
		}
		alive = append(alive, o)
	}
	for i := len(alive); i < len(w.Orbiters); i++ {
		w.Orbiters[i] = nil
	}
	w.Orbiters = alive

	w.Debris = append(w.Debris, w.fragments...)
	w.fragments = w.fragments[:0]
}

func (w *World) publish(elapsed time.Duration) {
	ms := float64(elapsed.Microseconds()) / 1000
	w.statTicks.Store(w.tick)
	w.statOrbiters.Store(int64(len(w.Orbiters)))
	w.statDebris.Store(int64(len(w.Debris)))
	w.statStep.Observe(ms)
}

func resetFlags(flags []bool, n int) []bool {
	if cap(flags) < n {
		return make([]bool, n)
	}
	flags = flags[:n]
	clear(flags)
	return flags
}

// clearTail nils out pointers past n so removed bodies can be collected
func clearTail(s []*component.Debris, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
