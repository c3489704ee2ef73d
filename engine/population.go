package engine

import (
	"github.com/lixenwraith/microcosm/component"
	"github.com/lixenwraith/microcosm/event"
	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/vmath"
)

// spawn rolls the per-tick edge spawn
func (w *World) spawn() {
	if w.rng.Float64() >= w.spawnChance {
		return
	}

	d := SpawnEdgeDebris(w.rng, w.Width, w.Height)
	w.Debris = append(w.Debris, d)
	w.statSpawned.Add(1)
	w.emit(event.EventDebrisSpawned, &event.DebrisSpawnedPayload{Pos: d.Pos, Radius: d.Radius})
}

// SpawnEdgeDebris creates one debris on the left or right domain edge
// y is an integer in [0,H], radius an integer in [2,10], velocity uniform in [-0.5,0.5] per axis
func SpawnEdgeDebris(rng vmath.Rand, width, height float64) *component.Debris {
	x := 0.0
	if rng.Intn(2) == 1 {
		x = width
	}
	y := float64(vmath.RandIntRange(rng, 0, int(height)))
	radius := float64(vmath.RandIntRange(rng, parameter.SpawnRadiusMin, parameter.SpawnRadiusMax))
	vel := vmath.Vec2{
		X: vmath.RandRange(rng, -parameter.SpawnSpeedMax, parameter.SpawnSpeedMax),
		Y: vmath.RandRange(rng, -parameter.SpawnSpeedMax, parameter.SpawnSpeedMax),
	}
	return component.NewDebris(vmath.Vec2{X: x, Y: y}, vel, radius, parameter.DebrisColor)
}

// InBounds reports whether pos lies strictly inside [-W,2W]×[-H,2H]
func InBounds(pos vmath.Vec2, width, height float64) bool {
	mx := width * parameter.CullMargin
	my := height * parameter.CullMargin
	return pos.X > -mx && pos.X < width+mx && pos.Y > -my && pos.Y < height+my
}

// cull filters out debris that drifted past the retention bound
func (w *World) cull() {
	kept := w.Debris[:0]
	for _, d := range w.Debris {
		if InBounds(d.Pos, w.Width, w.Height) {
			kept = append(kept, d)
		}
	}

	culled := len(w.Debris) - len(kept)
	if culled == 0 {
		return
	}

	clearTail(w.Debris, len(kept))
	w.Debris = kept
	w.statCulled.Add(int64(culled))
	w.emit(event.EventDebrisCulled, &event.DebrisCulledPayload{Count: culled})
}
