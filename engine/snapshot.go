package engine

import (
	"slices"

	"github.com/lixenwraith/microcosm/core"
	"github.com/lixenwraith/microcosm/vmath"
)

// Snapshot is an immutable copy of the world for renderers and logs
// Path slices are shared with the world's path cache and must not be mutated
type Snapshot struct {
	Tick   int64
	Width  float64
	Height float64

	Attractor AttractorView
	Orbiters  []OrbiterView
	Debris    []DebrisView
}

type AttractorView struct {
	Pos    vmath.Vec2
	Radius float64
	Color  core.RGB
	Glow   int
}

type OrbiterView struct {
	Name   string
	Pos    vmath.Vec2
	Radius float64
	Color  core.RGB
	Damage float64
	Path   []vmath.Vec2
}

type DebrisView struct {
	Pos    vmath.Vec2
	Radius float64
	Color  core.RGB
}

// Snapshot copies the current state, call between steps
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   w.tick,
		Width:  w.Width,
		Height: w.Height,
		Attractor: AttractorView{
			Pos:    w.Attractor.Pos,
			Radius: w.Attractor.Radius,
			Color:  w.Attractor.Color,
			Glow:   w.Attractor.Glow,
		},
		Orbiters: make([]OrbiterView, 0, len(w.Orbiters)),
		Debris:   make([]DebrisView, 0, len(w.Debris)),
	}

	for _, o := range w.Orbiters {
		s.Orbiters = append(s.Orbiters, OrbiterView{
			Name:   o.Name,
			Pos:    o.Pos,
			Radius: o.Radius,
			Color:  o.Color,
			Damage: o.Damage,
			Path:   w.orbitPath(o),
		})
	}
	for _, d := range w.Debris {
		s.Debris = append(s.Debris, DebrisView{Pos: d.Pos, Radius: d.Radius, Color: d.Color})
	}
	return s
}

// Orbiter looks up an orbiter view by name
func (s *Snapshot) Orbiter(name string) (OrbiterView, bool) {
	i := slices.IndexFunc(s.Orbiters, func(o OrbiterView) bool { return o.Name == name })
	if i < 0 {
		return OrbiterView{}, false
	}
	return s.Orbiters[i], true
}
