package event

import (
	"github.com/lixenwraith/microcosm/vmath"
)

// OrbiterHitPayload describes one debris impact
type OrbiterHitPayload struct {
	Name   string
	Damage float64 // cumulative after this hit
	Amount float64 // this hit, the debris radius
	Pos    vmath.Vec2
}

// OrbiterDestroyedPayload describes a destroyed orbiter and its fragment burst
type OrbiterDestroyedPayload struct {
	Name      string
	Pos       vmath.Vec2
	Fragments int
}

// AttractorStrikePayload describes debris swallowed by the attractor
type AttractorStrikePayload struct {
	Pos    vmath.Vec2
	Radius float64
}

// DebrisSpawnedPayload describes an edge spawn
type DebrisSpawnedPayload struct {
	Pos    vmath.Vec2
	Radius float64
}

// DebrisCulledPayload reports how many debris left the bounds this tick
type DebrisCulledPayload struct {
	Count int
}
