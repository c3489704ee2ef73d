package component

import (
	"github.com/lixenwraith/microcosm/core"
	"github.com/lixenwraith/microcosm/physics"
	"github.com/lixenwraith/microcosm/vmath"
)

// Kind tags the closed set of body variants
type Kind uint8

const (
	KindAttractor Kind = iota
	KindOrbiter
	KindDebris
)

func (k Kind) String() string {
	switch k {
	case KindAttractor:
		return "attractor"
	case KindOrbiter:
		return "orbiter"
	case KindDebris:
		return "debris"
	default:
		return "unknown"
	}
}

// Body is the capability set shared by every simulated body
// The set is closed: only *Attractor, *Orbiter and *Debris implement it
type Body interface {
	physics.Circle
	Velocity() vmath.Vec2
	Weight() float64
	Tint() core.RGB
	Kind() Kind

	sealed()
}

var (
	_ Body = (*Attractor)(nil)
	_ Body = (*Orbiter)(nil)
	_ Body = (*Debris)(nil)
)
