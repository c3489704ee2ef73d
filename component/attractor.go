package component

import (
	"github.com/lixenwraith/microcosm/core"
	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/vmath"
)

// Attractor is the fixed central body all gravity is computed relative to
// Only Glow changes during a run, and it is a render-side signal with no physical effect
type Attractor struct {
	Pos    vmath.Vec2
	Radius float64
	Mass   float64
	Color  core.RGB
	Glow   int
}

// Strike arms the glow after a debris body hits the attractor
func (a *Attractor) Strike() {
	a.Glow = parameter.GlowOnStrike
}

// DecayGlow lowers the glow by one step, stopping at zero
func (a *Attractor) DecayGlow() {
	if a.Glow > 0 {
		a.Glow--
	}
}

func (a *Attractor) Position() vmath.Vec2 { return a.Pos }
func (a *Attractor) Size() float64        { return a.Radius }
func (a *Attractor) Velocity() vmath.Vec2 { return vmath.Vec2{} }
func (a *Attractor) Weight() float64      { return a.Mass }
func (a *Attractor) Tint() core.RGB       { return a.Color }
func (a *Attractor) Kind() Kind           { return KindAttractor }
func (a *Attractor) sealed()              {}
