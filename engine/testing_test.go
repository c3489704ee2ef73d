package engine

import (
	"github.com/lixenwraith/microcosm/component"
	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/vmath"
)

var testCenter = vmath.Vec2{X: 750, Y: 500}

// scriptedRand replays fixed sequences, falling back to zero when exhausted
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func testAttractor() component.Attractor {
	return component.Attractor{Pos: testCenter, Radius: 60, Mass: 1000, Color: parameter.AttractorColor}
}

func solarCatalog() []component.OrbiterSpec {
	return []component.OrbiterSpec{
		{Name: "Mercury", SemiMajor: 120, Eccentricity: 0.206, Color: parameter.ColorGray, Radius: 10, Mass: 0.055, Rate: 0.02},
		{Name: "Venus", SemiMajor: 170, Eccentricity: 0.007, Color: parameter.ColorBrown, Radius: 15, Mass: 0.815, Rate: 0.015},
		{Name: "Earth", SemiMajor: 220, Eccentricity: 0.017, Color: parameter.ColorBlue, Radius: 16, Mass: 1, Rate: 0.01},
		{Name: "Mars", SemiMajor: 270, Eccentricity: 0.093, Color: parameter.ColorRed, Radius: 14, Mass: 0.107, Rate: 0.008},
	}
}

// quietWorld has no orbiters and never spawns
func quietWorld() *World {
	return NewWorld(Options{
		Width:     parameter.DefaultWidth,
		Height:    parameter.DefaultHeight,
		Attractor: testAttractor(),
		Rand:      vmath.NewFastRand(3),
	})
}

// parkedOrbiter sits still at angle 0 of a circular orbit of radius a
func parkedOrbiter(name string, a, radius float64) *component.Orbiter {
	return component.NewOrbiter(component.OrbiterSpec{
		Name:      name,
		SemiMajor: a,
		Radius:    radius,
		Mass:      1,
		Color:     parameter.ColorBlue,
	}, 0)
}
