package parameter

import "github.com/lixenwraith/microcosm/core"

// Body colours of the canonical catalog
var (
	ColorBlack      = core.RGB{R: 0, G: 0, B: 0}
	ColorYellow     = core.RGB{R: 255, G: 255, B: 0}
	ColorGray       = core.RGB{R: 169, G: 169, B: 169}
	ColorBrown      = core.RGB{R: 165, G: 42, B: 42}
	ColorBlue       = core.RGB{R: 0, G: 0, B: 255}
	ColorRed        = core.RGB{R: 255, G: 0, B: 0}
	ColorOrange     = core.RGB{R: 255, G: 165, B: 0}
	ColorLightBlue  = core.RGB{R: 173, G: 216, B: 230}
	ColorDarkBlue   = core.RGB{R: 0, G: 0, B: 139}
	ColorLightBrown = core.RGB{R: 210, G: 180, B: 140}
)

// Render palette
var (
	// DebrisColor is the default colour of edge-spawned debris
	DebrisColor = ColorGray

	// AttractorColor is the default attractor colour
	AttractorColor = ColorYellow

	// GlowColor is the halo drawn around the attractor while glowing
	GlowColor = core.RGB{R: 255, G: 255, B: 100}

	// OrbitPathColor is the colour of orbit path samples
	OrbitPathColor = core.RGB{R: 50, G: 50, B: 50}

	// BackgroundColor fills the screen each frame
	BackgroundColor = ColorBlack

	// HUDColor is the status line foreground
	HUDColor = core.RGB{R: 200, G: 200, B: 200}
)

// Glyphs
const (
	GlyphBody      = '●'
	GlyphDebris    = '•'
	GlyphOrbitPath = '·'
	GlyphGlow      = '░'
)

// TerminalAspect is the width:height ratio of a terminal cell (1:2)
const TerminalAspect = 0.5
