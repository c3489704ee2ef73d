package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/microcosm/core"
	"github.com/lixenwraith/microcosm/engine"
	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/status"
)

// hudRows is the height of the status bar above the drawing area
const hudRows = 1

// HUD is the per-frame status bar input
type HUD struct {
	Fields []status.Field
	Paused bool
	Audio  bool
}

// Renderer draws snapshots onto a tcell screen
// It never touches the world; everything it draws comes from the snapshot
type Renderer struct {
	screen tcell.Screen
	bg     tcell.Style
}

// NewRenderer creates a renderer over an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		bg:     tcell.StyleDefault.Background(tcellColor(parameter.BackgroundColor)),
	}
}

// Draw renders one frame: orbit paths, attractor glow and body, orbiters, debris, HUD
func (r *Renderer) Draw(s engine.Snapshot, hud HUD) {
	width, height := r.screen.Size()
	r.screen.Fill(' ', r.bg)

	vp := NewViewport(width, height-hudRows, hudRows, s.Width, s.Height)

	r.drawOrbitPaths(vp, s)
	r.drawAttractor(vp, s.Attractor)
	r.drawOrbiters(vp, s.Orbiters)
	r.drawDebris(vp, s.Debris)
	r.drawHUD(width, s, hud)

	r.screen.Show()
}

// Sync forces a full redraw after a resize
func (r *Renderer) Sync() {
	r.screen.Sync()
}

func (r *Renderer) style(fg core.RGB) tcell.Style {
	return r.bg.Foreground(tcellColor(fg))
}

func (r *Renderer) drawOrbitPaths(vp Viewport, s engine.Snapshot) {
	style := r.style(parameter.OrbitPathColor)
	for _, o := range s.Orbiters {
		for _, p := range o.Path {
			if x, y, ok := vp.Project(p); ok {
				r.screen.SetContent(x, y, parameter.GlyphOrbitPath, nil, style)
			}
		}
	}
}

func (r *Renderer) drawAttractor(vp Viewport, a engine.AttractorView) {
	if a.Glow > 0 {
		style := r.style(glowColor(a.Glow))
		vp.Disc(a.Pos, a.Radius+float64(a.Glow), func(x, y int) {
			r.screen.SetContent(x, y, parameter.GlyphGlow, nil, style)
		})
	}

	style := r.bg.Background(tcellColor(a.Color)).Foreground(tcellColor(a.Color))
	vp.Disc(a.Pos, a.Radius, func(x, y int) {
		r.screen.SetContent(x, y, ' ', nil, style)
	})
}

func (r *Renderer) drawOrbiters(vp Viewport, orbiters []engine.OrbiterView) {
	for _, o := range orbiters {
		style := r.style(damagedColor(o.Color, o.Damage, o.Radius))
		vp.Disc(o.Pos, o.Radius, func(x, y int) {
			r.screen.SetContent(x, y, parameter.GlyphBody, nil, style)
		})
	}
}

func (r *Renderer) drawDebris(vp Viewport, debris []engine.DebrisView) {
	for _, d := range debris {
		if x, y, ok := vp.Project(d.Pos); ok {
			r.screen.SetContent(x, y, parameter.GlyphDebris, nil, r.style(d.Color))
		}
	}
}

func (r *Renderer) drawHUD(width int, s engine.Snapshot, hud HUD) {
	line := statusLine(s, hud)
	style := r.style(parameter.HUDColor).Reverse(true)

	x := 0
	for _, ch := range line {
		if x >= width {
			break
		}
		r.screen.SetContent(x, 0, ch, nil, style)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}
}
