package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/microcosm/core"
	"github.com/lixenwraith/microcosm/parameter"
)

// Maximum blend toward the damage tint for an orbiter about to break
const damageTintMax = 0.7

var damageTint = core.RGB{R: 255, G: 60, B: 30}

func tcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// glowColor fades the glow colour into the background as the glow decays
// Blended in Lab so the fade stays perceptually even
func glowColor(glow int) core.RGB {
	t := float64(glow) / parameter.GlowOnStrike
	return parameter.BackgroundColor.BlendLab(parameter.GlowColor, t)
}

// damagedColor shifts a body colour toward the damage tint by damage/radius
func damagedColor(c core.RGB, damage, radius float64) core.RGB {
	if damage <= 0 || radius <= 0 {
		return c
	}
	t := min(damage/radius, 1) * damageTintMax
	return c.BlendHcl(damageTint, t)
}
