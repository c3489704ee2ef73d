package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/microcosm/engine"
	"github.com/lixenwraith/microcosm/status"
)

// hudLabels selects and orders the metrics shown in the status bar
var hudLabels = []struct {
	key   string
	label string
}{
	{status.KeyOrbiterHits, "hits"},
	{status.KeyOrbitersLost, "lost"},
	{status.KeyDebrisSwallowed, "swallowed"},
	{status.KeyDebrisCulled, "culled"},
	{status.KeyStepMillis, "step ms"},
}

// statusLine formats the HUD text for one frame
func statusLine(s engine.Snapshot, hud HUD) string {
	var b strings.Builder
	fmt.Fprintf(&b, " microcosm  tick %d  orbiters %d  debris %d", s.Tick, len(s.Orbiters), len(s.Debris))

	values := make(map[string]string, len(hud.Fields))
	for _, f := range hud.Fields {
		values[f.Key] = f.Value
	}
	for _, l := range hudLabels {
		if v, ok := values[l.key]; ok {
			fmt.Fprintf(&b, "  %s %s", l.label, v)
		}
	}

	if !hud.Audio {
		b.WriteString("  [muted]")
	}
	if hud.Paused {
		b.WriteString("  [PAUSED]")
	}
	return b.String()
}
