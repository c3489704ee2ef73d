package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/microcosm/core"
	"github.com/lixenwraith/microcosm/parameter"
)

var namedColors = map[string]core.RGB{
	"black":      parameter.ColorBlack,
	"yellow":     parameter.ColorYellow,
	"gray":       parameter.ColorGray,
	"grey":       parameter.ColorGray,
	"brown":      parameter.ColorBrown,
	"blue":       parameter.ColorBlue,
	"red":        parameter.ColorRed,
	"orange":     parameter.ColorOrange,
	"lightblue":  parameter.ColorLightBlue,
	"darkblue":   parameter.ColorDarkBlue,
	"lightbrown": parameter.ColorLightBrown,
}

// ParseColor accepts a catalog colour name or a #rrggbb / #rgb hex string
func ParseColor(s string) (core.RGB, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	if c, ok := namedColors[key]; ok {
		return c, nil
	}

	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return core.RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return core.RGBFromColorful(c), nil
}
