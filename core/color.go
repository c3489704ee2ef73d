package core

import "github.com/lucasb-eyer/go-colorful"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Colorful converts to go-colorful's unit-range representation
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// RGBFromColorful clamps out-of-gamut results back to 8-bit channels
func RGBFromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// BlendLab moves t of the way from c to dst in CIE Lab
// t is clamped to [0,1]; the endpoints are returned exactly
func (c RGB) BlendLab(dst RGB, t float64) RGB {
	switch {
	case t <= 0:
		return c
	case t >= 1:
		return dst
	}
	return RGBFromColorful(c.Colorful().BlendLab(dst.Colorful(), t))
}

// BlendHcl moves t of the way from c to dst in HCL, keeping hue shifts saturated
func (c RGB) BlendHcl(dst RGB, t float64) RGB {
	switch {
	case t <= 0:
		return c
	case t >= 1:
		return dst
	}
	return RGBFromColorful(c.Colorful().BlendHcl(dst.Colorful(), t))
}
