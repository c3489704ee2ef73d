package vmath

import "math"

// TwoPi is one full revolution in radians
const TwoPi = 2 * math.Pi

// OrbitRadius returns the focal distance of an ellipse at true anomaly theta
// r(θ) = a(1-e²)/(1+e·cosθ), valid for 0 <= e < 1
func OrbitRadius(semiMajor, eccentricity, theta float64) float64 {
	return semiMajor * (1 - eccentricity*eccentricity) / (1 + eccentricity*math.Cos(theta))
}

// EllipsePoint returns the point at angle theta on an ellipse with one focus at center
func EllipsePoint(center Vec2, semiMajor, eccentricity, theta float64) Vec2 {
	r := OrbitRadius(semiMajor, eccentricity, theta)
	return Vec2{
		X: center.X + r*math.Cos(theta),
		Y: center.Y + r*math.Sin(theta),
	}
}

// EllipsePath samples the full ellipse at steps uniform angular intervals starting at 0
// Points are relative to a focus at the origin so callers can offset them by any center
func EllipsePath(semiMajor, eccentricity float64, steps int) []Vec2 {
	if steps <= 0 {
		return nil
	}
	path := make([]Vec2, steps)
	step := TwoPi / float64(steps)
	for i := range path {
		path[i] = EllipsePoint(Vec2{}, semiMajor, eccentricity, float64(i)*step)
	}
	return path
}

// WrapAngle maps an angle into [0, 2π)
// cos and sin of the result equal those of the input up to rounding
func WrapAngle(theta float64) float64 {
	theta = math.Mod(theta, TwoPi)
	if theta < 0 {
		theta += TwoPi
	}
	// Mod of a value just below a multiple of 2π can round up to exactly 2π
	if theta >= TwoPi {
		theta = 0
	}
	return theta
}
