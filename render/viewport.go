package render

import (
	"math"

	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/vmath"
)

// Viewport maps world coordinates onto a block of terminal cells
// The world is scaled uniformly, corrected for the 1:2 cell aspect, and centered
type Viewport struct {
	Cols, Rows int
	Top        int // first screen row of the drawing area

	scaleX, scaleY float64
	offX, offY     float64
}

// NewViewport fits a worldW×worldH domain into cols×rows cells starting at row top
func NewViewport(cols, rows, top int, worldW, worldH float64) Viewport {
	v := Viewport{Cols: max(cols, 0), Rows: max(rows, 0), Top: top}
	if worldW <= 0 || worldH <= 0 || v.Cols == 0 || v.Rows == 0 {
		return v
	}

	s := min(float64(v.Cols)/worldW, float64(v.Rows)/(worldH*parameter.TerminalAspect))
	v.scaleX = s
	v.scaleY = s * parameter.TerminalAspect
	v.offX = (float64(v.Cols) - worldW*v.scaleX) / 2
	v.offY = (float64(v.Rows) - worldH*v.scaleY) / 2
	return v
}

// Point returns the fractional cell coordinates of a world position
func (v Viewport) Point(p vmath.Vec2) (x, y float64) {
	return v.offX + p.X*v.scaleX, float64(v.Top) + v.offY + p.Y*v.scaleY
}

// Project returns the cell containing p and whether it lies inside the drawing area
func (v Viewport) Project(p vmath.Vec2) (x, y int, ok bool) {
	fx, fy := v.Point(p)
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, v.Contains(x, y)
}

// Contains reports whether a cell lies inside the drawing area
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && x < v.Cols && y >= v.Top && y < v.Top+v.Rows
}

// Radius converts a world radius to per-axis cell radii
func (v Viewport) Radius(r float64) (rx, ry float64) {
	return r * v.scaleX, r * v.scaleY
}

// Disc calls fn for every in-bounds cell whose center lies inside the projected circle
// A circle smaller than one cell still covers the cell holding its center
func (v Viewport) Disc(center vmath.Vec2, r float64, fn func(x, y int)) {
	cx, cy := v.Point(center)
	rx, ry := v.Radius(r)

	if rx < 0.5 || ry < 0.5 {
		if x, y, ok := v.Project(center); ok {
			fn(x, y)
		}
		return
	}

	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
	for y := y0; y <= y1; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 && v.Contains(x, y) {
				fn(x, y)
			}
		}
	}
}
