package status

import (
	"math"
	"sync/atomic"
)

// Gauge holds the latest float observation and the peak seen since creation
// Float64 bits are stored in atomics; the zero value reads 0
type Gauge struct {
	last atomic.Uint64
	peak atomic.Uint64
}

// Observe records v as the latest value and raises the peak if exceeded
func (g *Gauge) Observe(v float64) {
	g.last.Store(math.Float64bits(v))
	for {
		old := g.peak.Load()
		if v <= math.Float64frombits(old) {
			return
		}
		if g.peak.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}

func (g *Gauge) Last() float64 {
	return math.Float64frombits(g.last.Load())
}

func (g *Gauge) Peak() float64 {
	return math.Float64frombits(g.peak.Load())
}
