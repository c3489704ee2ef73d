package status

import (
	"strconv"
	"sync/atomic"
)

// Metric keys written by the simulation
const (
	KeyTicks            = "engine.ticks"
	KeyOrbitersActive   = "orbiter.active"
	KeyOrbiterHits      = "orbiter.hits"
	KeyOrbitersLost     = "orbiter.destroyed"
	KeyDebrisActive     = "debris.active"
	KeyDebrisSpawned    = "debris.spawned"
	KeyDebrisCulled     = "debris.culled"
	KeyDebrisSwallowed  = "debris.swallowed"
	KeyFragmentsSpawned = "debris.fragments"
	KeyStepMillis       = "engine.step_ms"
)

// PeakSuffix names the peak field Fields emits alongside each gauge
const PeakSuffix = ".peak"

// Registry is the central metrics facade
// The world caches pointers at construction; the step writes straight to the atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Gauges *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Gauges: NewMetricMap[Gauge](),
	}
}

// Fields flattens every metric into key/value pairs, counters first, each group in key order
// A gauge contributes its latest value under its key and its peak under key+PeakSuffix
func (r *Registry) Fields() []Field {
	fields := make([]Field, 0, r.Ints.Len()+2*r.Gauges.Len())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		fields = append(fields, Field{Key: key, Value: strconv.FormatInt(ptr.Load(), 10)})
	})
	r.Gauges.Range(func(key string, g *Gauge) {
		fields = append(fields,
			Field{Key: key, Value: strconv.FormatFloat(g.Last(), 'f', 2, 64)},
			Field{Key: key + PeakSuffix, Value: strconv.FormatFloat(g.Peak(), 'f', 2, 64)},
		)
	})
	return fields
}

// Field is one rendered metric
type Field struct {
	Key   string
	Value string
}
