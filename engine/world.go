package engine

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/microcosm/component"
	"github.com/lixenwraith/microcosm/event"
	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/physics"
	"github.com/lixenwraith/microcosm/status"
	"github.com/lixenwraith/microcosm/vmath"
)

// Options configures a new World
// Zero values fall back to defaults: seeded FastRand, fresh queue and registry, no-op logger
type Options struct {
	Width, Height float64
	SpawnChance   float64

	Attractor component.Attractor
	Catalog   []component.OrbiterSpec

	Rand   vmath.Rand
	Events *event.EventQueue
	Status *status.Registry
	Logger *zerolog.Logger
}

// World is the complete simulation state, owned by a single caller
// Step is not safe for concurrent use; ClockScheduler serializes it
type World struct {
	Width, Height float64

	Attractor component.Attractor
	Orbiters  []*component.Orbiter
	Debris    []*component.Debris

	spawnChance float64
	tick        int64

	rng    vmath.Rand
	events *event.EventQueue
	status *status.Registry
	log    zerolog.Logger

	// Absolute orbit paths, valid while the attractor stays fixed
	paths map[*component.Orbiter][]vmath.Vec2

	// Per-step scratch, reused across ticks
	removed   []bool
	fragments []*component.Debris

	statTicks     *atomic.Int64
	statOrbiters  *atomic.Int64
	statHits      *atomic.Int64
	statLost      *atomic.Int64
	statDebris    *atomic.Int64
	statSpawned   *atomic.Int64
	statCulled    *atomic.Int64
	statSwallowed *atomic.Int64
	statFragments *atomic.Int64
	statStep      *status.Gauge
}

// NewWorld builds the initial state: attractor as given, one orbiter per catalog row
// with a uniformly random initial phase, and no debris
func NewWorld(opts Options) *World {
	w := &World{
		Width:       opts.Width,
		Height:      opts.Height,
		Attractor:   opts.Attractor,
		spawnChance: opts.SpawnChance,
		rng:         opts.Rand,
		events:      opts.Events,
		status:      opts.Status,
		log:         zerolog.Nop(),
		paths:       make(map[*component.Orbiter][]vmath.Vec2),
	}

	if w.Width <= 0 {
		w.Width = parameter.DefaultWidth
	}
	if w.Height <= 0 {
		w.Height = parameter.DefaultHeight
	}
	if w.rng == nil {
		w.rng = vmath.NewFastRand(1)
	}
	if w.events == nil {
		w.events = event.NewEventQueue()
	}
	if w.status == nil {
		w.status = status.NewRegistry()
	}
	if opts.Logger != nil {
		w.log = *opts.Logger
	}

	w.Orbiters = make([]*component.Orbiter, 0, len(opts.Catalog))
	for _, spec := range opts.Catalog {
		w.Orbiters = append(w.Orbiters, component.NewOrbiter(spec, vmath.RandAngle(w.rng)))
	}

	reg := w.status
	w.statTicks = reg.Ints.Get(status.KeyTicks)
	w.statOrbiters = reg.Ints.Get(status.KeyOrbitersActive)
	w.statHits = reg.Ints.Get(status.KeyOrbiterHits)
	w.statLost = reg.Ints.Get(status.KeyOrbitersLost)
	w.statDebris = reg.Ints.Get(status.KeyDebrisActive)
	w.statSpawned = reg.Ints.Get(status.KeyDebrisSpawned)
	w.statCulled = reg.Ints.Get(status.KeyDebrisCulled)
	w.statSwallowed = reg.Ints.Get(status.KeyDebrisSwallowed)
	w.statFragments = reg.Ints.Get(status.KeyFragmentsSpawned)
	w.statStep = reg.Gauges.Get(status.KeyStepMillis)

	w.statOrbiters.Store(int64(len(w.Orbiters)))
	return w
}

// SetLogger replaces the diagnostics logger
func (w *World) SetLogger(l zerolog.Logger) {
	w.log = l
}

// SetSpawnChance sets the per-tick edge spawn probability
func (w *World) SetSpawnChance(p float64) {
	w.spawnChance = p
}

// AddDebris inserts a debris body, outside of a step
func (w *World) AddDebris(d *component.Debris) {
	w.Debris = append(w.Debris, d)
	w.statDebris.Store(int64(len(w.Debris)))
}

// Tick returns the number of completed steps
func (w *World) Tick() int64 {
	return w.tick
}

// Events returns the lifecycle event queue
func (w *World) Events() *event.EventQueue {
	return w.events
}

// Status returns the metrics registry
func (w *World) Status() *status.Registry {
	return w.status
}

// orbitPath returns the cached absolute path of an orbiter
func (w *World) orbitPath(o *component.Orbiter) []vmath.Vec2 {
	if p, ok := w.paths[o]; ok {
		return p
	}
	p := physics.PathAround(o.Path(parameter.OrbitPathSteps), w.Attractor.Pos)
	w.paths[o] = p
	return p
}

func (w *World) emit(t event.EventType, payload any) {
	w.events.Push(event.GameEvent{Type: t, Payload: payload, Tick: w.tick})
}
