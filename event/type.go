package event

// EventType represents the type of simulation lifecycle event
type EventType int

const (
	// EventOrbiterHit signals a debris impact on an orbiter
	// Trigger: Step on debris-orbiter overlap
	// Consumer: audio, logs | Payload: *OrbiterHitPayload
	EventOrbiterHit EventType = iota

	// EventOrbiterDestroyed signals an orbiter crossing its damage threshold
	// Trigger: Step after a hit with Damage >= Radius
	// Consumer: audio, logs | Payload: *OrbiterDestroyedPayload
	EventOrbiterDestroyed

	// EventAttractorStrike signals debris swallowed by the attractor
	// Trigger: Step on debris-attractor overlap
	// Consumer: audio | Payload: *AttractorStrikePayload
	EventAttractorStrike

	// EventDebrisSpawned signals a new edge debris
	// Trigger: population manager | Payload: *DebrisSpawnedPayload
	EventDebrisSpawned

	// EventDebrisCulled signals debris removed for leaving the retention bounds
	// Trigger: population manager | Payload: *DebrisCulledPayload
	EventDebrisCulled
)

func (t EventType) String() string {
	switch t {
	case EventOrbiterHit:
		return "orbiter_hit"
	case EventOrbiterDestroyed:
		return "orbiter_destroyed"
	case EventAttractorStrike:
		return "attractor_strike"
	case EventDebrisSpawned:
		return "debris_spawned"
	case EventDebrisCulled:
		return "debris_culled"
	default:
		return "unknown"
	}
}

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}
