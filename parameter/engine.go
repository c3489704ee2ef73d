package parameter

import "time"

// Loop timing
const (
	// TickRate is the nominal simulation rate in ticks per second
	TickRate = 60

	// TickInterval is the simulation step interval at TickRate
	TickInterval = time.Second / TickRate

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PausedPollInterval is how long the scheduler sleeps between pause checks
	PausedPollInterval = 2 * TickInterval
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Default domain, matches the canonical 1500x1000 window
const (
	DefaultWidth  = 1500
	DefaultHeight = 1000
)
