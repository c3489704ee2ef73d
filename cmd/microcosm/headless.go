package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/microcosm/engine"
	"github.com/lixenwraith/microcosm/event"
)

// runHeadless steps the world back to back without pacing
// ticks == 0 runs until ctx is cancelled
func runHeadless(ctx context.Context, world *engine.World, ticks int, logger zerolog.Logger) {
	logger.Info().
		Int("ticks", ticks).
		Int("orbiters", len(world.Orbiters)).
		Msg("headless run started")

	for i := 0; ticks == 0 || i < ticks; i++ {
		if ctx.Err() != nil {
			logger.Warn().Int64("tick", world.Tick()).Msg("interrupted")
			break
		}
		world.Step()
		logEvents(logger, world.Events().Consume())
	}

	if n := world.Events().Dropped(); n > 0 {
		logger.Warn().Uint64("dropped", n).Msg("event queue overflowed")
	}
	logSummary(logger, world, "run complete")
}

// logEvents traces lifecycle events at debug level
// Hits and destructions are already logged by the world itself
func logEvents(logger zerolog.Logger, events []event.GameEvent) {
	if logger.GetLevel() > zerolog.DebugLevel {
		return
	}
	for _, ev := range events {
		logger.Debug().
			Str("event", ev.Type.String()).
			Int64("tick", ev.Tick).
			Msg("event")
	}
}
