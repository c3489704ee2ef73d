package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/microcosm/audio"
	"github.com/lixenwraith/microcosm/config"
	"github.com/lixenwraith/microcosm/core"
	"github.com/lixenwraith/microcosm/engine"
	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/render"
)

// session binds the scheduler, renderer and sound manager for one terminal run
// All methods run on the UI goroutine
type session struct {
	world     *engine.World
	scheduler *engine.ClockScheduler
	renderer  *render.Renderer
	sounds    *audio.SoundManager
	log       zerolog.Logger
}

// runTerminal drives the world on the scheduler and renders at the frame rate
// Returns when the user quits or ctx is cancelled
func runTerminal(ctx context.Context, cfg *config.Config, world *engine.World, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("error creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("error initializing screen: %w", err)
	}
	core.SetResetHook(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer sounds.Cleanup()

	scheduler, _ := engine.NewClockScheduler(world, cfg.TickInterval())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	scheduler.Start(ctx)
	defer scheduler.Stop()

	s := &session{
		world:     world,
		scheduler: scheduler,
		renderer:  render.NewRenderer(screen),
		sounds:    sounds,
		log:       logger,
	}

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				logSummary(logger, world, "session ended")
				return nil
			}
		case <-frameTicker.C:
			s.frame()
		}
	}
}

// handleEvent applies one terminal event; false means quit
func (s *session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.renderer.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'p', ' ':
				paused := s.scheduler.TogglePause()
				s.log.Info().Bool("paused", paused).Uint64("tick", s.scheduler.TickCount()).Msg("pause toggled")
			case 'n':
				s.scheduler.StepOnce()
			case 'm':
				muted := s.sounds.ToggleMute()
				s.log.Info().Bool("muted", muted).Msg("mute toggled")
			}
		}
	}
	return true
}

// frame plays queued cues and draws the latest snapshot
func (s *session) frame() {
	for _, ev := range s.world.Events().Consume() {
		s.sounds.HandleEvent(ev)
	}
	s.renderer.Draw(s.scheduler.Latest(), render.HUD{
		Fields: s.world.Status().Fields(),
		Paused: s.scheduler.IsPaused(),
		Audio:  s.sounds.Active(),
	})
}
