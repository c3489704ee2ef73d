package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/microcosm/audio"
	"github.com/lixenwraith/microcosm/engine"
	"github.com/lixenwraith/microcosm/render"
	"github.com/lixenwraith/microcosm/vmath"
)

func newTestSession(t *testing.T) (*session, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)

	cfg := parseFlags(t, "--spawn-chance", "0")
	world, err := newWorld(cfg, vmath.NewFastRand(9))
	require.NoError(t, err)

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = false
	scheduler, _ := engine.NewClockScheduler(world, time.Millisecond)

	return &session{
		world:     world,
		scheduler: scheduler,
		renderer:  render.NewRenderer(screen),
		sounds:    audio.NewSoundManager(audioCfg),
		log:       zerolog.Nop(),
	}, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSessionQuitKeys(t *testing.T) {
	s, _ := newTestSession(t)

	assert.False(t, s.handleEvent(key('q')))
	assert.False(t, s.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, s.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	assert.True(t, s.handleEvent(key('x')))
}

func TestSessionPauseAndMute(t *testing.T) {
	s, _ := newTestSession(t)

	require.True(t, s.handleEvent(key('p')))
	assert.True(t, s.scheduler.IsPaused())
	require.True(t, s.handleEvent(key(' ')))
	assert.False(t, s.scheduler.IsPaused())

	require.True(t, s.handleEvent(key('m')))
	assert.False(t, s.sounds.Active())
}

func TestSessionSingleStep(t *testing.T) {
	s, _ := newTestSession(t)
	s.handleEvent(key('p'))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.scheduler.Start(ctx)
	defer s.scheduler.Stop()

	s.handleEvent(key('n'))
	require.Eventually(t, func() bool { return s.scheduler.TickCount() == 1 }, time.Second, time.Millisecond)

	// Stays paused after the single step
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, uint64(1), s.scheduler.TickCount())
	assert.Equal(t, int64(1), s.scheduler.Latest().Tick)
}

func TestSessionFrameDrawsHUD(t *testing.T) {
	s, screen := newTestSession(t)
	s.scheduler.Pause()

	s.frame()

	var row strings.Builder
	for x := 0; x < 120; x++ {
		mainc, _, _, _ := screen.GetContent(x, 0)
		row.WriteRune(mainc)
	}
	hud := row.String()
	assert.Contains(t, hud, "microcosm")
	assert.Contains(t, hud, "orbiters 8")
	assert.Contains(t, hud, "[PAUSED]")
}

func TestSessionResize(t *testing.T) {
	s, screen := newTestSession(t)
	screen.SetSize(80, 24)
	assert.True(t, s.handleEvent(tcell.NewEventResize(80, 24)))
}
