package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/microcosm/event"
	"github.com/lixenwraith/microcosm/parameter"
)

// SoundManager plays lifecycle cues through a single speaker mixer
// Every method is safe to call before Initialize or after Cleanup; playback is then skipped
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	lastPlayed [soundTypeCount]time.Time
	now        func() time.Time
}

// NewSoundManager creates a sound manager; a nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// ToggleMute flips muting and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Active reports whether cues are currently audible
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// HandleEvent maps a lifecycle event to its cue
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if st, ok := EventSound(ev.Type); ok {
		sm.Play(st)
	}
}

// EventSound returns the cue for an event type, if it has one
func EventSound(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventOrbiterHit:
		return SoundImpact, true
	case event.EventOrbiterDestroyed:
		return SoundExplosion, true
	case event.EventAttractorStrike:
		return SoundStrike, true
	default:
		return 0, false
	}
}

// Play queues a cue, dropping repeats of the same cue closer than MinSoundGap
func (sm *SoundManager) Play(st SoundType) {
	if !sm.claim(st) {
		return
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

func (sm *SoundManager) PlayImpact()    { sm.Play(SoundImpact) }
func (sm *SoundManager) PlayExplosion() { sm.Play(SoundExplosion) }
func (sm *SoundManager) PlayStrike()    { sm.Play(SoundStrike) }

// claim checks playability and records the play time under the lock
func (sm *SoundManager) claim(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || st < 0 || st >= soundTypeCount {
		return false
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}
