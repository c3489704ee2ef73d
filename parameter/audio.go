package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive sounds of the same kind
	MinSoundGap = 50 * time.Millisecond

	// AudioMasterVolume scales every effect, 1.0 = unity
	AudioMasterVolume = 0.6
)

// Impact sound, debris hitting an orbiter
const (
	ImpactSoundDuration = 70 * time.Millisecond
	ImpactSoundAttack   = 3 * time.Millisecond
	ImpactSoundRelease  = 50 * time.Millisecond
	ImpactSoundFreq     = 220.0
)

// Explosion sound, orbiter destroyed
const (
	ExplosionSoundDuration = 600 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 500 * time.Millisecond
	ExplosionRumbleFreq    = 55.0
)

// Strike sound, debris swallowed by the attractor
const (
	StrikeSoundDuration = 150 * time.Millisecond
	StrikeSoundAttack   = 10 * time.Millisecond
	StrikeSoundRelease  = 120 * time.Millisecond
	StrikeSoundFreq     = 880.0
)
