package audio

import (
	"github.com/lixenwraith/microcosm/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundImpact    SoundType = iota // Debris hits an orbiter
	SoundExplosion                  // Orbiter destroyed
	SoundStrike                     // Debris swallowed by the attractor
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundImpact:
		return "impact"
	case SoundExplosion:
		return "explosion"
	case SoundStrike:
		return "strike"
	default:
		return "unknown"
	}
}

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundImpact:    0.5,
			SoundExplosion: 0.9,
			SoundStrike:    0.35,
		},
	}
}
