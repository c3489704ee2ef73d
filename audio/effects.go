package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    vmath.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream with a linear gain
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateImpactSound generates a short low thud
func CreateImpactSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewOscillator(parameter.ImpactSoundFreq, parameter.ImpactSoundDuration, WaveSquare, rate)
	bodyShaped := NewEnvelope(body, parameter.ImpactSoundDuration, parameter.ImpactSoundAttack, parameter.ImpactSoundRelease, rate)

	click := NewOscillator(0, parameter.ImpactSoundDuration, WaveNoise, rate)
	clickShaped := NewEnvelope(click, parameter.ImpactSoundDuration, 0, parameter.ImpactSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.6),
		newVolume(clickShaped, 0.4),
	)

	vol := cfg.EffectVolumes[SoundImpact] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateExplosionSound generates a noise burst over a low rumble
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.ExplosionSoundDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)

	rumble := NewOscillator(parameter.ExplosionRumbleFreq, d, WaveSaw, rate)
	rumbleShaped := NewEnvelope(rumble, d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.55),
		newVolume(rumbleShaped, 0.45),
	)

	vol := cfg.EffectVolumes[SoundExplosion] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateStrikeSound generates a soft high ping with an octave overtone
func CreateStrikeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.StrikeSoundDuration

	fund := NewOscillator(parameter.StrikeSoundFreq, d, WaveSine, rate)
	fundShaped := NewEnvelope(fund, d, parameter.StrikeSoundAttack, parameter.StrikeSoundRelease, rate)

	over := NewOscillator(parameter.StrikeSoundFreq*2, d, WaveSine, rate)
	overShaped := NewEnvelope(over, d, parameter.StrikeSoundAttack, parameter.StrikeSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	vol := cfg.EffectVolumes[SoundStrike] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundImpact:
		return CreateImpactSound(cfg)
	case SoundExplosion:
		return CreateExplosionSound(cfg)
	case SoundStrike:
		return CreateStrikeSound(cfg)
	default:
		return nil
	}
}
