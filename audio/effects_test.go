package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/microcosm/parameter"
)

// drain streams s to exhaustion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(NewOscillator(440, 100*time.Millisecond, wave, rate))

		if len(samples) != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), len(samples))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d: sample %d invalid: %v", wave, i, s)
			}
		}
	}
}

func TestOscillatorExhaustedStream(t *testing.T) {
	osc := NewOscillator(440, time.Millisecond, WaveSine, beep.SampleRate(44100))
	drain(osc)

	n, ok := osc.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("expected drained stream to return (0, false), got (%d, %v)", n, ok)
	}
	if osc.Err() != nil {
		t.Errorf("expected no error, got %v", osc.Err())
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant 1.0 at phase 0
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 200*time.Millisecond, rate)

	samples := drain(env)
	if len(samples) != 1000 {
		t.Fatalf("expected 1000 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", samples[0][0])
	}
	if math.Abs(samples[50][0]-0.5) > 1e-9 {
		t.Errorf("attack midpoint should be 0.5, got %f", samples[50][0])
	}
	if samples[500][0] != 1 {
		t.Errorf("sustain should be full, got %f", samples[500][0])
	}
	if math.Abs(samples[900][0]-0.5) > 1e-9 {
		t.Errorf("release midpoint should be 0.5, got %f", samples[900][0])
	}
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	samples := drain(newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0))
	for i, s := range samples {
		if s[0] != 0 {
			t.Fatalf("sample %d should be silent, got %f", i, s[0])
		}
	}

	half := drain(newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0.5))
	if math.Abs(half[0][0]-0.5) > 1e-9 {
		t.Errorf("expected half gain, got %f", half[0][0])
	}
}

func TestSoundEffects(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		st       SoundType
		duration time.Duration
	}{
		{SoundImpact, parameter.ImpactSoundDuration},
		{SoundExplosion, parameter.ExplosionSoundDuration},
		{SoundStrike, parameter.StrikeSoundDuration},
	}

	for _, tt := range tests {
		t.Run(tt.st.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.st, cfg)
			if s == nil {
				t.Fatal("expected a streamer")
			}

			samples := drain(s)
			if len(samples) != rate.N(tt.duration) {
				t.Errorf("expected %d samples, got %d", rate.N(tt.duration), len(samples))
			}

			peak := 0.0
			for _, smp := range samples {
				peak = max(peak, math.Abs(smp[0]))
			}
			limit := cfg.EffectVolumes[tt.st]*cfg.MasterVolume + 1e-9
			if peak == 0 || peak > limit {
				t.Errorf("peak %f outside (0, %f]", peak, limit)
			}
		})
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("unknown sound type should have no streamer")
	}
}
