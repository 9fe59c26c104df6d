package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// CueType identifies a combat sound cue
type CueType int

const (
	CueFire CueType = iota
	CueKill
	CueExplosion
	CuePlayerHit
	CueWaveAdvance
	CueMelee
	cueCount
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
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
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a log-scaled volume effect
// math.Log2(0) is -Inf, so zero volume goes silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue generators

// createFireCue is a short click for each shot
func createFireCue(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(220.0, 40*time.Millisecond, WaveSquare, rate)
	shaped := NewEnvelope(osc, 40*time.Millisecond, time.Millisecond, 25*time.Millisecond, rate)
	return newVolume(shaped, vol*0.4)
}

// createKillCue is a quick two-note chime
func createKillCue(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewOscillator(987.77, 60*time.Millisecond, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, 60*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond, rate)

	n2 := NewOscillator(1318.51, 90*time.Millisecond, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, 90*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.6)
}

// createExplosionCue is a noise burst with a long tail
func createExplosionCue(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, 350*time.Millisecond, WaveNoise, rate)
	shaped := NewEnvelope(noise, 350*time.Millisecond, 5*time.Millisecond, 300*time.Millisecond, rate)
	return newVolume(shaped, vol*0.8)
}

// createPlayerHitCue is a harsh low buzz
func createPlayerHitCue(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(100.0, 120*time.Millisecond, WaveSaw, rate)
	shaped := NewEnvelope(osc, 120*time.Millisecond, 2*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(shaped, vol*0.7)
}

// createWaveAdvanceCue is a rising two-tone fanfare
func createWaveAdvanceCue(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewOscillator(440.0, 120*time.Millisecond, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, 120*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, rate)

	n2 := NewOscillator(880.0, 200*time.Millisecond, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, 200*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.7)
}

// createMeleeCue is a quick zip
func createMeleeCue(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, 90*time.Millisecond, WaveNoise, rate)
	shaped := NewEnvelope(noise, 90*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, vol*0.5)
}

// makeCue returns a fresh streamer for the given cue type
func makeCue(ct CueType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch ct {
	case CueFire:
		return createFireCue(rate, vol)
	case CueKill:
		return createKillCue(rate, vol)
	case CueExplosion:
		return createExplosionCue(rate, vol)
	case CuePlayerHit:
		return createPlayerHitCue(rate, vol)
	case CueWaveAdvance:
		return createWaveAdvanceCue(rate, vol)
	case CueMelee:
		return createMeleeCue(rate, vol)
	default:
		return nil
	}
}
