// Package audio plays the game's cue sounds through the system speaker.
// Sounds are synthesized on the fly, so no sample files are shipped.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/wordfall/internal/core"
)

// SampleRate is the output rate of every generated sound.
const SampleRate = beep.SampleRate(44100)

// Sound lengths
const (
	gongDuration   = 900 * time.Millisecond
	impactDuration = 250 * time.Millisecond
	missDuration   = 350 * time.Millisecond
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a wave generator that ends after d.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		rng:    rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay shapes a stream with a short linear attack and an exponential tail.
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	rate     float64 // Tail decay per second
	sr       beep.SampleRate
}

// NewDecay wraps s with an attack of the given length and exponential decay.
func NewDecay(s beep.Streamer, attack time.Duration, perSecond float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, attack: rate.N(attack), rate: perSecond, sr: rate}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-d.rate * float64(d.position) / float64(d.sr))
		if d.position < d.attack {
			vol *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales s linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Gong is the launch sound: a low bell with a long ring.
func Gong(rate beep.SampleRate) beep.Streamer {
	fund := NewDecay(NewOscillator(196, gongDuration, WaveSine, rate), 5*time.Millisecond, 4, rate)
	over := NewDecay(NewOscillator(523.25, gongDuration, WaveSine, rate), 5*time.Millisecond, 9, rate)
	return beep.Mix(newVolume(fund, 0.5), newVolume(over, 0.2))
}

// Impact is the strike sound: a noise burst over a low thump.
func Impact(rate beep.SampleRate) beep.Streamer {
	noise := NewDecay(NewOscillator(0, impactDuration, WaveNoise, rate), 2*time.Millisecond, 18, rate)
	thump := NewDecay(NewOscillator(70, impactDuration, WaveSine, rate), 2*time.Millisecond, 12, rate)
	return beep.Mix(newVolume(noise, 0.3), newVolume(thump, 0.5))
}

// Miss is the life-lost sound: a falling pair of saw notes.
func Miss(rate beep.SampleRate) beep.Streamer {
	half := missDuration / 2
	hi := NewDecay(NewOscillator(220, half, WaveSaw, rate), 5*time.Millisecond, 6, rate)
	lo := NewDecay(NewOscillator(147, half, WaveSaw, rate), 5*time.Millisecond, 6, rate)
	return newVolume(beep.Seq(hi, lo), 0.25)
}

// Sound returns the streamer for a cue, or nil for CueNone.
func Sound(c core.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case core.CueGong:
		return Gong(rate)
	case core.CueImpact:
		return Impact(rate)
	case core.CueMiss:
		return Miss(rate)
	default:
		return nil
	}
}
