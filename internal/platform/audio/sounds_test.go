package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/wordfall/internal/core"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if v := max(smp[0], -smp[0]); v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tt.wave, rate)
			n, peak := drain(t, osc)
			if n != rate.N(100*time.Millisecond) {
				t.Errorf("streamed %d samples, want %d", n, rate.N(100*time.Millisecond))
			}
			if peak > 1 {
				t.Errorf("peak %v out of range", peak)
			}
			if osc.Err() != nil {
				t.Errorf("unexpected error: %v", osc.Err())
			}
		})
	}
}

func TestDecayFadesOut(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewDecay(NewOscillator(0, time.Second, WaveNoise, rate), 0, 20, rate)

	head := make([][2]float64, 100)
	s.Stream(head)
	skip := make([][2]float64, rate.N(800*time.Millisecond))
	s.Stream(skip)
	tail := make([][2]float64, 100)
	n, _ := s.Stream(tail)

	for _, smp := range tail[:n] {
		if smp[0] > 0.01 || smp[0] < -0.01 {
			t.Fatalf("tail sample %v should have decayed", smp[0])
		}
	}
}

func TestSoundPerCue(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		cue  core.Cue
		want time.Duration
	}{
		{core.CueGong, gongDuration},
		{core.CueImpact, impactDuration},
		{core.CueMiss, missDuration},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := Sound(tt.cue, rate)
			if s == nil {
				t.Fatal("no sound for cue")
			}
			n, peak := drain(t, s)
			if n == 0 || n > rate.N(tt.want)+1 {
				t.Errorf("sound length %d samples, want at most %d", n, rate.N(tt.want))
			}
			if peak == 0 {
				t.Error("sound is silent")
			}
		})
	}

	if Sound(core.CueNone, rate) != nil {
		t.Error("CueNone should have no sound")
	}
}

func TestMutedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(true, nil)
	if err := p.Init(); err != nil {
		t.Fatalf("muted Init should not fail: %v", err)
	}
	p.Play(core.CueGong)
	p.Play(core.CueImpact)
	if p.Played() != 0 {
		t.Errorf("muted player queued %d sounds", p.Played())
	}
	p.Close()
}

func TestUninitializedPlayerIgnoresCues(t *testing.T) {
	p := NewPlayer(false, nil)
	p.Play(core.CueMiss)
	if p.Played() != 0 {
		t.Errorf("uninitialized player queued %d sounds", p.Played())
	}
	p.Close()
}
