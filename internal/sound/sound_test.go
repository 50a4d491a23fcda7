package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

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

func TestToneLengthAndDecay(t *testing.T) {
	d := 100 * time.Millisecond
	samples := drain(Tone(sampleRate, 440, d))
	if len(samples) != sampleRate.N(d) {
		t.Fatalf("samples: got %d, want %d", len(samples), sampleRate.N(d))
	}

	peak := func(part [][2]float64) float64 {
		var m float64
		for _, s := range part {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	q := len(samples) / 4
	head, tail := peak(samples[:q]), peak(samples[3*q:])
	if head > 0.4 || tail >= head/2 {
		t.Errorf("envelope: head peak %v, tail peak %v", head, tail)
	}
	for i, s := range samples {
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono: %v", i, s)
		}
	}
}

func TestLevelTap(t *testing.T) {
	constant := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{0.5, 0.5}
		}
		return len(samples), true
	})
	tap := newLevelTap(constant, 64)
	if tap.level() != 0 {
		t.Fatal("empty ring should read silent")
	}
	buf := make([][2]float64, 100)
	tap.Stream(buf)
	if got := tap.level(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("level: got %v, want 0.5", got)
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := NewPlayer(false)
	p.Burst(1)
	p.Chime()
	if p.ready || p.Level() != 0 {
		t.Fatal("disabled player opened the speaker")
	}
}
