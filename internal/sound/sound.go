// Package sound synthesizes the short UI cues that accompany bursts and a
// successful login.
package sound

import (
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate beep.SampleRate = 44100
	meterSize                  = 2048
)

// Player mixes cues into a single speaker stream. The speaker is opened on
// the first cue; if that fails the player goes silent for good.
type Player struct {
	enabled bool
	ready   bool
	mixer   *beep.Mixer
	meter   *levelTap
}

func NewPlayer(enabled bool) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		enabled: enabled,
		mixer:   mixer,
		meter:   newLevelTap(mixer, meterSize),
	}
}

func (p *Player) open() bool {
	if p.ready {
		return true
	}
	if !p.enabled {
		return false
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		log.Printf("[Sound] Warning: speaker unavailable: %v (cues disabled)", err)
		p.enabled = false
		return false
	}
	speaker.Play(p.meter)
	p.ready = true
	return true
}

func (p *Player) play(s beep.Streamer) {
	if !p.open() {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Burst plays a pop whose pitch and loudness follow strength in [0,1].
func (p *Player) Burst(strength float64) {
	strength = math.Max(0, math.Min(1, strength))
	p.play(&effects.Volume{
		Streamer: Tone(sampleRate, 520*(1+0.3*strength), 90*time.Millisecond),
		Base:     2,
		Volume:   -2 + strength,
	})
}

// Chime plays the rising two-note welcome cue.
func (p *Player) Chime() {
	p.play(beep.Seq(
		Tone(sampleRate, 660, 80*time.Millisecond),
		Tone(sampleRate, 990, 140*time.Millisecond),
	))
}

// Level is the RMS of the most recent output, 0 when silent or disabled.
func (p *Player) Level() float64 {
	if !p.ready {
		return 0
	}
	return p.meter.level()
}

// Tone is a decaying sine of the given frequency and length.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(rate)
			env := math.Exp(-6 * float64(pos) / float64(total))
			v := 0.4 * env * math.Sin(2*math.Pi*freq*t)
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}
