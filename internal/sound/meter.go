package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap passes audio through and keeps the last samples in a ring so the
// UI goroutine can read a loudness level.
type levelTap struct {
	src  beep.Streamer
	mu   sync.Mutex
	ring [][2]float64
	next int
}

func newLevelTap(src beep.Streamer, size int) *levelTap {
	return &levelTap{src: src, ring: make([][2]float64, size)}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for _, s := range samples[:n] {
			t.ring[t.next] = s
			t.next = (t.next + 1) % len(t.ring)
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *levelTap) Err() error { return t.src.Err() }

func (t *levelTap) level() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	var sum float64
	for _, s := range t.ring {
		sum += (s[0]*s[0] + s[1]*s[1]) / 2
	}
	return math.Sqrt(sum / float64(len(t.ring)))
}
