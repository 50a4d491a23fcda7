package fx

import (
	"math/rand"
	"time"

	"github.com/iburimskiy/crymson-fx/internal/config"
)

// Cues plays audible feedback for visual events. Implementations must not block.
type Cues interface {
	Burst(strength float64)
}

// Context is everything the engine needs from its surroundings. It is passed
// explicitly; the engine holds no package-level state.
type Context struct {
	// ReducedMotion disables the render loop and every interaction producer.
	ReducedMotion bool
	Viewport      Viewport
	Tuning        *config.Tuning
	Rand          *rand.Rand
	Cues          Cues
}

func (c Context) withDefaults() Context {
	if c.Tuning == nil {
		c.Tuning = config.DefaultTuning()
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.Viewport.W <= 0 || c.Viewport.H <= 0 {
		c.Viewport = Viewport{W: config.WindowWidth, H: config.WindowHeight}
	}
	return c
}
