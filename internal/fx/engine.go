// Package fx is the login screen's animation core: the particle and shape
// collections, the per-frame update pass that turns them into draw commands,
// and the interaction producers that feed them.
package fx

import (
	"image/color"
	"log"

	"github.com/iburimskiy/crymson-fx/internal/input"
)

// Engine owns every animated collection. All methods must be called from the
// goroutine that drives the frame scheduler.
type Engine struct {
	ctx   Context
	frame Frame

	floating   []Floating
	trail      *Queue[Particle]
	explosions *Queue[Particle]
	parallax   []ParallaxLayer
	morphs     []Morph
	dust       []Dust
	effects    []Effect

	elements map[string]*Element
	order    []*Element

	spinner spinner
	welcome *sequence

	accent      color.RGBA
	accentLight color.RGBA

	pointer    Vec2
	trailIndex int
	ids        uint64
	frames     uint64
	running    bool
}

func NewEngine(ctx Context) *Engine {
	ctx = ctx.withDefaults()
	e := &Engine{
		ctx:        ctx,
		trail:      NewQueue[Particle](ctx.Tuning.TrailCap),
		explosions: NewQueue[Particle](ctx.Tuning.BurstCap),
		elements:   map[string]*Element{},

		accent:      defaultAccent,
		accentLight: defaultAccentLight,
	}
	if ctx.ReducedMotion {
		return e
	}
	e.seedFloating()
	e.seedParallax()
	e.seedMorphs()
	e.seedDust()
	return e
}

// SetAccent recolours effects, the spinner and the welcome banner.
func (e *Engine) SetAccent(primary, secondary color.RGBA) {
	e.accent, e.accentLight = primary, secondary
}

func (e *Engine) nextID() uint64 {
	e.ids++
	return e.ids
}

// ReducedMotion reports whether animation is disabled for this session.
func (e *Engine) ReducedMotion() bool { return e.ctx.ReducedMotion }

// Start registers the render loop with s. It returns false, and schedules
// nothing, when reduced motion is active or the loop is already running.
func (e *Engine) Start(s *Scheduler) bool {
	if e.ctx.ReducedMotion {
		log.Printf("[Engine] Reduced motion active, render loop disabled")
		return false
	}
	if e.running {
		return false
	}
	e.running = true
	var loop func()
	loop = func() {
		e.Step()
		s.RequestFrame(loop)
	}
	s.RequestFrame(loop)
	return true
}

// Step runs one frame: clear the surfaces, advance and draw every collection,
// then drop expired records.
func (e *Engine) Step() {
	e.frame.Clear()

	e.updateFloating()
	e.updateTrail()
	e.updateParallax()
	e.updateMorphs()
	e.updateExplosions()
	e.updateDust()
	e.updateEffects()
	for _, el := range e.order {
		el.restyle()
	}
	e.updateOverlays()

	e.frames++
}

// Frame is the command list produced by the last Step.
func (e *Engine) Frame() *Frame { return &e.frame }

// Frames is the number of Steps run so far.
func (e *Engine) Frames() uint64 { return e.frames }

// Resize updates the logical viewport. Records keep their positions; the new
// bounds apply from the next frame.
func (e *Engine) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	e.ctx.Viewport = Viewport{W: w, H: h}
}

func (e *Engine) Viewport() Viewport { return e.ctx.Viewport }

// Decorate hands UI elements to the engine. Each element plays its entrance
// animation unless motion is reduced.
func (e *Engine) Decorate(elems ...*Element) {
	for _, el := range elems {
		if el.Style == (Style{}) {
			el.Style = Identity()
		}
		if _, ok := e.elements[el.ID]; !ok {
			e.order = append(e.order, el)
		}
		e.elements[el.ID] = el
		if !e.ctx.ReducedMotion {
			el.play(entranceFor(el.Kind), e.ctx.Tuning.EntranceMillis)
		}
	}
}

// Element looks up a decorated element by id.
func (e *Engine) Element(id string) (*Element, bool) {
	el, ok := e.elements[id]
	return el, ok
}

// Shake plays the error shake on the given elements.
func (e *Engine) Shake(ids ...string) {
	if e.ctx.ReducedMotion {
		return
	}
	for _, id := range ids {
		if el, ok := e.elements[id]; ok {
			el.play(animShake, e.ctx.Tuning.ShakeMillis)
		}
	}
}

func (e *Engine) ShowSpinner() { e.spinner.visible = true }
func (e *Engine) HideSpinner() { e.spinner.visible = false }

// SpinnerVisible reports whether the spinner is requested.
func (e *Engine) SpinnerVisible() bool { return e.spinner.visible }

// Welcome plays the welcome banner and page transition, then calls done.
// Under reduced motion done runs immediately.
func (e *Engine) Welcome(name string, done func()) {
	if e.ctx.ReducedMotion {
		if done != nil {
			done()
		}
		return
	}
	e.welcome = e.newWelcome(name, done)
}

// Transitioning reports whether the welcome sequence is still playing.
func (e *Engine) Transitioning() bool { return e.welcome != nil }

// Trail returns a copy of the mouse trail, oldest first.
func (e *Engine) Trail() []Particle { return e.trail.Snapshot() }

// Explosions returns a copy of the burst particles, oldest first.
func (e *Engine) Explosions() []Particle { return e.explosions.Snapshot() }

// Floating returns a copy of the floating décor.
func (e *Engine) Floating() []Floating { return append([]Floating(nil), e.floating...) }

// Morphs returns a copy of the morphing shapes. Vertex slices are shared.
func (e *Engine) Morphs() []Morph { return append([]Morph(nil), e.morphs...) }

// Effects returns a copy of the live overlay effects.
func (e *Engine) Effects() []Effect { return append([]Effect(nil), e.effects...) }

// Attach registers the interaction producers on d. It registers nothing and
// returns false under reduced motion.
func (e *Engine) Attach(d *input.Dispatcher) bool {
	if e.ctx.ReducedMotion {
		return false
	}
	d.On(input.PointerMove, e.onPointerMove)
	d.On(input.Click, e.onClick)
	d.On(input.Enter, e.onEnter)
	d.On(input.Leave, e.onLeave)
	d.On(input.Focus, e.onFocus)
	d.On(input.Blur, e.onBlur)
	d.On(input.TextInput, e.onTextInput)
	return true
}
