package fx

import (
	"image/color"
	"math"

	"github.com/iburimskiy/crymson-fx/internal/config"
)

// spinner is the three-ring loading indicator.
type spinner struct {
	visible bool
	opacity float64
	angle   float64
}

func (s *spinner) step(fadeFrames int) {
	target := 0.0
	if s.visible {
		target = 1
	}
	d := 1 / float64(fadeFrames)
	switch {
	case s.opacity < target:
		s.opacity = math.Min(target, s.opacity+d)
	case s.opacity > target:
		s.opacity = math.Max(target, s.opacity-d)
	}
	s.angle += 2 * math.Pi / config.FrameRate
}

func (e *Engine) drawSpinner() {
	s := &e.spinner
	if s.opacity <= 0 {
		return
	}
	centre := Vec2{e.ctx.Viewport.W / 2, e.ctx.Viewport.H / 2}
	ringFill := white
	ringFill.A = 204
	rings := []struct {
		radius float64
		lag    float64
		fill   color.RGBA
	}{
		{30, 0, e.accent},
		{24, 0.2, e.accentLight},
		{18, 0.4, ringFill},
	}
	for _, r := range rings {
		e.frame.Add(Command{
			Layer:  Overlay,
			Shape:  ShapeArc,
			Pos:    centre,
			Radius: r.radius,
			Width:  3,
			Start:  s.angle - r.lag*2*math.Pi - math.Pi*3/4,
			Sweep:  math.Pi / 2,
			Fill:   r.fill,
			Alpha:  s.opacity,
		})
	}
}

type phaseKind int

const (
	phaseBannerIn phaseKind = iota
	phaseBannerHold
	phaseBannerOut
	phaseSweepIn
	phaseSweepHold
	phaseSweepOut
)

type phase struct {
	kind   phaseKind
	frames int
}

// sequence is the welcome banner followed by the page transition sweep.
type sequence struct {
	text   string
	phases []phase
	index  int
	frame  int
	done   func()
}

func (e *Engine) newWelcome(name string, done func()) *sequence {
	t := e.ctx.Tuning
	return &sequence{
		text: "Welcome, " + name + "!",
		phases: []phase{
			{phaseBannerIn, config.Frames(t.BannerInMillis)},
			{phaseBannerHold, config.Frames(t.BannerHoldMillis)},
			{phaseBannerOut, config.Frames(t.BannerOutMillis)},
			{phaseSweepIn, config.Frames(t.SweepMillis)},
			{phaseSweepHold, config.Frames(t.SweepHoldMillis)},
			{phaseSweepOut, config.Frames(t.SweepMillis)},
		},
		done: done,
	}
}

// step advances the sequence and reports whether it has finished.
func (q *sequence) step() bool {
	if q.index >= len(q.phases) {
		return true
	}
	q.frame++
	if q.frame >= q.phases[q.index].frames {
		q.frame = 0
		q.index++
	}
	return q.index >= len(q.phases)
}

func (e *Engine) drawSequence(q *sequence) {
	if q.index >= len(q.phases) {
		return
	}
	ph := q.phases[q.index]
	p := clamp01(float64(q.frame) / float64(ph.frames))
	vp := e.ctx.Viewport
	centre := Vec2{vp.W / 2, vp.H / 2}
	full := RectPoints(vp.W, vp.H)

	banner := func(alpha, scale float64) {
		e.frame.Add(Command{Layer: Overlay, Shape: ShapePolygon, Pos: centre, Scale: scale, Points: full, Fill: gradientStop(e.accent, e.accentLight, 0.5), Alpha: alpha})
		e.frame.Add(Command{Layer: Overlay, Shape: ShapeText, Pos: centre, Scale: scale, Text: q.text, Fill: white, Alpha: alpha})
	}
	sweep := func(x float64) {
		e.frame.Add(Command{Layer: Overlay, Shape: ShapePolygon, Pos: Vec2{centre.X + x, centre.Y}, Points: full, Fill: gradientStop(e.accent, e.accentLight, 0.5), Alpha: 1})
	}

	switch ph.kind {
	case phaseBannerIn:
		banner(p, 0.8+0.2*p)
	case phaseBannerHold:
		banner(1, 1)
	case phaseBannerOut:
		banner(1-p, 1-0.1*p)
	case phaseSweepIn:
		sweep(-vp.W * (1 - easeInOut(p)))
	case phaseSweepHold:
		sweep(0)
	case phaseSweepOut:
		sweep(vp.W * easeInOut(p))
	}
}

func (e *Engine) updateOverlays() {
	e.spinner.step(config.Frames(300))
	e.drawSpinner()

	if e.welcome == nil {
		return
	}
	e.drawSequence(e.welcome)
	if e.welcome.step() {
		done := e.welcome.done
		e.welcome = nil
		if done != nil {
			done()
		}
	}
}

// easeInOut approximates cubic-bezier(0.4, 0, 0.2, 1).
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
