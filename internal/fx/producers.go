package fx

import (
	"github.com/iburimskiy/crymson-fx/internal/input"
)

func (e *Engine) onPointerMove(ev input.Event) {
	e.pointer = Vec2{ev.X, ev.Y}
	e.trail.Push(e.newTrailParticle(ev.X, ev.Y))

	pull := e.ctx.Tuning.MagneticPull
	for _, el := range e.order {
		if el.magnetic {
			el.pull = e.pointer.Sub(el.Bounds.Center()).Scale(pull)
		}
	}
}

func (e *Engine) onClick(ev input.Event) {
	el, ok := e.elements[ev.Target]
	if !ok {
		return
	}
	t := e.ctx.Tuning
	switch {
	case el.isButton():
		e.burst(ev.X, ev.Y)
		e.addEffect(EffectExplosionRipple, el.ID, el.Bounds, Vec2{ev.X, ev.Y}, t.ExplosionMillis)
	case el.Kind == KindCheckbox:
		el.play(animPop, 300)
	case el.Kind == KindToggle:
		el.play(animFlip, 300)
	}
}

func (e *Engine) onEnter(ev input.Event) {
	el, ok := e.elements[ev.Target]
	if !ok {
		return
	}
	t := e.ctx.Tuning
	el.hovered = true
	if el.attractsPointer() {
		el.magnetic = true
		el.pull = Vec2{ev.X, ev.Y}.Sub(el.Bounds.Center()).Scale(t.MagneticPull)
	}
	switch el.Kind {
	case KindButton, KindPrimary:
		e.addEffect(EffectRipple, el.ID, el.Bounds, el.Bounds.Center(), t.RippleMillis)
		el.play(animLiquid, t.LiquidMillis)
	case KindNav:
		e.addEffect(EffectSlideBar, el.ID, el.Bounds, Vec2{el.Bounds.X, el.Bounds.Y}, t.SlideMillis)
	case KindHeading:
		el.play(animGlitch, t.GlitchMillis)
	}
}

func (e *Engine) onLeave(ev input.Event) {
	el, ok := e.elements[ev.Target]
	if !ok {
		return
	}
	el.hovered = false
	el.magnetic = false
	el.pull = Vec2{}
}

func (e *Engine) onFocus(ev input.Event) {
	el, ok := e.elements[ev.Target]
	if !ok {
		return
	}
	switch el.Kind {
	case KindField:
		el.focused = true
		el.play(animGlow, e.ctx.Tuning.GlowMillis)
		aura := e.addEffect(EffectAura, el.ID, el.Bounds, el.Bounds.Center(), 2000)
		aura.held = true
	case KindSelect:
		el.focused = true
	}
}

func (e *Engine) onBlur(ev input.Event) {
	el, ok := e.elements[ev.Target]
	if !ok {
		return
	}
	el.focused = false
	e.releaseAuras(el.ID)
}

// onTextInput floats a random capital letter off the right edge of the field.
func (e *Engine) onTextInput(ev input.Event) {
	el, ok := e.elements[ev.Target]
	if !ok || el.Kind != KindField {
		return
	}
	ef := e.addEffect(EffectGlyph, el.ID, el.Bounds, Vec2{el.Bounds.X + el.Bounds.W - 20, el.Bounds.Y}, e.ctx.Tuning.GlyphMillis)
	ef.Glyph = rune('A' + e.ctx.Rand.Intn(26))
}
