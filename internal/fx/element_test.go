package fx

import (
	"math"
	"testing"

	"github.com/iburimskiy/crymson-fx/internal/input"
)

func settle(e *Engine, frames int) {
	for i := 0; i < frames; i++ {
		e.Step()
	}
}

func TestDecoratePlaysEntrance(t *testing.T) {
	e, _, _ := newTestEngine(t, false)
	card := &Element{ID: "card", Kind: KindCard, Bounds: Rect{W: 100, H: 100}}
	e.Decorate(card)

	e.Step()
	if card.Style.Alpha >= 1 || card.Style.Scale >= 1 {
		t.Errorf("card should start faded and shrunk, got %+v", card.Style)
	}
	settle(e, 70)
	if card.Playing() {
		t.Fatal("entrance still playing after 1 s")
	}
	if card.Style != Identity() {
		t.Errorf("card style after entrance: %+v", card.Style)
	}
}

func TestDecorateReducedMotionKeepsIdentity(t *testing.T) {
	e, _, _ := newTestEngine(t, true)
	btn := &Element{ID: "btn", Kind: KindButton}
	e.Decorate(btn)
	if btn.Playing() {
		t.Fatal("entrance queued under reduced motion")
	}
	if btn.Style != Identity() {
		t.Fatalf("style: got %+v, want identity", btn.Style)
	}
	e.Shake("btn")
	if btn.Playing() {
		t.Fatal("shake queued under reduced motion")
	}
}

func TestButtonHoverAndLeave(t *testing.T) {
	e, d, _ := newTestEngine(t, false)
	btn := &Element{ID: "btn", Kind: KindButton, Bounds: Rect{X: 100, Y: 100, W: 100, H: 40}}
	e.Decorate(btn)
	settle(e, 70)

	// pointer enters exactly at the centre so the magnetic pull is zero
	d.Dispatch(input.Event{Kind: input.Enter, X: 150, Y: 120, Target: "btn"})
	settle(e, 40)
	if btn.Style.Offset != (Vec2{0, -2}) {
		t.Errorf("hover offset: got %+v, want (0,-2)", btn.Style.Offset)
	}
	if btn.Style.Scale != 1.05 {
		t.Errorf("magnetic scale: got %v, want 1.05", btn.Style.Scale)
	}

	d.Dispatch(input.Event{Kind: input.PointerMove, X: 170, Y: 120})
	e.Step()
	if math.Abs(btn.Style.Offset.X-2) > 1e-9 {
		t.Errorf("magnetic pull x: got %v, want 2", btn.Style.Offset.X)
	}

	var ripples int
	for _, ef := range e.Effects() {
		if ef.Kind == EffectRipple {
			ripples++
		}
	}
	if ripples != 0 {
		t.Errorf("ripple should have expired after 600 ms, %d left", ripples)
	}

	d.Dispatch(input.Event{Kind: input.Leave, Target: "btn"})
	e.Step()
	if btn.Style != Identity() {
		t.Errorf("style after leave: %+v", btn.Style)
	}
}

func TestHoverRippleExpires(t *testing.T) {
	e, d, _ := newTestEngine(t, false)
	e.Decorate(&Element{ID: "btn", Kind: KindPrimary, Bounds: Rect{W: 100, H: 40}})
	d.Dispatch(input.Event{Kind: input.Enter, X: 50, Y: 20, Target: "btn"})

	if len(e.Effects()) != 1 || e.Effects()[0].Kind != EffectRipple {
		t.Fatalf("expected one ripple, got %+v", e.Effects())
	}
	prev := 1.0
	for i := 0; i < 40; i++ {
		e.Step()
		effects := e.Effects()
		if len(effects) == 0 {
			return
		}
		if effects[0].Life >= prev {
			t.Fatalf("ripple life did not decrease: %v -> %v", prev, effects[0].Life)
		}
		prev = effects[0].Life
	}
	t.Fatal("ripple never expired")
}

func TestFieldFocusGlowAndAura(t *testing.T) {
	e, d, _ := newTestEngine(t, false)
	field := &Element{ID: "user", Kind: KindField, Bounds: Rect{X: 10, Y: 10, W: 300, H: 36}}
	e.Decorate(field)
	settle(e, 70)

	d.Dispatch(input.Event{Kind: input.Focus, Target: "user"})
	e.Step()
	if field.Style.Scale != 1.02 {
		t.Errorf("focus scale: got %v, want 1.02", field.Style.Scale)
	}
	if field.Style.Glow <= 0.9 {
		t.Errorf("glow should start near 1, got %v", field.Style.Glow)
	}
	settle(e, 30)
	if field.Style.Glow != 0 {
		t.Errorf("glow should end after 300 ms, got %v", field.Style.Glow)
	}
	if n := countEffects(e, EffectAura); n != 1 {
		t.Fatalf("aura count while focused: got %d, want 1", n)
	}

	d.Dispatch(input.Event{Kind: input.Blur, Target: "user"})
	e.Step()
	if n := countEffects(e, EffectAura); n != 0 {
		t.Fatalf("aura count after blur: got %d, want 0", n)
	}
	if field.Style.Scale != 1 {
		t.Errorf("scale after blur: got %v, want 1", field.Style.Scale)
	}
}

func TestTypingGlyph(t *testing.T) {
	e, d, _ := newTestEngine(t, false)
	e.Decorate(&Element{ID: "pass", Kind: KindField, Bounds: Rect{X: 0, Y: 50, W: 200, H: 30}})
	d.Dispatch(input.Event{Kind: input.TextInput, Target: "pass", Rune: 'x'})

	effects := e.Effects()
	if len(effects) != 1 || effects[0].Kind != EffectGlyph {
		t.Fatalf("expected one glyph, got %+v", effects)
	}
	if g := effects[0].Glyph; g < 'A' || g > 'Z' {
		t.Errorf("glyph %q outside A-Z", g)
	}
	if effects[0].Pos != (Vec2{180, 50}) {
		t.Errorf("glyph origin: got %+v", effects[0].Pos)
	}
}

func TestNavSlideBarAndHeadingGlitch(t *testing.T) {
	e, d, _ := newTestEngine(t, false)
	heading := &Element{ID: "title", Kind: KindHeading}
	e.Decorate(&Element{ID: "nav", Kind: KindNav, Bounds: Rect{W: 120, H: 28}}, heading)
	settle(e, 70)

	d.Dispatch(input.Event{Kind: input.Enter, Target: "nav"})
	if countEffects(e, EffectSlideBar) != 1 {
		t.Fatal("expected a slide bar on nav hover")
	}
	d.Dispatch(input.Event{Kind: input.Enter, Target: "title"})
	e.Step()
	if heading.Style.Ghosts != 3 {
		t.Errorf("glitch ghosts: got %d, want 3", heading.Style.Ghosts)
	}
	settle(e, 35)
	if heading.Style.Ghosts != 0 {
		t.Errorf("glitch should end after 500 ms, ghosts=%d", heading.Style.Ghosts)
	}
}

func TestShakeOffsets(t *testing.T) {
	e, _, _ := newTestEngine(t, false)
	field := &Element{ID: "user", Kind: KindField}
	e.Decorate(field)
	settle(e, 70)

	e.Shake("user", "missing")
	var min, max float64
	for i := 0; i < 31; i++ {
		e.Step()
		x := field.Style.Offset.X
		min = math.Min(min, x)
		max = math.Max(max, x)
	}
	if min < -5 || max > 5 {
		t.Errorf("shake exceeded ±5: [%v,%v]", min, max)
	}
	if min > -4 || max < 4 {
		t.Errorf("shake too weak: [%v,%v]", min, max)
	}
	e.Step()
	if field.Playing() || field.Style.Offset.X != 0 {
		t.Errorf("shake should have finished, offset %v", field.Style.Offset.X)
	}
}

func TestCheckboxAndToggleClicks(t *testing.T) {
	e, d, _ := newTestEngine(t, false)
	box := &Element{ID: "remember", Kind: KindCheckbox}
	toggle := &Element{ID: "theme", Kind: KindToggle}
	e.Decorate(box, toggle)
	settle(e, 70)

	d.Dispatch(input.Event{Kind: input.Click, Target: "remember"})
	d.Dispatch(input.Event{Kind: input.Click, Target: "theme"})
	settle(e, 10)
	if box.Style.Scale <= 1.1 {
		t.Errorf("checkbox pop at midpoint: got %v", box.Style.Scale)
	}
	if toggle.Style.FlipX > 0.1 {
		t.Errorf("toggle flip at midpoint: got %v", toggle.Style.FlipX)
	}
	if n := len(e.Explosions()); n != 0 {
		t.Errorf("non-button click produced %d particles", n)
	}
}

func TestKeyframes(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 0},
		{0.05, -2.5},
		{0.1, -5},
		{0.15, 0},
		{1, 0},
		{2, 0},
	}
	for _, tt := range tests {
		if got := keyframes(tt.p, shakeFrames); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("keyframes(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func countEffects(e *Engine, kind EffectKind) int {
	n := 0
	for _, ef := range e.Effects() {
		if ef.Kind == kind {
			n++
		}
	}
	return n
}
