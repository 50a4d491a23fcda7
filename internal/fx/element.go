package fx

import (
	"math"

	"github.com/iburimskiy/crymson-fx/internal/config"
)

type ElementKind int

const (
	KindShell ElementKind = iota
	KindCard
	KindButton
	KindPrimary
	KindField
	KindNav
	KindHeading
	KindCheckbox
	KindToggle
	KindSelect
)

// Style is the transient transform the UI applies when drawing an element.
type Style struct {
	Offset   Vec2
	Scale    float64
	FlipX    float64
	Rotation float64
	Alpha    float64
	Glow     float64
	Ghosts   int
}

// Identity is the untouched style.
func Identity() Style {
	return Style{Scale: 1, FlipX: 1, Alpha: 1}
}

// Element is an on-screen control the interaction layer decorates. The UI
// owns the element; the engine only writes Style.
type Element struct {
	ID     string
	Kind   ElementKind
	Bounds Rect
	Label  string
	Style  Style

	hovered  bool
	focused  bool
	magnetic bool
	pull     Vec2
	anims    []anim
}

func (el *Element) isButton() bool { return el.Kind == KindButton || el.Kind == KindPrimary }

func (el *Element) attractsPointer() bool {
	return el.isButton() || el.Kind == KindField || el.Kind == KindCard
}

type animKind int

const (
	animSlideUpFade animKind = iota
	animScaleFade
	animSlideLeft
	animBounceIn
	animFadeIn
	animShake
	animLiquid
	animGlow
	animGlitch
	animPop
	animFlip
)

type anim struct {
	kind   animKind
	frame  int
	frames int
}

func (a anim) progress() float64 { return clamp01(float64(a.frame) / float64(a.frames)) }

func (el *Element) play(kind animKind, millis int) {
	for i := range el.anims {
		if el.anims[i].kind == kind {
			el.anims[i].frame = 0
			return
		}
	}
	el.anims = append(el.anims, anim{kind: kind, frames: config.Frames(millis)})
}

// Playing reports whether any style animation is still running.
func (el *Element) Playing() bool { return len(el.anims) > 0 }

func entranceFor(k ElementKind) animKind {
	switch k {
	case KindShell:
		return animSlideUpFade
	case KindCard:
		return animScaleFade
	case KindNav:
		return animSlideLeft
	case KindButton, KindPrimary:
		return animBounceIn
	default:
		return animFadeIn
	}
}

// restyle recomputes Style from hover/focus state and running animations,
// then advances the animations by one frame.
func (el *Element) restyle() {
	s := Identity()
	switch {
	case el.hovered && el.isButton():
		s.Offset.Y = -2
		s.Scale = 1.02
	case el.hovered && el.Kind == KindCard:
		s.Offset.Y = -4
	}
	if el.focused && (el.Kind == KindField || el.Kind == KindSelect) {
		s.Scale = 1.02
		if el.Kind == KindSelect {
			s.Glow = math.Max(s.Glow, 0.2)
		}
	}
	if el.magnetic {
		s.Offset = s.Offset.Add(el.pull)
		s.Scale = 1.05
	}

	kept := el.anims[:0]
	for _, a := range el.anims {
		applyAnim(&s, a)
		a.frame++
		if a.frame <= a.frames {
			kept = append(kept, a)
		}
	}
	el.anims = kept
	el.Style = s
}

func applyAnim(s *Style, a anim) {
	p := a.progress()
	switch a.kind {
	case animSlideUpFade:
		s.Alpha *= p
		s.Offset.Y += 30 * (1 - p)
	case animScaleFade:
		s.Alpha *= p
		s.Scale *= 0.9 + 0.1*p
	case animSlideLeft:
		s.Alpha *= p
		s.Offset.X += -20 * (1 - p)
	case animBounceIn:
		if p < 0.5 {
			s.Alpha *= p * 2
			s.Scale *= 0.3 + 0.8*(p*2)
		} else {
			s.Scale *= 1.1 - 0.1*(p*2-1)
		}
	case animFadeIn:
		s.Alpha *= p
	case animShake:
		s.Offset.X += keyframes(p, shakeFrames)
	case animLiquid:
		s.Scale *= keyframes(p, liquidScale)
		s.Rotation += keyframes(p, liquidTilt) * math.Pi / 180
	case animGlow:
		s.Glow = math.Max(s.Glow, 1-p)
	case animGlitch:
		s.Ghosts = 3
	case animPop:
		s.Scale *= keyframes(p, popScale)
	case animFlip:
		s.FlipX *= math.Abs(math.Cos(p * math.Pi))
	}
}

var (
	shakeFrames = []float64{0, -5, 5, -5, 5, -5, 5, -5, 5, -5, 0}
	liquidScale = []float64{1, 1.05, 1, 1.05, 1}
	liquidTilt  = []float64{0, 1, -1, 1, 0}
	popScale    = []float64{1, 1.2, 1}
)

// keyframes samples evenly spaced keyframe values at progress p.
func keyframes(p float64, values []float64) float64 {
	if len(values) == 1 {
		return values[0]
	}
	pos := clamp01(p) * float64(len(values)-1)
	i := int(pos)
	if i >= len(values)-1 {
		return values[len(values)-1]
	}
	f := pos - float64(i)
	return values[i] + (values[i+1]-values[i])*f
}
