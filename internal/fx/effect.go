package fx

import (
	"image/color"
	"math"

	"github.com/iburimskiy/crymson-fx/internal/config"
)

type EffectKind int

const (
	EffectRipple EffectKind = iota
	EffectExplosionRipple
	EffectSlideBar
	EffectGlyph
	EffectAura
)

// Effect is a transient overlay attached to a point or an element. Life
// decays from 1 to 0 over the effect's duration, except for auras, which
// hold until their field loses focus.
type Effect struct {
	ID     uint64
	Kind   EffectKind
	Target string
	Bounds Rect
	Pos    Vec2
	Glyph  rune
	Life   float64
	Decay  float64
	Age    int
	held   bool
}

var (
	defaultAccent      = RGB(61, 115, 255)
	defaultAccentLight = RGB(109, 216, 255)
	white              = RGB(255, 255, 255)
)

func (e *Engine) addEffect(kind EffectKind, target string, bounds Rect, pos Vec2, millis int) *Effect {
	ef := Effect{
		ID:     e.nextID(),
		Kind:   kind,
		Target: target,
		Bounds: bounds,
		Pos:    pos,
		Life:   1,
		Decay:  1 / float64(config.Frames(millis)),
	}
	e.effects = append(e.effects, ef)
	return &e.effects[len(e.effects)-1]
}

// releaseAuras lets the auras attached to target start fading out.
func (e *Engine) releaseAuras(target string) {
	for i := range e.effects {
		if e.effects[i].Kind == EffectAura && e.effects[i].Target == target {
			e.effects[i].held = false
			e.effects[i].Life = 0
		}
	}
}

func (e *Engine) updateEffects() {
	kept := e.effects[:0]
	for _, ef := range e.effects {
		ef.Age++
		if !ef.held {
			ef.Life -= ef.Decay
		}
		if ef.Life > 0 {
			e.drawEffect(&ef)
			kept = append(kept, ef)
		}
	}
	e.effects = kept
}

func (e *Engine) drawEffect(ef *Effect) {
	p := 1 - ef.Life
	switch ef.Kind {
	case EffectRipple:
		size := math.Max(ef.Bounds.W, ef.Bounds.H)
		fill := white
		fill.A = 77
		e.frame.Add(Command{
			Layer:  Foreground,
			Shape:  ShapeCircle,
			Pos:    ef.Bounds.Center(),
			Radius: size / 2 * 4 * p,
			Fill:   fill,
			Alpha:  ef.Life,
		})
	case EffectExplosionRipple:
		fill := white
		fill.A = 204
		e.frame.Add(Command{
			Layer:  Foreground,
			Shape:  ShapeGlow,
			Pos:    ef.Pos,
			Radius: 200 * p,
			Fill:   fill,
			Alpha:  ef.Life,
		})
	case EffectSlideBar:
		h := ef.Bounds.H * math.Min(1, p)
		e.frame.Add(Command{
			Layer:  Foreground,
			Shape:  ShapePolygon,
			Pos:    Vec2{ef.Bounds.X, ef.Bounds.Y},
			Points: []Vec2{{0, 0}, {3, 0}, {3, h}, {0, h}},
			Fill:   gradientStop(e.accent, e.accentLight, p),
			Alpha:  1,
		})
	case EffectGlyph:
		fill := e.accent
		fill.A = 204
		e.frame.Add(Command{
			Layer: Foreground,
			Shape: ShapeText,
			Pos:   Vec2{ef.Pos.X, ef.Pos.Y - 30*p},
			Text:  string(ef.Glyph),
			Fill:  fill,
			Alpha: ef.Life,
		})
	case EffectAura:
		// 2 s pulse between scale 1 and 1.1, opacity 0.5 and 0.8
		phase := (1 - math.Cos(float64(ef.Age)/float64(config.Frames(2000))*2*math.Pi)) / 2
		scale := 1 + 0.1*phase
		fill := e.accent
		fill.A = 77
		e.frame.Add(Command{
			Layer:  Background,
			Shape:  ShapePolygon,
			Pos:    ef.Bounds.Center(),
			Scale:  scale,
			Points: RectPoints(ef.Bounds.W+20, ef.Bounds.H+20),
			Fill:   fill,
			Alpha:  (0.5 + 0.3*phase) * ef.Life,
		})
	}
}

func gradientStop(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
