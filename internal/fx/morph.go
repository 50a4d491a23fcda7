package fx

import (
	"image/color"
	"math"
	"math/rand"
)

// Morph is a polygon that interpolates towards a target outline. When
// Progress reaches 1 the target becomes the current outline and a fresh
// random target is drawn.
type Morph struct {
	Pos      Vec2
	Vertices []Vec2
	Target   []Vec2
	Progress float64
	Rotation float64
	Scale    float64
	Color    color.RGBA
}

// RandomPolygon returns a star-shaped outline with the given number of sides
// and radii jittered in [1, 1.3).
func RandomPolygon(r *rand.Rand, sides int) []Vec2 {
	step := math.Pi * 2 / float64(sides)
	out := make([]Vec2, sides)
	for i := range out {
		angle := float64(i) * step
		radius := 1 + r.Float64()*0.3
		out[i] = Vec2{math.Cos(angle) * radius, math.Sin(angle) * radius}
	}
	return out
}

func (e *Engine) randomSides() int {
	t := e.ctx.Tuning
	return t.MorphMinSides + e.ctx.Rand.Intn(t.MorphMaxSides-t.MorphMinSides+1)
}

func (e *Engine) seedMorphs() {
	r := e.ctx.Rand
	vp := e.ctx.Viewport
	e.morphs = make([]Morph, 0, e.ctx.Tuning.MorphCount)
	for i := 0; i < e.ctx.Tuning.MorphCount; i++ {
		c := HSL(r.Float64()*360, 0.7, 0.5)
		c.A = 26
		e.morphs = append(e.morphs, Morph{
			Pos:      Vec2{r.Float64() * vp.W, r.Float64() * vp.H},
			Vertices: RandomPolygon(r, e.randomSides()),
			Target:   RandomPolygon(r, e.randomSides()),
			Scale:    r.Float64()*100 + 50,
			Color:    c,
		})
	}
}

// advance moves the morph one step and reports whether it wrapped.
func (m *Morph) advance(step, spin float64, next func() []Vec2) bool {
	m.Progress += step
	m.Rotation += spin
	if m.Progress < 1 {
		return false
	}
	m.Vertices = m.Target
	m.Target = next()
	m.Progress = 0
	return true
}

// Outline returns the interpolated vertices. The outline keeps the current
// vertex count; a current vertex without a matching target index moves towards
// the first target vertex, and with no target at all it stays put.
func (m *Morph) Outline() []Vec2 {
	out := make([]Vec2, len(m.Vertices))
	for i, v := range m.Vertices {
		target := v
		switch {
		case i < len(m.Target):
			target = m.Target[i]
		case len(m.Target) > 0:
			target = m.Target[0]
		}
		out[i] = Lerp(v, target, m.Progress)
	}
	return out
}

func (e *Engine) updateMorphs() {
	t := e.ctx.Tuning
	next := func() []Vec2 { return RandomPolygon(e.ctx.Rand, e.randomSides()) }
	for i := range e.morphs {
		m := &e.morphs[i]
		m.advance(t.MorphStep, t.MorphSpin, next)
		e.frame.Add(Command{
			Layer:    Background,
			Shape:    ShapePolygon,
			Pos:      m.Pos,
			Rotation: m.Rotation,
			Scale:    m.Scale,
			Points:   m.Outline(),
			Fill:     m.Color,
			Alpha:    1,
		})
	}
}
