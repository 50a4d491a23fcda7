package fx

import (
	"math"

	"github.com/iburimskiy/crymson-fx/internal/config"
)

// ParallaxLayer is a band of squares scrolling left at a fixed speed.
type ParallaxLayer struct {
	Shapes  []ParallaxShape
	Speed   float64
	Opacity float64
}

type ParallaxShape struct {
	Pos      Vec2
	Size     float64
	Rotation float64
}

// Dust is a background speck positioned in percent of the viewport.
type Dust struct {
	X, Y  float64
	Size  float64
	Delay int
	Age   int
}

var (
	parallaxFill = RGB(61, 115, 255)
	dustFill     = RGB(109, 216, 255)
)

func (e *Engine) seedParallax() {
	t := e.ctx.Tuning
	r := e.ctx.Rand
	vp := e.ctx.Viewport
	e.parallax = make([]ParallaxLayer, t.ParallaxLayers)
	for i := range e.parallax {
		layer := &e.parallax[i]
		layer.Speed = float64(i+1) * 0.2
		layer.Opacity = 0.1 + float64(i)*0.05
		layer.Shapes = make([]ParallaxShape, t.ParallaxShapes)
		for j := range layer.Shapes {
			layer.Shapes[j] = ParallaxShape{
				Pos:      Vec2{r.Float64() * vp.W, r.Float64() * vp.H},
				Size:     r.Float64()*100 + 50,
				Rotation: r.Float64() * math.Pi * 2,
			}
		}
	}
}

func (e *Engine) updateParallax() {
	vp := e.ctx.Viewport
	fill := parallaxFill
	fill.A = 26
	for i := range e.parallax {
		layer := &e.parallax[i]
		for j := range layer.Shapes {
			s := &layer.Shapes[j]
			s.Pos.X -= layer.Speed
			if s.Pos.X < -s.Size {
				s.Pos.X = vp.W + s.Size
			}
			e.frame.Add(Command{
				Layer:    Background,
				Shape:    ShapePolygon,
				Pos:      s.Pos,
				Rotation: s.Rotation,
				Points:   Square(s.Size),
				Fill:     fill,
				Alpha:    layer.Opacity,
			})
		}
	}
}

func (e *Engine) seedDust() {
	t := e.ctx.Tuning
	r := e.ctx.Rand
	n := t.DustCountNarrow
	if e.ctx.Viewport.W > config.WideViewport {
		n = t.DustCount
	}
	stagger := config.Frames(t.DustStaggerMillis)
	e.dust = make([]Dust, n)
	for i := range e.dust {
		e.dust[i] = Dust{
			X:     r.Float64() * 100,
			Y:     r.Float64() * 100,
			Size:  r.Float64()*4 + 2,
			Delay: i * stagger,
		}
	}
}

func (e *Engine) updateDust() {
	r := e.ctx.Rand
	vp := e.ctx.Viewport
	fill := dustFill
	fill.A = 204
	for i := range e.dust {
		d := &e.dust[i]
		d.Age++
		if d.Age < d.Delay {
			continue
		}
		d.X = wrap(d.X+r.Float64()*2-1, 100)
		d.Y = wrap(d.Y-r.Float64()*0.5, 100)
		e.frame.Add(Command{
			Layer:  Background,
			Shape:  ShapeGlow,
			Pos:    Vec2{d.X / 100 * vp.W, d.Y / 100 * vp.H},
			Radius: d.Size / 2,
			Fill:   fill,
			Alpha:  0.6,
		})
	}
}
