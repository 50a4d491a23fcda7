package fx

import (
	"image/color"
	"math"
)

type FloatingKind int

const (
	Cube FloatingKind = iota
	Sphere
	Pyramid
)

// Floating is a pseudo-3D décor shape that drifts for the whole session and
// bounces off the viewport edges and the depth limits.
type Floating struct {
	X, Y, Z       float64
	VX, VY, VZ    float64
	Size          float64
	Rotation      float64
	RotationSpeed float64
	Kind          FloatingKind
	Color         color.RGBA
}

func (e *Engine) seedFloating() {
	t := e.ctx.Tuning
	r := e.ctx.Rand
	vp := e.ctx.Viewport
	e.floating = make([]Floating, 0, t.FloatingCount)
	for i := 0; i < t.FloatingCount; i++ {
		e.floating = append(e.floating, Floating{
			X:             r.Float64() * vp.W,
			Y:             r.Float64() * vp.H,
			Z:             r.Float64() * t.DepthMax,
			VX:            (r.Float64() - 0.5) * 0.5,
			VY:            (r.Float64() - 0.5) * 0.5,
			VZ:            (r.Float64() - 0.5) * 2,
			Size:          r.Float64()*30 + 10,
			Rotation:      r.Float64() * math.Pi * 2,
			RotationSpeed: (r.Float64() - 0.5) * 0.05,
			Kind:          FloatingKind(r.Intn(3)),
			Color:         HSL(r.Float64()*60+200, 0.7, 0.5),
		})
	}
}

// step integrates one frame. A velocity component is reflected only while the
// record is outside a boundary and still heading away from it, so a crossing
// flips the sign exactly once.
func (f *Floating) step(vp Viewport, depth float64) {
	f.X += f.VX
	f.Y += f.VY
	f.Z += f.VZ
	f.Rotation += f.RotationSpeed

	f.VX = reflect(f.X, f.VX, 0, vp.W)
	f.VY = reflect(f.Y, f.VY, 0, vp.H)
	f.VZ = reflect(f.Z, f.VZ, 0, depth)
}

func reflect(pos, vel, lo, hi float64) float64 {
	if (pos < lo && vel < 0) || (pos > hi && vel > 0) {
		return -vel
	}
	return vel
}

// project maps depth to a perspective scale around the viewport centre.
func (f *Floating) project(vp Viewport, depth float64) (pos Vec2, scale float64) {
	scale = depth / (depth + f.Z)
	pos = Vec2{
		X: f.X*scale + vp.W*(1-scale)/2,
		Y: f.Y*scale + vp.H*(1-scale)/2,
	}
	return pos, scale
}

func (f *Floating) command(vp Viewport, depth, alpha float64) Command {
	pos, scale := f.project(vp, depth)
	size := f.Size * scale
	c := Command{
		Layer:    Background,
		Pos:      pos,
		Rotation: f.Rotation,
		Fill:     f.Color,
		Alpha:    scale * alpha,
	}
	switch f.Kind {
	case Cube:
		c.Shape = ShapePolygon
		c.Points = Square(size)
	case Sphere:
		c.Shape = ShapeGlow
		c.Radius = size
	default:
		c.Shape = ShapePolygon
		c.Points = Triangle(size)
	}
	return c
}

func (e *Engine) updateFloating() {
	t := e.ctx.Tuning
	vp := e.ctx.Viewport
	for i := range e.floating {
		f := &e.floating[i]
		f.step(vp, t.DepthMax)
		e.frame.Add(f.command(vp, t.DepthMax, t.FloatingAlpha))
	}
}
