package fx

import (
	"image/color"
	"math"
)

// Layer is a drawing surface. Background is drawn below the login UI,
// Foreground above it and Overlay above everything.
type Layer int

const (
	Background Layer = iota
	Foreground
	Overlay
	layerCount
)

type Shape int

const (
	ShapeCircle  Shape = iota // filled disc of Radius
	ShapeGlow                 // radial falloff disc of Radius
	ShapePolygon              // filled polygon through Points
	ShapeRing                 // stroked circle of Radius and Width
	ShapeArc                  // stroked arc of Radius from Start sweeping Sweep radians
	ShapeText                 // Text anchored at Pos
)

// Command is one draw call. Points are in local space; the renderer places
// them with WorldPoints.
type Command struct {
	Layer    Layer
	Shape    Shape
	Pos      Vec2
	Rotation float64
	Scale    float64
	Radius   float64
	Width    float64
	Start    float64
	Sweep    float64
	Points   []Vec2
	Text     string
	Fill     color.RGBA
	Alpha    float64
}

// WorldPoints returns Points scaled, rotated and translated into viewport space.
func (c Command) WorldPoints() []Vec2 {
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	out := make([]Vec2, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Scale(scale).Rotate(c.Rotation).Add(c.Pos)
	}
	return out
}

// Color returns Fill with its alpha multiplied by Alpha.
func (c Command) Color() color.RGBA {
	a := clamp01(c.Alpha)
	return color.RGBA{
		R: c.Fill.R,
		G: c.Fill.G,
		B: c.Fill.B,
		A: uint8(math.Round(float64(c.Fill.A) * a)),
	}
}

// Frame collects the commands for one display refresh.
type Frame struct {
	layers [layerCount][]Command
}

// Clear empties every layer, keeping capacity.
func (f *Frame) Clear() {
	for i := range f.layers {
		f.layers[i] = f.layers[i][:0]
	}
}

func (f *Frame) Add(c Command) {
	if c.Layer < 0 || c.Layer >= layerCount {
		return
	}
	f.layers[c.Layer] = append(f.layers[c.Layer], c)
}

// Commands returns the commands queued on layer l in submission order.
func (f *Frame) Commands(l Layer) []Command {
	if l < 0 || l >= layerCount {
		return nil
	}
	return f.layers[l]
}

// Len is the total number of queued commands.
func (f *Frame) Len() int {
	n := 0
	for _, l := range f.layers {
		n += len(l)
	}
	return n
}

// Square returns the corner points of a size x size square centred on the origin.
func Square(size float64) []Vec2 {
	return RectPoints(size, size)
}

// RectPoints returns the corners of a w x h rectangle centred on the origin.
func RectPoints(w, h float64) []Vec2 {
	hw, hh := w/2, h/2
	return []Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
}

// Triangle returns an isosceles triangle with apex at (0,-size).
func Triangle(size float64) []Vec2 {
	return []Vec2{{0, -size}, {-size, size}, {size, size}}
}
