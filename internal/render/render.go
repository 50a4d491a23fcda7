// Package render draws fx command lists onto ebiten images.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/crymson-fx/internal/fx"
)

const (
	glowRings   = 6
	arcSegments = 12
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Replay draws every command in order.
func Replay(dst *ebiten.Image, cmds []fx.Command) {
	for i := range cmds {
		Draw(dst, &cmds[i])
	}
}

// Draw issues a single command. Commands that would be invisible are skipped.
func Draw(dst *ebiten.Image, c *fx.Command) {
	clr := c.Color()
	if clr.A == 0 {
		return
	}
	x, y := float32(c.Pos.X), float32(c.Pos.Y)

	switch c.Shape {
	case fx.ShapeCircle:
		if c.Radius <= 0 {
			return
		}
		vector.DrawFilledCircle(dst, x, y, float32(c.Radius), clr, true)
	case fx.ShapeGlow:
		drawGlow(dst, x, y, c.Radius, clr)
	case fx.ShapePolygon:
		Polygon(dst, c.WorldPoints(), clr)
	case fx.ShapeRing:
		vector.StrokeCircle(dst, x, y, float32(c.Radius), float32(c.Width), clr, true)
	case fx.ShapeArc:
		pts := ArcPoints(c.Pos, c.Radius, c.Start, c.Sweep, arcSegments)
		for i := 1; i < len(pts); i++ {
			vector.StrokeLine(dst, float32(pts[i-1].X), float32(pts[i-1].Y), float32(pts[i].X), float32(pts[i].Y), float32(c.Width), clr, true)
		}
	case fx.ShapeText:
		// DebugPrint glyphs are 6x16
		ebitenutil.DebugPrintAt(dst, c.Text, int(c.Pos.X)-len(c.Text)*3, int(c.Pos.Y)-8)
	}
}

// drawGlow approximates a radial gradient with stacked translucent discs.
func drawGlow(dst *ebiten.Image, x, y float32, radius float64, clr color.RGBA) {
	if radius <= 0 {
		return
	}
	ring := clr
	ring.A = uint8(math.Max(1, float64(clr.A)/glowRings))
	for i := 0; i < glowRings; i++ {
		r := radius * (1 - float64(i)/glowRings)
		vector.DrawFilledCircle(dst, x, y, float32(r), ring, true)
	}
}

// Polygon fills a convex or star-shaped outline as a triangle fan.
func Polygon(dst *ebiten.Image, pts []fx.Vec2, clr color.RGBA) {
	vs, is := PolygonVertices(pts, clr)
	if len(is) == 0 {
		return
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// PolygonVertices builds a triangle fan around the centroid of pts.
func PolygonVertices(pts []fx.Vec2, clr color.RGBA) ([]ebiten.Vertex, []uint16) {
	if len(pts) < 3 {
		return nil, nil
	}
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, vertex(cx, cy))
	for _, p := range pts {
		vs = append(vs, vertex(p.X, p.Y))
	}
	is := make([]uint16, 0, len(pts)*3)
	for i := 0; i < len(pts); i++ {
		next := (i+1)%len(pts) + 1
		is = append(is, 0, uint16(i+1), uint16(next))
	}
	return vs, is
}

// ArcPoints samples an arc of radius around centre into n segments.
func ArcPoints(centre fx.Vec2, radius, start, sweep float64, n int) []fx.Vec2 {
	if n < 1 {
		n = 1
	}
	out := make([]fx.Vec2, n+1)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		out[i] = fx.Vec2{X: centre.X + math.Cos(a)*radius, Y: centre.Y + math.Sin(a)*radius}
	}
	return out
}
