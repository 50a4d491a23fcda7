package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/crymson-fx/internal/fx"
	"github.com/iburimskiy/crymson-fx/internal/render"
	"github.com/iburimskiy/crymson-fx/internal/theme"
)

var (
	bgTop      = color.RGBA{R: 13, G: 20, B: 38, A: 255}
	bgMid      = color.RGBA{R: 29, G: 42, B: 74, A: 255}
	bgBottom   = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	cardFill   = color.RGBA{R: 18, G: 26, B: 46, A: 215}
	fieldFill  = color.RGBA{R: 12, G: 18, B: 34, A: 255}
	fieldEdge  = color.RGBA{R: 60, G: 70, B: 95, A: 255}
	ghostHot   = color.RGBA{R: 255, G: 0, B: 80, A: 255}
	ghostCool  = color.RGBA{R: 0, G: 255, B: 220, A: 255}
	softWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	panelWhite = color.RGBA{R: 255, G: 255, B: 255, A: 26}
)

// DebugPrint glyph cell
const (
	glyphW = 6
	glyphH = 16
)

func (g *Game) Draw(screen *ebiten.Image) {
	pal := g.theme.Palette()
	frame := g.engine.Frame()

	g.drawBackground(screen)
	render.Replay(screen, frame.Commands(fx.Background))

	if name := g.form.SignedIn(); name != "" {
		g.drawWelcomePage(screen, name, pal)
	} else {
		g.drawLogin(screen, pal)
	}

	render.Replay(screen, frame.Commands(fx.Foreground))
	render.Replay(screen, frame.Commands(fx.Overlay))

	// the spinner is not animated under reduced motion
	if g.form.Pending() && g.engine.ReducedMotion() {
		textAt(screen, "Signing in...", float64(g.width)/2, float64(g.height)/2)
	}
	g.drawSignup(screen, pal)

	ebitenutil.DebugPrintAt(screen, g.status(), 12, g.height-glyphH-4)
}

func (g *Game) status() string {
	parts := []string{"Tab: next field", "Enter: sign in", "Esc: quit"}
	if g.host.Connected() {
		parts = append(parts, "host: connected")
	} else {
		parts = append(parts, "host: offline")
	}
	if g.engine.ReducedMotion() {
		parts = append(parts, "reduced motion")
	}
	return strings.Join(parts, " | ")
}

// drawBackground paints the vertical three-stop gradient in 2 px bands. The
// stops drift slowly with the frame count.
func (g *Game) drawBackground(screen *ebiten.Image) {
	h := float64(g.height)
	drift := 0.03 * math.Sin(float64(g.engine.Frames())*0.005)
	for y := 0; y < g.height; y += 2 {
		t := float64(y)/h + drift
		var c color.RGBA
		if t < 0.5 {
			c = mix(bgTop, bgMid, t*2)
		} else {
			c = mix(bgMid, bgBottom, (t-0.5)*2)
		}
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), 2, c, false)
	}
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	l := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

func textAt(dst *ebiten.Image, s string, cx, cy float64) {
	ebitenutil.DebugPrintAt(dst, s, int(cx)-len(s)*glyphW/2, int(cy)-glyphH/2)
}

// box returns the element's rectangle transformed by its current style,
// grown by pad on each side.
func box(el *fx.Element, pad float64, fill color.RGBA, alpha float64) fx.Command {
	st := el.Style
	return fx.Command{
		Shape:    fx.ShapePolygon,
		Pos:      el.Bounds.Center().Add(st.Offset),
		Rotation: st.Rotation,
		Scale:    st.Scale,
		Points:   fx.RectPoints((el.Bounds.W+2*pad)*st.FlipX, el.Bounds.H+2*pad),
		Fill:     fill,
		Alpha:    st.Alpha * alpha,
	}
}

func drawBox(dst *ebiten.Image, el *fx.Element, pad float64, fill color.RGBA, alpha float64) {
	c := box(el, pad, fill, alpha)
	render.Draw(dst, &c)
}

// label draws text at the element's styled centre. DebugPrint has no alpha,
// so text appears halfway through a fade.
func label(dst *ebiten.Image, el *fx.Element, s string, dx float64) {
	if el.Style.Alpha < 0.5 {
		return
	}
	c := el.Bounds.Center().Add(el.Style.Offset)
	textAt(dst, s, c.X+dx, c.Y)
}

func (g *Game) drawLogin(screen *ebiten.Image, pal theme.Palette) {
	for _, el := range g.scene.elements {
		switch el.Kind {
		case fx.KindShell:
			b := el.Bounds
			o := el.Style.Offset
			vector.StrokeRect(screen, float32(b.X+o.X), float32(b.Y+o.Y), float32(b.W), float32(b.H), 1,
				color.RGBA{R: 255, G: 255, B: 255, A: uint8(20 * el.Style.Alpha)}, false)
		case fx.KindNav:
			g.drawNav(screen, el, pal)
		case fx.KindCard:
			drawBox(screen, el, 1, pal.Border, 0.35)
			drawBox(screen, el, 0, cardFill, 1)
		case fx.KindHeading:
			g.drawHeading(screen, el, pal)
		case fx.KindField:
			g.drawField(screen, el, pal)
		case fx.KindCheckbox:
			g.drawCheckbox(screen, el, pal)
		case fx.KindToggle:
			g.drawToggle(screen, el, pal)
		case fx.KindPrimary:
			fill := pal.Button
			if g.isHovered(el.ID) {
				fill = pal.ButtonHover
			}
			drawBox(screen, el, 0, fill, 1)
			label(screen, el, el.Label, 0)
		case fx.KindButton:
			drawBox(screen, el, 1, pal.Border, 1)
			drawBox(screen, el, 0, cardFill, 1)
			label(screen, el, el.Label, 0)
		}
	}
}

func (g *Game) drawNav(screen *ebiten.Image, el *fx.Element, pal theme.Palette) {
	if g.isHovered(el.ID) {
		drawBox(screen, el, 0, panelWhite, 1)
	}
	label(screen, el, el.Label, 0)
	if el.ID == idNavLogin {
		b := el.Bounds
		o := el.Style.Offset
		vector.DrawFilledRect(screen, float32(b.X+o.X+12), float32(b.Y+b.H-2+o.Y), float32(b.W-24), 2, pal.Accent, false)
	}
}

func (g *Game) drawHeading(screen *ebiten.Image, el *fx.Element, pal theme.Palette) {
	st := el.Style
	c := el.Bounds.Center().Add(st.Offset)
	w := float64(len(el.Label) * glyphW)
	if g.sound != nil {
		if lvl := math.Min(1, g.sound.Level()*4); lvl > 0.01 {
			drawBox(screen, el, 6, pal.Accent, 0.3*lvl)
		}
	}
	for i := 0; i < st.Ghosts; i++ {
		clr := []color.RGBA{ghostHot, ghostCool, pal.Accent}[i%3]
		dx := float64([]int{-2, 2, 1}[i%3])
		dy := float64([]int{1, -1, 2}[i%3])
		clr.A = 128
		vector.DrawFilledRect(screen, float32(c.X-w/2+dx), float32(c.Y-glyphH/2+dy), float32(w), glyphH, clr, false)
	}
	label(screen, el, el.Label, 0)
}

func (g *Game) drawField(screen *ebiten.Image, el *fx.Element, pal theme.Palette) {
	if el.Style.Glow > 0 {
		drawBox(screen, el, 8, pal.Accent, 0.35*el.Style.Glow)
	}
	edge := fieldEdge
	if g.focused == el.ID {
		edge = pal.Accent
	}
	drawBox(screen, el, 2, edge, 1)
	drawBox(screen, el, 0, fieldFill, 1)

	if el.Style.Alpha < 0.5 {
		return
	}
	value := *g.fieldValue(el.ID)
	text := value
	if el.ID == idPass {
		text = strings.Repeat("*", len([]rune(value)))
	}
	if text == "" && g.focused != el.ID {
		text = el.Label
	}
	o := el.Style.Offset
	x := int(el.Bounds.X + o.X + 10)
	y := int(el.Bounds.Center().Y + o.Y - glyphH/2)
	ebitenutil.DebugPrintAt(screen, text, x, y)

	if g.focused == el.ID && (g.ticks/30)%2 == 0 {
		cx := float32(x + len([]rune(text))*glyphW + 1)
		vector.StrokeLine(screen, cx, float32(y+2), cx, float32(y+glyphH-2), 1, softWhite, false)
	}
}

func (g *Game) drawCheckbox(screen *ebiten.Image, el *fx.Element, pal theme.Palette) {
	drawBox(screen, el, 1, pal.Border, 1)
	drawBox(screen, el, 0, fieldFill, 1)
	if g.form.Remember {
		drawBox(screen, el, -4, pal.Accent, 1)
	}
	if el.Style.Alpha >= 0.5 {
		o := el.Style.Offset
		ebitenutil.DebugPrintAt(screen, el.Label, int(el.Bounds.X+el.Bounds.W+8+o.X), int(el.Bounds.Center().Y+o.Y-glyphH/2))
	}
}

func (g *Game) drawToggle(screen *ebiten.Image, el *fx.Element, pal theme.Palette) {
	drawBox(screen, el, 1, pal.Border, 1)
	drawBox(screen, el, 0, fieldFill, 1)

	st := el.Style
	c := el.Bounds.Center().Add(st.Offset)
	knob := el.Bounds.H/2 - 3
	side := -1.0
	if g.theme.Current() == theme.Gold {
		side = 1
	}
	x := c.X + side*(el.Bounds.W/2-knob-3)*st.FlipX
	vector.DrawFilledCircle(screen, float32(x), float32(c.Y), float32(knob*st.Scale), pal.Accent, true)

	if st.Alpha >= 0.5 {
		ebitenutil.DebugPrintAt(screen, el.Label, int(el.Bounds.X+st.Offset.X)-len(el.Label)*glyphW-8, int(c.Y)-glyphH/2)
	}
}

func (g *Game) drawWelcomePage(screen *ebiten.Image, name string, pal theme.Palette) {
	cx, cy := float64(g.width)/2, float64(g.height)/2
	vector.DrawFilledRect(screen, float32(cx-220), float32(cy-90), 440, 180, cardFill, false)
	vector.StrokeRect(screen, float32(cx-220), float32(cy-90), 440, 180, 1, pal.Border, false)
	textAt(screen, fmt.Sprintf("Welcome, %s!", name), cx, cy-60)

	if !g.tracker.Enabled() {
		textAt(screen, "Activity tracking is off", cx, cy)
		return
	}
	recent := g.tracker.Activities()
	if len(recent) > 4 {
		recent = recent[:4]
	}
	for i, a := range recent {
		textAt(screen, a.Title, cx, cy-24+float64(i)*20)
	}
}

func (g *Game) drawSignup(screen *ebiten.Image, pal theme.Palette) {
	s := g.signup
	if !s.visible() {
		return
	}
	a := s.alpha
	veil := bgTop
	veil.A = uint8(245 * a)
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), veil, false)

	join := pal.GradientStart
	join.A = uint8(255 * a)
	vector.DrawFilledRect(screen, float32(s.joinBtn.X), float32(s.joinBtn.Y), float32(s.joinBtn.W), float32(s.joinBtn.H), join, false)

	ring := softWhite
	ring.A = uint8(77 * a)
	cb := s.closeBtn.Center()
	vector.StrokeCircle(screen, float32(cb.X), float32(cb.Y), float32(s.closeBtn.W/2), 2, ring, true)

	if a < 0.5 {
		return
	}
	cx := s.content.Center().X
	textAt(screen, "Create Your Account", cx, s.content.Y+20)
	textAt(screen, "Press sign up and make your account with your key", cx, s.content.Y+70)
	textAt(screen, "to unlock premium features", cx, s.content.Y+90)
	jc := s.joinBtn.Center()
	textAt(screen, "Sign up", jc.X, jc.Y)
	textAt(screen, "x", cb.X, cb.Y)
}
