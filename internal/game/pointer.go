package game

import (
	"errors"
	"log"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/crymson-fx/internal/fx"
	"github.com/iburimskiy/crymson-fx/internal/input"
	"github.com/iburimskiy/crymson-fx/internal/session"
)

const currentPage = "login"

// frameInput is one frame of raw input, read from ebiten in Update.
type frameInput struct {
	X, Y     float64
	Pressed  bool
	Released bool
	Chars    []rune

	Backspace bool
	Enter     bool
	Tab       bool
	Escape    bool
	Quit      bool
}

func (g *Game) readInput() frameInput {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	x, y := ebiten.CursorPosition()
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	bs := inpututil.KeyPressDuration(ebiten.KeyBackspace)

	return frameInput{
		X:         float64(x),
		Y:         float64(y),
		Pressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released:  inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Chars:     g.chars,
		Backspace: bs == 1 || (bs >= 30 && bs%3 == 0),
		Enter:     justPressed(ebiten.KeyEnter) || justPressed(ebiten.KeyNumpadEnter),
		Tab:       justPressed(ebiten.KeyTab),
		Escape:    justPressed(ebiten.KeyEscape),
		Quit:      justPressed(ebiten.KeyQ),
	}
}

// handle applies one frame of input. It returns ebiten.Termination when the
// user quits.
func (g *Game) handle(in frameInput) error {
	if g.signup.visible() {
		g.handleSignup(in)
		return nil
	}
	if in.Escape {
		if g.focused != "" {
			g.blur()
			return nil
		}
		return ebiten.Termination
	}
	if in.Quit && g.focused == "" {
		return ebiten.Termination
	}
	if g.engine.Transitioning() || g.form.SignedIn() != "" {
		return nil
	}

	if in.X != g.pointer.X || in.Y != g.pointer.Y {
		g.pointer = fx.Vec2{X: in.X, Y: in.Y}
		g.disp.Dispatch(input.Event{Kind: input.PointerMove, X: in.X, Y: in.Y})
		g.updateHover(in.X, in.Y)
	}

	if in.Pressed {
		g.pressed = g.scene.top(in.X, in.Y)
		if el := g.scene.element(g.pressed); el != nil && el.Kind == fx.KindField {
			g.focus(g.pressed)
		} else if g.focused != "" {
			g.blur()
		}
	}
	if in.Released {
		if target := g.scene.top(in.X, in.Y); target != "" && target == g.pressed {
			g.click(target, in.X, in.Y)
		}
		g.pressed = ""
	}

	g.handleKeys(in)
	return nil
}

// updateHover sends Leave for elements the pointer left and Enter for the
// ones it entered. Nested elements are hovered together.
func (g *Game) updateHover(x, y float64) {
	now := g.scene.hits(x, y)
	for _, id := range g.hovered {
		if !slices.Contains(now, id) {
			g.disp.Dispatch(input.Event{Kind: input.Leave, X: x, Y: y, Target: id})
		}
	}
	for _, id := range now {
		if !slices.Contains(g.hovered, id) {
			g.disp.Dispatch(input.Event{Kind: input.Enter, X: x, Y: y, Target: id})
		}
	}
	g.hovered = now
}

func (g *Game) isHovered(id string) bool { return slices.Contains(g.hovered, id) }

func (g *Game) click(id string, x, y float64) {
	g.disp.Dispatch(input.Event{Kind: input.Click, X: x, Y: y, Target: id})

	el := g.scene.element(id)
	switch el.Kind {
	case fx.KindButton, fx.KindPrimary, fx.KindNav:
		g.tracker.Click(el.Label, currentPage, el.Kind == fx.KindPrimary)
	}

	switch id {
	case idLogin:
		g.submit()
	case idRemember:
		g.form.Remember = !g.form.Remember
	case idTheme:
		g.theme.Toggle()
	case idSignup, idNavJoin:
		g.openSignup()
	}
}

func (g *Game) openSignup() {
	if g.focused != "" {
		g.blur()
	}
	for _, id := range g.hovered {
		g.disp.Dispatch(input.Event{Kind: input.Leave, Target: id})
	}
	g.hovered = nil
	g.signup.show()
}

func (g *Game) focus(id string) {
	if g.focused == id {
		return
	}
	if g.focused != "" {
		g.blur()
	}
	g.focused = id
	g.disp.Dispatch(input.Event{Kind: input.Focus, Target: id})
}

func (g *Game) blur() {
	g.disp.Dispatch(input.Event{Kind: input.Blur, Target: g.focused})
	g.focused = ""
}

// fieldValue maps a field id to the form string it edits.
func (g *Game) fieldValue(id string) *string {
	switch id {
	case idUser:
		return &g.form.Username
	case idPass:
		return &g.form.Password
	}
	return nil
}

func (g *Game) handleKeys(in frameInput) {
	value := g.fieldValue(g.focused)
	if value == nil {
		return
	}
	for _, r := range in.Chars {
		if !unicode.IsPrint(r) {
			continue
		}
		*value += string(r)
		g.disp.Dispatch(input.Event{Kind: input.TextInput, Target: g.focused, Rune: r})
	}
	if in.Backspace && *value != "" {
		_, size := utf8.DecodeLastRuneInString(*value)
		*value = (*value)[:len(*value)-size]
		g.disp.Dispatch(input.Event{Kind: input.KeyPress, Target: g.focused, Key: "Backspace"})
	}
	if in.Tab {
		g.disp.Dispatch(input.Event{Kind: input.KeyPress, Target: g.focused, Key: "Tab"})
		if g.focused == idUser {
			g.focus(idPass)
		} else {
			g.focus(idUser)
		}
	}
	if in.Enter {
		g.disp.Dispatch(input.Event{Kind: input.KeyPress, Target: g.focused, Key: "Enter"})
		g.submit()
	}
}

func (g *Game) submit() {
	err := g.form.Submit()
	if err != nil && !errors.Is(err, session.ErrMissingCredentials) {
		log.Printf("[Game] Login not sent: %v", err)
	}
}

func (g *Game) handleSignup(in frameInput) {
	if in.Escape {
		g.signup.hide()
		return
	}
	if !in.Released {
		return
	}
	if g.signup.click(in.X, in.Y) == signupJoin {
		g.tracker.Navigate("signup")
	}
}
