package game

import (
	"github.com/iburimskiy/crymson-fx/internal/config"
	"github.com/iburimskiy/crymson-fx/internal/fx"
)

// Element ids on the login screen.
const (
	idShell    = "shell"
	idNavLogin = "nav-login"
	idNavJoin  = "nav-signup"
	idCard     = "card"
	idTitle    = "title"
	idUser     = "user"
	idPass     = "pass"
	idRemember = "remember"
	idTheme    = "theme"
	idLogin    = "login"
	idSignup   = "signup"
)

// scene is the login screen's element tree. Elements are listed back to
// front; hit testing walks the list in reverse.
type scene struct {
	elements []*fx.Element
	byID     map[string]*fx.Element
}

func newScene() *scene {
	s := &scene{byID: map[string]*fx.Element{}}
	add := func(id string, kind fx.ElementKind, label string) {
		el := &fx.Element{ID: id, Kind: kind, Label: label}
		s.elements = append(s.elements, el)
		s.byID[id] = el
	}
	add(idShell, fx.KindShell, "")
	add(idNavLogin, fx.KindNav, "Sign in")
	add(idNavJoin, fx.KindNav, "Sign up")
	add(idCard, fx.KindCard, "")
	add(idTitle, fx.KindHeading, "CRYMSON")
	add(idUser, fx.KindField, "Username")
	add(idPass, fx.KindField, "Password")
	add(idRemember, fx.KindCheckbox, "Remember me")
	add(idTheme, fx.KindToggle, "Gold accent")
	add(idLogin, fx.KindPrimary, "Sign in")
	add(idSignup, fx.KindButton, "Create account")
	return s
}

func (s *scene) element(id string) *fx.Element { return s.byID[id] }

// layout positions every element for the viewport. The card is centred; the
// nav sits top-left.
func (s *scene) layout(vp fx.Viewport) {
	const (
		margin  = 24
		navGap  = 12
		rowGap  = 14
		padding = 40
	)
	s.byID[idShell].Bounds = fx.Rect{X: margin, Y: margin, W: vp.W - 2*margin, H: vp.H - 2*margin}

	x := float64(margin + 16)
	for _, id := range []string{idNavLogin, idNavJoin} {
		s.byID[id].Bounds = fx.Rect{X: x, Y: margin + 12, W: config.NavWidth, H: config.NavHeight}
		x += config.NavWidth + navGap
	}

	card := fx.Rect{
		X: (vp.W - config.CardWidth) / 2,
		Y: (vp.H - config.CardHeight) / 2,
		W: config.CardWidth,
		H: config.CardHeight,
	}
	s.byID[idCard].Bounds = card

	left := card.X + (card.W-config.FieldWidth)/2
	y := card.Y + padding
	s.byID[idTitle].Bounds = fx.Rect{X: left, Y: y, W: config.FieldWidth, H: 24}
	y += 24 + 2*rowGap
	s.byID[idUser].Bounds = fx.Rect{X: left, Y: y, W: config.FieldWidth, H: config.FieldHeight}
	y += config.FieldHeight + rowGap
	s.byID[idPass].Bounds = fx.Rect{X: left, Y: y, W: config.FieldWidth, H: config.FieldHeight}
	y += config.FieldHeight + rowGap
	s.byID[idRemember].Bounds = fx.Rect{X: left, Y: y, W: 16, H: 16}
	s.byID[idTheme].Bounds = fx.Rect{X: left + config.FieldWidth - 44, Y: y - 3, W: 44, H: 22}
	y += 16 + 2*rowGap
	s.byID[idLogin].Bounds = fx.Rect{X: left, Y: y, W: config.ButtonWidth, H: config.ButtonHeight}
	y += config.ButtonHeight + rowGap
	s.byID[idSignup].Bounds = fx.Rect{X: left, Y: y, W: config.ButtonWidth, H: config.ButtonHeight}
}

// interactive reports whether pointer hover and clicks are tracked for el.
func interactive(el *fx.Element) bool {
	return el.Kind != fx.KindShell
}

// hits returns the ids of every interactive element under (x, y), topmost
// first.
func (s *scene) hits(x, y float64) []string {
	var out []string
	for i := len(s.elements) - 1; i >= 0; i-- {
		el := s.elements[i]
		if interactive(el) && el.Bounds.Contains(x, y) {
			out = append(out, el.ID)
		}
	}
	return out
}

// top returns the topmost interactive element under (x, y), or "".
func (s *scene) top(x, y float64) string {
	if ids := s.hits(x, y); len(ids) > 0 {
		return ids[0]
	}
	return ""
}
