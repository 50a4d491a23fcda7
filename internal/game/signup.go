package game

import (
	"github.com/iburimskiy/crymson-fx/internal/config"
	"github.com/iburimskiy/crymson-fx/internal/fx"
)

const (
	signupFadeInMillis  = 500
	signupFadeOutMillis = 300
)

type signupAction int

const (
	signupNone signupAction = iota
	signupClosed
	signupJoin
)

// signup is the fullscreen "create your account" overlay.
type signup struct {
	open    bool
	closing bool
	alpha   float64
	instant bool

	closeBtn fx.Rect
	joinBtn  fx.Rect
	content  fx.Rect
}

func (s *signup) layout(vp fx.Viewport) {
	s.closeBtn = fx.Rect{X: vp.W - 70, Y: 30, W: 40, H: 40}
	s.content = fx.Rect{X: vp.W/2 - 300, Y: vp.H/2 - 110, W: 600, H: 220}
	s.joinBtn = fx.Rect{X: vp.W/2 - 110, Y: s.content.Y + s.content.H - 56, W: 220, H: 56}
}

func (s *signup) show() {
	s.open = true
	s.closing = false
	if s.instant {
		s.alpha = 1
	}
}

func (s *signup) hide() {
	if !s.open {
		return
	}
	s.closing = true
	if s.instant {
		s.open, s.closing, s.alpha = false, false, 0
	}
}

// visible reports whether the overlay is drawn and captures input.
func (s *signup) visible() bool { return s.open }

func (s *signup) step() {
	if !s.open {
		return
	}
	if s.closing {
		s.alpha -= 1 / float64(config.Frames(signupFadeOutMillis))
		if s.alpha <= 0 {
			s.open, s.closing, s.alpha = false, false, 0
		}
		return
	}
	if s.alpha < 1 {
		s.alpha = min(1, s.alpha+1/float64(config.Frames(signupFadeInMillis)))
	}
}

// click handles a pointer release while the overlay is open. Clicks outside
// the content close it.
func (s *signup) click(x, y float64) signupAction {
	if s.closing {
		return signupNone
	}
	switch {
	case s.closeBtn.Contains(x, y):
		s.hide()
		return signupClosed
	case s.joinBtn.Contains(x, y):
		s.hide()
		return signupJoin
	case !s.content.Contains(x, y):
		s.hide()
		return signupClosed
	}
	return signupNone
}
