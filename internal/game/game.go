// Package game is the ebiten front end of the login screen. It owns the
// element tree and the form state, turns raw ebiten input into interaction
// events, and draws the engine's command lists around the UI.
package game

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/crymson-fx/internal/config"
	"github.com/iburimskiy/crymson-fx/internal/fx"
	"github.com/iburimskiy/crymson-fx/internal/host"
	"github.com/iburimskiy/crymson-fx/internal/input"
	"github.com/iburimskiy/crymson-fx/internal/session"
	"github.com/iburimskiy/crymson-fx/internal/sound"
	"github.com/iburimskiy/crymson-fx/internal/storage"
	"github.com/iburimskiy/crymson-fx/internal/theme"
)

// Deps is what main wires into the game. Host, Sound, Alert and Rand may be
// nil.
type Deps struct {
	Env    config.Env
	Tuning *config.Tuning
	Store  *storage.Store
	Host   host.Bridge
	Sound  *sound.Player
	Alert  session.Alerter
	Rand   *rand.Rand
}

type Game struct {
	engine *fx.Engine
	sched  *fx.Scheduler
	disp   *input.Dispatcher

	store   *storage.Store
	host    host.Bridge
	sound   *sound.Player
	theme   *theme.Manager
	form    *session.Form
	tracker *session.Tracker

	scene  *scene
	signup *signup

	// input state
	pointer fx.Vec2
	hovered []string
	pressed string
	focused string
	prevKey map[ebiten.Key]bool
	chars   []rune

	width, height int
	ticks         uint64
}

func New(d Deps) *Game {
	if d.Host == nil {
		d.Host = host.NewOffline()
	}
	if d.Store == nil {
		d.Store = storage.New(nil)
	}
	vp := fx.Viewport{W: config.WindowWidth, H: config.WindowHeight}
	ctx := fx.Context{
		ReducedMotion: d.Env.ReducedMotion,
		Viewport:      vp,
		Tuning:        d.Tuning,
		Rand:          d.Rand,
	}
	if d.Sound != nil {
		ctx.Cues = d.Sound
	}

	g := &Game{
		engine:  fx.NewEngine(ctx),
		sched:   fx.NewScheduler(),
		disp:    input.NewDispatcher(),
		store:   d.Store,
		host:    d.Host,
		sound:   d.Sound,
		scene:   newScene(),
		signup:  &signup{instant: d.Env.ReducedMotion},
		prevKey: map[ebiten.Key]bool{},
		width:   config.WindowWidth,
		height:  config.WindowHeight,
	}
	g.engine.Attach(g.disp)
	g.engine.Start(g.sched)

	g.scene.layout(vp)
	g.signup.layout(vp)
	g.engine.Decorate(g.scene.elements...)

	g.theme = theme.NewManager(d.Store, d.Host)
	g.applyAccent(g.theme.Current())
	g.theme.OnApplied(g.applyAccent)

	g.tracker = session.NewTracker(d.Store)
	g.form = session.NewForm(session.FormConfig{
		UserFieldID: idUser,
		PassFieldID: idPass,
		Store:       d.Store,
		Host:        d.Host,
		Effects:     g.engine,
		Alert:       d.Alert,
		OnWelcomed:  g.onWelcomed,
	})

	// the login screen is always dark
	if err := d.Store.Set(config.KeyTheme, "dark"); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
	return g
}

func (g *Game) applyAccent(n theme.Name) {
	p := theme.PaletteFor(n)
	g.engine.SetAccent(p.Accent, p.Secondary)
}

func (g *Game) onWelcomed(name string) {
	g.tracker.Navigate("welcome")
	log.Printf("[Game] Signed in as %s", name)
}

func (g *Game) Update() error {
	g.drainHost()
	if err := g.handle(g.readInput()); err != nil {
		return err
	}
	g.signup.step()
	g.sched.Tick()
	g.ticks++
	return nil
}

// drainHost applies every message the bridge delivered since the last frame,
// then gives up on a pending login if the bridge dropped.
func (g *Game) drainHost() {
	inbox := g.host.Inbox()
	for {
		select {
		case msg := <-inbox:
			g.handleHost(msg)
		default:
			if g.form.Pending() && !g.host.Connected() {
				g.form.HostLost()
			}
			return
		}
	}
}

func (g *Game) handleHost(msg host.Message) {
	switch {
	case g.theme.HandleHost(msg):
	case g.form.HandleHost(msg):
		if msg.Type == host.TypeLoginSuccess && g.sound != nil {
			g.sound.Chime()
		}
	default:
		log.Printf("[Game] Ignoring host message %q", msg.Type)
	}
}

// Layout follows the window size so the décor and the card track resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func (g *Game) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g.width, g.height = w, h
	vp := fx.Viewport{W: float64(w), H: float64(h)}
	g.engine.Resize(vp.W, vp.H)
	g.scene.layout(vp)
	g.signup.layout(vp)
}
