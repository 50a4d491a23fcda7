// Package theme holds the accent palettes and switches between them.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/iburimskiy/crymson-fx/internal/config"
	"github.com/iburimskiy/crymson-fx/internal/host"
	"github.com/iburimskiy/crymson-fx/internal/storage"
)

type Name string

const (
	Blue Name = "blue"
	Gold Name = "gold"
)

var ErrUnknownTheme = errors.New("theme: unknown theme")

func (n Name) Valid() bool { return n == Blue || n == Gold }

// Other returns the theme Toggle switches to.
func (n Name) Other() Name {
	if n == Gold {
		return Blue
	}
	return Gold
}

type Palette struct {
	Accent        color.RGBA
	Secondary     color.RGBA
	Hover         color.RGBA
	Border        color.RGBA
	Button        color.RGBA
	ButtonHover   color.RGBA
	Success       color.RGBA
	GradientStart color.RGBA
	GradientEnd   color.RGBA
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

var palettes = map[Name]Palette{
	Blue: {
		Accent:        rgb(0x3d73ff),
		Secondary:     rgb(0x6dd8ff),
		Hover:         rgb(0x5a8fff),
		Border:        rgb(0x3d73ff),
		Button:        rgb(0x3d73ff),
		ButtonHover:   rgb(0x5a8fff),
		Success:       rgb(0x48bb78),
		GradientStart: rgb(0x3d73ff),
		GradientEnd:   rgb(0x6dd8ff),
	},
	Gold: {
		Accent:        rgb(0xffd700),
		Secondary:     rgb(0xd4af37),
		Hover:         rgb(0xffed4e),
		Border:        rgb(0xd4af37),
		Button:        rgb(0xd4af37),
		ButtonHover:   rgb(0xffd700),
		Success:       rgb(0xffd700),
		GradientStart: rgb(0xd4af37),
		GradientEnd:   rgb(0xffd700),
	},
}

// PaletteFor returns the palette of n, or the blue palette for unknown names.
func PaletteFor(n Name) Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[Blue]
}

// Manager tracks the active theme. Toggle asks the host first so the host
// stays the source of truth when one is connected.
type Manager struct {
	store     *storage.Store
	host      host.Sender
	current   Name
	listeners []func(Name)
}

// NewManager restores the persisted theme, defaulting to blue. sender may be
// nil.
func NewManager(store *storage.Store, sender host.Sender) *Manager {
	m := &Manager{store: store, host: sender, current: Blue}
	if v, ok := store.Get(config.KeyAccentTheme); ok && Name(v).Valid() {
		m.current = Name(v)
	}
	m.persist()
	return m
}

func (m *Manager) Current() Name { return m.current }

func (m *Manager) Palette() Palette { return PaletteFor(m.current) }

// OnApplied registers fn to run after every Apply.
func (m *Manager) OnApplied(fn func(Name)) {
	m.listeners = append(m.listeners, fn)
}

// Apply makes n current, persists it and notifies listeners.
func (m *Manager) Apply(n Name) error {
	if !n.Valid() {
		return fmt.Errorf("apply %q: %w", n, ErrUnknownTheme)
	}
	m.current = n
	m.persist()
	for _, fn := range m.listeners {
		fn(n)
	}
	log.Printf("[Theme] Applied theme: %s", n)
	return nil
}

func (m *Manager) persist() {
	if err := m.store.Set(config.KeyAccentTheme, string(m.current)); err != nil {
		log.Printf("[Theme] Warning: failed to save theme: %v", err)
	}
}

// Toggle requests the other theme from the host. Without a host, or when the
// request cannot be sent, the other theme is applied locally.
func (m *Manager) Toggle() {
	next := m.current.Other()
	if m.host != nil {
		err := m.host.Send(host.Message{Type: host.TypeToggleTheme})
		if err == nil {
			log.Printf("[Theme] Toggle request sent to host")
			return
		}
		if !errors.Is(err, host.ErrNotConnected) {
			log.Printf("[Theme] Failed to send toggle request: %v", err)
		}
	}
	_ = m.Apply(next)
}

// SwitchTo toggles only when n differs from the current theme.
func (m *Manager) SwitchTo(n Name) error {
	if !n.Valid() {
		return fmt.Errorf("switch to %q: %w", n, ErrUnknownTheme)
	}
	if n == m.current {
		log.Printf("[Theme] Already on theme: %s", n)
		return nil
	}
	m.Toggle()
	return nil
}

// HandleHost applies THEME_CHANGED messages and reports whether msg was one.
func (m *Manager) HandleHost(msg host.Message) bool {
	if msg.Type != host.TypeThemeChanged {
		return false
	}
	if err := m.Apply(Name(msg.Theme)); err != nil {
		log.Printf("[Theme] Ignoring theme change from host: %v", err)
	}
	return true
}
