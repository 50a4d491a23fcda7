package theme

import (
	"errors"
	"image/color"
	"testing"

	"github.com/iburimskiy/crymson-fx/internal/config"
	"github.com/iburimskiy/crymson-fx/internal/host"
	"github.com/iburimskiy/crymson-fx/internal/storage"
)

type recorder struct {
	sent []host.Message
	err  error
}

func (r *recorder) Send(m host.Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, m)
	return nil
}

func TestNewManagerRestoresFlag(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   Name
	}{
		{"empty", "", Blue},
		{"gold", "gold", Gold},
		{"garbage", "purple", Blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := storage.New(nil)
			if tt.stored != "" {
				_ = s.Set(config.KeyAccentTheme, tt.stored)
			}
			m := NewManager(s, nil)
			if m.Current() != tt.want {
				t.Errorf("Current: got %s, want %s", m.Current(), tt.want)
			}
			if v, _ := s.Get(config.KeyAccentTheme); v != string(tt.want) {
				t.Errorf("persisted flag: got %q", v)
			}
		})
	}
}

func TestToggleWithoutHostAppliesLocally(t *testing.T) {
	s := storage.New(nil)
	m := NewManager(s, host.NewOffline())
	var applied []Name
	m.OnApplied(func(n Name) { applied = append(applied, n) })

	m.Toggle()
	if m.Current() != Gold {
		t.Fatalf("after toggle: %s", m.Current())
	}
	if v, _ := s.Get(config.KeyAccentTheme); v != "gold" {
		t.Errorf("flag not persisted: %q", v)
	}
	m.Toggle()
	if m.Current() != Blue {
		t.Fatalf("after second toggle: %s", m.Current())
	}
	if len(applied) != 2 || applied[0] != Gold || applied[1] != Blue {
		t.Errorf("listener calls: %v", applied)
	}
}

func TestToggleWithHostWaitsForReply(t *testing.T) {
	rec := &recorder{}
	m := NewManager(storage.New(nil), rec)
	m.Toggle()

	if len(rec.sent) != 1 || rec.sent[0].Type != host.TypeToggleTheme {
		t.Fatalf("sent: %+v", rec.sent)
	}
	if m.Current() != Blue {
		t.Fatal("theme changed before the host answered")
	}
	if !m.HandleHost(host.Message{Type: host.TypeThemeChanged, Theme: "gold"}) {
		t.Fatal("THEME_CHANGED not handled")
	}
	if m.Current() != Gold {
		t.Errorf("after host reply: %s", m.Current())
	}
}

func TestToggleSendFailureFallsBack(t *testing.T) {
	m := NewManager(storage.New(nil), &recorder{err: host.ErrBacklog})
	m.Toggle()
	if m.Current() != Gold {
		t.Errorf("fallback apply: got %s", m.Current())
	}
}

func TestSwitchTo(t *testing.T) {
	rec := &recorder{}
	m := NewManager(storage.New(nil), rec)

	if err := m.SwitchTo("red"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("unknown theme: got %v", err)
	}
	if err := m.SwitchTo(Blue); err != nil || len(rec.sent) != 0 {
		t.Errorf("switch to current theme sent %d messages, err %v", len(rec.sent), err)
	}
	if err := m.SwitchTo(Gold); err != nil || len(rec.sent) != 1 {
		t.Errorf("switch to gold sent %d messages, err %v", len(rec.sent), err)
	}
}

func TestHandleHostIgnoresOthers(t *testing.T) {
	m := NewManager(storage.New(nil), nil)
	if m.HandleHost(host.Message{Type: host.TypeLoginSuccess}) {
		t.Error("LOGIN_SUCCESS claimed by theme manager")
	}
	if !m.HandleHost(host.Message{Type: host.TypeThemeChanged, Theme: "teal"}) {
		t.Error("THEME_CHANGED should be consumed even when invalid")
	}
	if m.Current() != Blue {
		t.Errorf("invalid host theme applied: %s", m.Current())
	}
}

func TestPalettes(t *testing.T) {
	if got := PaletteFor(Gold).Accent; got != (color.RGBA{0xff, 0xd7, 0x00, 0xff}) {
		t.Errorf("gold accent: %+v", got)
	}
	if got := PaletteFor(Blue).Success; got != (color.RGBA{0x48, 0xbb, 0x78, 0xff}) {
		t.Errorf("blue success: %+v", got)
	}
	if PaletteFor("nope") != PaletteFor(Blue) {
		t.Error("unknown theme should fall back to blue")
	}
}
