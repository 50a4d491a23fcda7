// Package session runs the login form and the local activity log.
package session

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/crymson-fx/internal/config"
	"github.com/iburimskiy/crymson-fx/internal/host"
	"github.com/iburimskiy/crymson-fx/internal/storage"
)

const (
	missingCredentials = "Please enter username and password"
	hostUnavailable    = "Unable to reach the application"
	alertTitle         = "Crymson"
)

var ErrMissingCredentials = errors.New("session: missing username or password")

// Effects is the slice of the animation engine the form drives.
type Effects interface {
	ShowSpinner()
	HideSpinner()
	Shake(ids ...string)
	Welcome(name string, done func())
}

type Alerter interface {
	Alert(text string)
}

// DialogAlerter shows a native warning dialog without blocking the caller.
type DialogAlerter struct {
	Title string
}

func (a DialogAlerter) Alert(text string) {
	title := a.Title
	if title == "" {
		title = alertTitle
	}
	go func() {
		if err := zenity.Warning(text, zenity.Title(title)); err != nil && !errors.Is(err, zenity.ErrCanceled) {
			log.Printf("[Session] Alert dialog failed: %v (%s)", err, text)
		}
	}()
}

// Form holds the login field values and submits them to the host.
type Form struct {
	Username string
	Password string
	Remember bool

	userID, passID string

	store   *storage.Store
	host    host.Sender
	effects Effects
	alert   Alerter

	pending  bool
	signedIn string
	onDone   func(username string)
}

type FormConfig struct {
	UserFieldID string
	PassFieldID string
	Store       *storage.Store
	Host        host.Sender
	Effects     Effects
	Alert       Alerter
	// OnWelcomed runs after the welcome sequence and page transition finish.
	OnWelcomed func(username string)
}

// NewForm restores a remembered username.
func NewForm(cfg FormConfig) *Form {
	f := &Form{
		userID:  cfg.UserFieldID,
		passID:  cfg.PassFieldID,
		store:   cfg.Store,
		host:    cfg.Host,
		effects: cfg.Effects,
		alert:   cfg.Alert,
		onDone:  cfg.OnWelcomed,
	}
	if f.store.Bool(config.KeyRememberMe, false) {
		f.Remember = true
		f.Username, _ = f.store.Get(config.KeySavedUsername)
	}
	return f
}

// Pending reports whether a LOGIN is waiting for the host's answer.
func (f *Form) Pending() bool { return f.pending }

// SignedIn returns the username the host accepted, if any.
func (f *Form) SignedIn() string { return f.signedIn }

// Submit validates the fields and sends LOGIN. Missing credentials shake both
// fields and raise an alert. Submitting again while a LOGIN is pending sends
// it again.
func (f *Form) Submit() error {
	user := strings.TrimSpace(f.Username)
	if user == "" || f.Password == "" {
		f.effects.Shake(f.userID, f.passID)
		if f.alert != nil {
			f.alert.Alert(missingCredentials)
		}
		return ErrMissingCredentials
	}

	f.effects.ShowSpinner()
	f.pending = true
	f.remember(user)

	err := f.host.Send(host.Message{
		Type:       host.TypeLogin,
		Username:   user,
		Password:   f.Password,
		RememberMe: f.Remember,
	})
	if err != nil {
		f.pending = false
		f.effects.HideSpinner()
		if f.alert != nil {
			f.alert.Alert(hostUnavailable)
		}
		return fmt.Errorf("send login: %w", err)
	}
	return nil
}

// HostLost abandons a pending LOGIN after the bridge went away. It reports
// whether one was pending.
func (f *Form) HostLost() bool {
	if !f.pending {
		return false
	}
	f.pending = false
	f.effects.HideSpinner()
	if f.alert != nil {
		f.alert.Alert(hostUnavailable)
	}
	log.Printf("[Session] Host disconnected before answering LOGIN")
	return true
}

// remember stores the username and flag, or clears both. The password is
// never written.
func (f *Form) remember(user string) {
	var err error
	if f.Remember {
		err = errors.Join(
			f.store.Set(config.KeySavedUsername, user),
			f.store.SetBool(config.KeyRememberMe, true),
		)
	} else {
		err = errors.Join(
			f.store.Remove(config.KeySavedUsername),
			f.store.Remove(config.KeyRememberMe),
		)
	}
	if err != nil {
		log.Printf("[Session] Warning: failed to update remembered login: %v", err)
	}
}

// HandleHost consumes LOGIN_SUCCESS and LOGIN_FAILED and reports whether msg
// was one of them.
func (f *Form) HandleHost(msg host.Message) bool {
	switch msg.Type {
	case host.TypeLoginSuccess:
		f.pending = false
		f.effects.HideSpinner()
		name := msg.Username
		if name == "" {
			name = strings.TrimSpace(f.Username)
		}
		f.Password = ""
		log.Printf("[Session] Login accepted for %s", name)
		f.effects.Welcome(name, func() {
			f.signedIn = name
			if f.onDone != nil {
				f.onDone(name)
			}
		})
		return true
	case host.TypeLoginFailed:
		f.pending = false
		f.effects.HideSpinner()
		f.effects.Shake(f.userID, f.passID)
		if msg.Reason != "" {
			log.Printf("[Session] Login rejected: %s", msg.Reason)
		}
		return true
	}
	return false
}
