// Package host connects the login screen to the embedding application.
//
// Messages are JSON objects tagged by Type. Outgoing requests are LOGIN and
// TOGGLE_THEME; the host answers with LOGIN_SUCCESS, LOGIN_FAILED and
// THEME_CHANGED.
package host

import (
	"encoding/json"
	"errors"
)

const (
	TypeLogin        = "LOGIN"
	TypeToggleTheme  = "TOGGLE_THEME"
	TypeThemeChanged = "THEME_CHANGED"
	TypeLoginSuccess = "LOGIN_SUCCESS"
	TypeLoginFailed  = "LOGIN_FAILED"
)

var (
	ErrClosed       = errors.New("host: bridge closed")
	ErrNotConnected = errors.New("host: not connected")
	ErrBacklog      = errors.New("host: send queue full")
)

type Message struct {
	Type       string `json:"type"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"password,omitempty"`
	RememberMe bool   `json:"rememberMe,omitempty"` // always sent on LOGIN
	Theme      string `json:"theme,omitempty"`
	Reason     string `json:"message,omitempty"`
}

// MarshalJSON keeps rememberMe on LOGIN even when it is false.
func (m Message) MarshalJSON() ([]byte, error) {
	type plain Message
	if m.Type != TypeLogin {
		return json.Marshal(plain(m))
	}
	return json.Marshal(struct {
		plain
		RememberMe bool `json:"rememberMe"`
	}{plain(m), m.RememberMe})
}

// Sender delivers a message to the host without blocking.
type Sender interface {
	Send(Message) error
}

// Bridge is a Sender that also receives. Inbox is drained by the UI goroutine.
type Bridge interface {
	Sender
	Inbox() <-chan Message
	Connected() bool
	Close() error
}

// Offline is the bridge used when no host is configured. Every Send fails with
// ErrNotConnected so callers take their local fallback.
type Offline struct {
	inbox chan Message
}

func NewOffline() *Offline { return &Offline{inbox: make(chan Message)} }

func (o *Offline) Send(Message) error { return ErrNotConnected }
func (o *Offline) Inbox() <-chan Message { return o.inbox }
func (o *Offline) Connected() bool { return false }
func (o *Offline) Close() error { return nil }
