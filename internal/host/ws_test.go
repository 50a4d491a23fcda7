package host

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// fakeHost answers LOGIN the way the embedding app does: "admin" succeeds,
// everyone else fails. TOGGLE_THEME is answered with THEME_CHANGED gold and
// QUIT drops the connection.
func fakeHost(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for {
			var m Message
			if err := conn.ReadJSON(&m); err != nil {
				return
			}
			var reply Message
			switch m.Type {
			case TypeLogin:
				if m.Username == "admin" {
					reply = Message{Type: TypeLoginSuccess, Username: m.Username}
				} else {
					reply = Message{Type: TypeLoginFailed, Reason: "bad credentials"}
				}
			case TypeToggleTheme:
				reply = Message{Type: TypeThemeChanged, Theme: "gold"}
			case "QUIT":
				return
			default:
				continue
			}
			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func receive(t *testing.T, b Bridge) Message {
	t.Helper()
	select {
	case m := <-b.Inbox():
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for host reply")
	}
	return Message{}
}

func TestWSRoundTrip(t *testing.T) {
	srv := fakeHost(t)
	ws, err := Dial(context.Background(), wsURL(srv))
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	if !ws.Connected() {
		t.Fatal("fresh bridge should be connected")
	}

	tests := []struct {
		name string
		send Message
		want Message
	}{
		{"login ok", Message{Type: TypeLogin, Username: "admin", Password: "pw"}, Message{Type: TypeLoginSuccess, Username: "admin"}},
		{"login failed", Message{Type: TypeLogin, Username: "bob", Password: "pw"}, Message{Type: TypeLoginFailed, Reason: "bad credentials"}},
		{"toggle theme", Message{Type: TypeToggleTheme}, Message{Type: TypeThemeChanged, Theme: "gold"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ws.Send(tt.send); err != nil {
				t.Fatal(err)
			}
			if got := receive(t, ws); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWSSendAfterClose(t *testing.T) {
	srv := fakeHost(t)
	ws, err := Dial(context.Background(), wsURL(srv))
	if err != nil {
		t.Fatal(err)
	}
	if err := ws.Close(); err != nil {
		t.Fatal(err)
	}
	if ws.Connected() {
		t.Error("closed bridge reports connected")
	}
	if err := ws.Send(Message{Type: TypeToggleTheme}); !errors.Is(err, ErrClosed) {
		t.Errorf("Send after Close: got %v, want ErrClosed", err)
	}
	// closing twice is harmless
	if err := ws.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestWSServerHangup(t *testing.T) {
	srv := fakeHost(t)
	ws, err := Dial(context.Background(), wsURL(srv))
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	if err := ws.Send(Message{Type: "QUIT"}); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for ws.Connected() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if ws.Connected() {
		t.Fatal("bridge still connected after the host hung up")
	}
}

func TestConnectFallsBackOffline(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no url", ""},
		{"unreachable", "ws://127.0.0.1:1/host"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			b := Connect(ctx, tt.url)
			if _, ok := b.(*Offline); !ok {
				t.Fatalf("got %T, want *Offline", b)
			}
			if b.Connected() {
				t.Error("offline bridge reports connected")
			}
			if err := b.Send(Message{Type: TypeLogin}); !errors.Is(err, ErrNotConnected) {
				t.Errorf("Send: got %v, want ErrNotConnected", err)
			}
		})
	}
}
