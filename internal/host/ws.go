package host

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	pingInterval = 10 * time.Second
	pongWait     = 60 * time.Second
	writeWait    = 10 * time.Second
	sendBuffer   = 16
	inboxBuffer  = 64
)

// WS is a Bridge over a websocket connection. A read pump and a write pump
// own the connection; the UI only touches the channels.
type WS struct {
	conn  *websocket.Conn
	send  chan []byte
	inbox chan Message
	done  chan struct{}

	stopOnce  sync.Once
	connected atomic.Bool
}

// Dial opens a websocket to url and starts the pumps.
func Dial(ctx context.Context, url string) (*WS, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial host %s: %w", url, err)
	}
	return newWS(conn), nil
}

// Connect returns a live bridge to url, or an Offline bridge when url is empty
// or unreachable.
func Connect(ctx context.Context, url string) Bridge {
	if url == "" {
		log.Printf("[HostBridge] No host configured, running offline")
		return NewOffline()
	}
	ws, err := Dial(ctx, url)
	if err != nil {
		log.Printf("[HostBridge] Warning: %v (running offline)", err)
		return NewOffline()
	}
	log.Printf("[HostBridge] Connected to %s", url)
	return ws
}

func newWS(conn *websocket.Conn) *WS {
	w := &WS{
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		inbox: make(chan Message, inboxBuffer),
		done:  make(chan struct{}),
	}
	w.connected.Store(true)
	go w.readPump()
	go w.writePump()
	return w
}

func (w *WS) stop() {
	w.stopOnce.Do(func() {
		w.connected.Store(false)
		close(w.done)
	})
}

func (w *WS) readPump() {
	defer func() {
		w.stop()
		w.conn.Close()
	}()

	w.conn.SetReadDeadline(time.Now().Add(pongWait))
	w.conn.SetPongHandler(func(string) error {
		w.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := w.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[HostBridge] Unexpected close: %v", err)
			}
			return
		}
		var m Message
		if err := json.Unmarshal(data, &m); err != nil {
			log.Printf("[HostBridge] Ignoring malformed message: %v", err)
			continue
		}
		select {
		case w.inbox <- m:
		case <-w.done:
			return
		default:
			log.Printf("[HostBridge] Inbox full, dropping %s", m.Type)
		}
	}
}

func (w *WS) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		w.conn.Close()
	}()

	for {
		select {
		case data := <-w.send:
			w.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Printf("[HostBridge] Write failed: %v", err)
				w.stop()
				return
			}
		case <-ticker.C:
			w.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[HostBridge] Ping failed: %v", err)
				w.stop()
				return
			}
		case <-w.done:
			w.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = w.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// Send queues m for the write pump. It never blocks.
func (w *WS) Send(m Message) error {
	if !w.connected.Load() {
		return ErrClosed
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode %s: %w", m.Type, err)
	}
	select {
	case w.send <- data:
		return nil
	case <-w.done:
		return ErrClosed
	default:
		return ErrBacklog
	}
}

func (w *WS) Inbox() <-chan Message { return w.inbox }

func (w *WS) Connected() bool { return w.connected.Load() }

func (w *WS) Close() error {
	w.stop()
	return nil
}
