// Package debugview streams brain state switches to websocket clients.
package debugview

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	sendBuffer   = 64
	writeTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is one state switch as sent on the wire.
type Message struct {
	State string `json:"state"`
	Seq   uint64 `json:"seq"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Broadcaster implements the brain's debug sink. It keeps a bounded history
// and fans every switch out to connected clients. Slow clients are dropped.
type Broadcaster struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	seq     uint64
	last    []byte
	history []string
	limit   int
}

// NewBroadcaster keeps up to limit past states (at least one).
func NewBroadcaster(limit int) *Broadcaster {
	return &Broadcaster{
		clients: make(map[*client]struct{}),
		limit:   max(limit, 1),
	}
}

// SetState records and broadcasts a switch.
func (b *Broadcaster) SetState(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	b.history = append(b.history, name)
	if over := len(b.history) - b.limit; over > 0 {
		b.history = append(b.history[:0], b.history[over:]...)
	}

	payload, err := json.Marshal(Message{State: name, Seq: b.seq})
	if err != nil {
		log.Printf("debugview: marshal: %v", err)
		return
	}
	b.last = payload
	for c := range b.clients {
		select {
		case c.send <- payload:
		default:
			b.dropLocked(c)
		}
	}
}

// History returns the recorded states, oldest first.
func (b *Broadcaster) History() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.history...)
}

// Clients returns the number of connected clients.
func (b *Broadcaster) Clients() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// ServeHTTP upgrades the request and streams switches until the client
// disconnects. The latest state is sent immediately on connect.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("debugview: upgrade: %v", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	b.mu.Lock()
	b.clients[c] = struct{}{}
	if b.last != nil {
		c.send <- b.last
	}
	b.mu.Unlock()

	go b.writePump(c)
	b.readPump(c)
}

// readPump only watches for the close; clients never send anything useful.
func (b *Broadcaster) readPump(c *client) {
	defer b.drop(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (b *Broadcaster) writePump(c *client) {
	defer c.conn.Close()
	for payload := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			b.drop(c)
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (b *Broadcaster) drop(c *client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dropLocked(c)
}

func (b *Broadcaster) dropLocked(c *client) {
	if _, ok := b.clients[c]; !ok {
		return
	}
	delete(b.clients, c)
	close(c.send)
}

// Close disconnects every client.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for c := range b.clients {
		b.dropLocked(c)
	}
}

// Serve listens on addr until ctx is cancelled, serving the stream at /ws.
func Serve(ctx context.Context, addr string, b *Broadcaster) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", b)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("debugview: listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		b.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
