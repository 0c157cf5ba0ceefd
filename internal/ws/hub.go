package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"TrendMatrix/pkg/logger"
)

const defaultSendBuffer = 64

// Hub fans dashboard updates out to connected WebSocket clients. Slow
// clients whose send buffer fills are dropped rather than blocking the
// broadcast loop.
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}

	upgrader websocket.Upgrader
	log      *logger.Logger
	mu       sync.RWMutex
}

// NewHub creates a broadcast hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log: log,
	}
}

// Run drives registration and broadcasting until ctx is cancelled. After it
// returns, pending register/unregister sends unblock via the done channel.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
			h.log.Debug("ws client connected", logger.Int("clients", h.ClientCount()))

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Buffer full: the writer is stuck, cut it loose.
					go h.remove(c)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast queues a JSON event of the given type for all clients.
func (h *Hub) Broadcast(event string, payload interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"type": event,
		"data": payload,
	})
	if err != nil {
		h.log.Warn("ws marshal failed", logger.Error(err))
		return
	}

	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn("ws broadcast queue full, dropping event", logger.String("type", event))
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Handle upgrades an Echo request to a WebSocket connection.
func (h *Hub) Handle(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := newClient(conn, h)
	if !h.add(cl) {
		return conn.Close()
	}

	go cl.writeLoop()
	go cl.readLoop()
	return nil
}

// add hands a client to the run loop. Returns false when the hub has shut
// down, so callers never block on a loop that is no longer receiving.
func (h *Hub) add(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// remove hands a client back to the run loop, giving up on shutdown.
func (h *Hub) remove(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}
