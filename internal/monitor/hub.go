// Package monitor streams tick reports to websocket clients.
package monitor

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zeusync/gameai/internal/core/agent"
	"github.com/zeusync/gameai/internal/core/events/bus"
	"github.com/zeusync/gameai/internal/core/observability/log"
)

const writeTimeout = 2 * time.Second

var ErrHubClosed = errors.New("monitor: hub is closed")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Hub broadcasts every agent.tick event of the bus to its clients as JSON.
type Hub struct {
	logger log.Log
	events bus.EventBus
	sub    bus.Subscription

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	closed  bool
}

// NewHub subscribes a hub to the tick reports of events.
func NewHub(logger log.Log, events bus.EventBus) (*Hub, error) {
	if logger == nil {
		logger = log.NewNop()
	}
	h := &Hub{
		logger:  logger,
		events:  events,
		clients: make(map[*websocket.Conn]struct{}),
	}
	sub, err := events.Subscribe(agent.EventTick, h.onTick)
	if err != nil {
		return nil, err
	}
	h.sub = sub
	return h, nil
}

// ServeHTTP upgrades the request to a websocket and keeps the client until
// it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", log.Error(err))
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ErrHubClosed.Error()),
			time.Now().Add(writeTimeout))
		_ = conn.Close()
		return
	}
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("monitor client connected", log.String("remote", conn.RemoteAddr().String()))

	// Clients only listen; reading drains control frames and notices the
	// disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.drop(conn)
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close unsubscribes from the bus and disconnects every client.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	clients := h.clients
	h.clients = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()

	err := h.events.Unsubscribe(h.sub)
	for conn := range clients {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeTimeout))
		_ = conn.Close()
	}
	return err
}

func (h *Hub) onTick(e bus.Event) error {
	report, ok := e.Data().(agent.Report)
	if !ok {
		return nil
	}
	h.broadcast(report)
	return nil
}

func (h *Hub) broadcast(report agent.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(report); err != nil {
			h.logger.Warn("dropping monitor client", log.String("remote", conn.RemoteAddr().String()), log.Error(err))
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		_ = conn.Close()
		h.logger.Info("monitor client disconnected", log.String("remote", conn.RemoteAddr().String()))
	}
}
