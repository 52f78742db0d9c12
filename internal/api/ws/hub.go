// Package ws mirrors the instance notification channel to websocket
// subscribers so host UIs can observe visibility/activity events live.
package ws

import (
	"net/http"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Francexi/browserhost/internal/infrastructure/logging"
	"github.com/Francexi/browserhost/internal/infrastructure/monitoring"
	"github.com/Francexi/browserhost/internal/registry"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Envelope is one mirrored event frame.
type Envelope struct {
	Type    string `json:"type"`
	Event   string `json:"event,omitempty"`
	Payload string `json:"payload,omitempty"`
	Target  string `json:"target,omitempty"`
}

// Hub fans dispatched events out to connected websocket clients.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}

	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewHub creates an empty hub.
func NewHub(logger *logging.Logger, metrics *monitoring.Metrics) *Hub {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Hub{
		conns:   make(map[*websocket.Conn]struct{}),
		logger:  logger,
		metrics: metrics,
	}
}

// Observer adapts the hub to the registry's event mirror hook.
func (h *Hub) Observer() registry.Observer {
	return func(name string, payload []byte, targetID string) {
		h.broadcast(Envelope{
			Type:    "event",
			Event:   name,
			Payload: string(payload),
			Target:  targetID,
		})
	}
}

// HandleConnection upgrades the request and keeps the connection subscribed
// until the peer goes away.
func (h *Hub) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.add(conn)
	defer h.remove(conn)

	h.send(conn, Envelope{Type: "system", Payload: "connected"})

	// Reads are drained only to detect close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.WSConnections.Inc()
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, existed := h.conns[conn]
	delete(h.conns, conn)
	h.mu.Unlock()

	conn.Close()
	if existed && h.metrics != nil {
		h.metrics.WSConnections.Dec()
	}
}

func (h *Hub) send(conn *websocket.Conn, env Envelope) {
	data, err := sonic.Marshal(env)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.logger.Debug("websocket write failed", zap.Error(err))
	}
}

func (h *Hub) broadcast(env Envelope) {
	data, err := sonic.Marshal(env)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("websocket write failed", zap.Error(err))
		}
	}
}

// Close drops every connection.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.Close()
		delete(h.conns, conn)
	}
}
