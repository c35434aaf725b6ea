// Package main provides the WebSocket hub pushing inventory events to the UI.
package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Only allow connections from the local UI
		return r.Host == "localhost" || strings.HasPrefix(r.Host, "localhost:") ||
			r.Host == "127.0.0.1" || strings.HasPrefix(r.Host, "127.0.0.1:")
	},
}

// WSClient represents a WebSocket client connection.
type WSClient struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	hub  *WSHub
}

// WSHub maintains active client connections and broadcasts messages.
type WSHub struct {
	clients    map[string]*WSClient
	broadcast  chan []byte
	register   chan *WSClient
	unregister chan *WSClient
	mu         sync.RWMutex
	log        *zap.Logger
}

// WSEnvelope wraps all WebSocket messages.
type WSEnvelope struct {
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data"`
	Timestamp int64                  `json:"timestamp"`
}

// WebSocket event types. The UI re-reads /api/stock on stock.updated; the
// rest are notification toasts.
const (
	EventStockUpdated    = "stock.updated"
	EventImportCompleted = "import.completed"
	EventImportFailed    = "import.failed"
	EventExportCompleted = "export.completed"
	EventBackupCompleted = "backup.completed"
)

// NewWSHub creates a new WebSocket hub.
func NewWSHub(log *zap.Logger) *WSHub {
	if log == nil {
		log = zap.NewNop()
	}
	hub := &WSHub{
		clients:    make(map[string]*WSClient),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *WSClient),
		unregister: make(chan *WSClient),
		log:        log,
	}
	go hub.run()
	return hub
}

// run manages client connections and broadcasts.
func (h *WSHub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client connected", zap.String("client", client.id), zap.Int("total", total))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client disconnected", zap.String("client", client.id), zap.Int("total", total))

		case message := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client send buffer is full, close connection
					close(client.send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a typed message to all connected clients.
func (h *WSHub) Broadcast(messageType string, data map[string]interface{}) {
	envelope := WSEnvelope{
		Type:      messageType,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}

	bytes, err := json.Marshal(envelope)
	if err != nil {
		h.log.Error("failed to marshal message", zap.Error(err))
		return
	}

	h.broadcast <- bytes
}

// BroadcastStockUpdated notifies clients that the collection changed and
// should be re-read.
func (h *WSHub) BroadcastStockUpdated(total int) {
	h.Broadcast(EventStockUpdated, map[string]interface{}{
		"total": total,
	})
}

// ImportCompleted notifies clients that an import appended rows.
func (h *WSHub) ImportCompleted(added int) {
	h.Broadcast(EventImportCompleted, map[string]interface{}{
		"added": added,
	})
}

// ImportFailed notifies clients that an import was rejected.
func (h *WSHub) ImportFailed(errMsg string) {
	h.Broadcast(EventImportFailed, map[string]interface{}{
		"error": errMsg,
	})
}

// ExportCompleted notifies clients that an export file was produced.
func (h *WSHub) ExportCompleted(filename string, sizeBytes int64, itemCount int) {
	h.Broadcast(EventExportCompleted, map[string]interface{}{
		"filename":   filename,
		"size_bytes": sizeBytes,
		"item_count": itemCount,
	})
}

// BackupCompleted notifies clients that a scheduled backup was written.
func (h *WSHub) BackupCompleted(path string) {
	h.Broadcast(EventBackupCompleted, map[string]interface{}{
		"path": path,
	})
}

// HandleWS upgrades an HTTP request to a WebSocket connection.
func (h *WSHub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", zap.Error(err))
		return
	}

	client := &WSClient{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, 64),
		hub:  h,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump drains messages from the WebSocket connection. The UI sends
// nothing the hub acts on; the pump exists to detect disconnects and
// answer pings.
func (c *WSClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn("read error", zap.String("client", c.id), zap.Error(err))
			}
			return
		}
	}
}

// writePump pumps messages to the WebSocket connection.
func (c *WSClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
