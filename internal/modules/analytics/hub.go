package analytics

import (
	"sync"

	"github.com/gorilla/websocket"

	"agendamentos/internal/domain"
)

// Hub fans stored events out to connected admin sockets.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

func (h *Hub) Broadcast(e domain.AnalyticsEvent) {
	h.mutex.RLock()
	stale := make([]int64, 0)
	for userID, conn := range h.connections {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(e); err != nil {
			stale = append(stale, userID)
		}
	}
	h.mutex.RUnlock()

	for _, userID := range stale {
		h.Unregister(userID)
	}
}

func (h *Hub) ConnectedCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
