package inspect

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeHello   ReloadMessageType = "hello"
	ReloadTypeChanged ReloadMessageType = "changed"
	ReloadTypeRemoved ReloadMessageType = "removed"
)

// ReloadMessage is sent to viewers via WebSocket.
type ReloadMessage struct {
	Type     ReloadMessageType `json:"type"`
	Snapshot string            `json:"snapshot,omitempty"`
}

// ReloadServer manages WebSocket connections for snapshot change
// notifications.
type ReloadServer struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	onCount  func(int)
}

// NewReloadServer creates a new reload server.
func NewReloadServer() *ReloadServer {
	return &ReloadServer{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // local inspection tool
			},
		},
	}
}

// OnClientCount sets a callback invoked whenever the number of
// connected clients changes.
func (r *ReloadServer) OnClientCount(fn func(int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onCount = fn
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (r *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	r.add(conn)
	conn.WriteJSON(ReloadMessage{Type: ReloadTypeHello})

	// Keep connection alive until client disconnects
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}

	r.remove(conn)
	conn.Close()
}

// NotifyChanged tells all clients that a snapshot was written.
func (r *ReloadServer) NotifyChanged(snapshot string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeChanged, Snapshot: snapshot})
}

// NotifyRemoved tells all clients that a snapshot was deleted.
func (r *ReloadServer) NotifyRemoved(snapshot string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeRemoved, Snapshot: snapshot})
}

// broadcast sends a message to all connected clients.
func (r *ReloadServer) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}
	r.mu.RUnlock()

	for _, client := range clients {
		err := client.WriteMessage(websocket.TextMessage, data)
		if err != nil {
			r.remove(client)
			client.Close()
		}
	}
}

// add registers a client connection.
func (r *ReloadServer) add(conn *websocket.Conn) {
	r.mu.Lock()
	r.clients[conn] = true
	count := len(r.clients)
	callback := r.onCount
	r.mu.Unlock()

	if callback != nil {
		callback(count)
	}
}

// remove unregisters a client connection.
func (r *ReloadServer) remove(conn *websocket.Conn) {
	r.mu.Lock()
	delete(r.clients, conn)
	count := len(r.clients)
	callback := r.onCount
	r.mu.Unlock()

	if callback != nil {
		callback(count)
	}
}

// ClientCount returns the number of connected clients.
func (r *ReloadServer) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close closes all client connections.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	for client := range r.clients {
		client.Close()
		delete(r.clients, client)
	}
	callback := r.onCount
	r.mu.Unlock()

	if callback != nil {
		callback(0)
	}
}
