package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents a connected WebSocket client
type Client struct {
	Hub    *Hub
	UserID uint
	Role   string // "Admin", "Staff" or "" for anonymous
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub manages all WebSocket connections. Admin and Staff clients join
// the admins room and receive every broadcast; anonymous connections
// stay registered but receive nothing.
type Hub struct {
	// Registered clients
	Clients map[*Client]bool

	// Members of the admins room
	Admins map[*Client]bool

	// Broadcast channel for messages to the admins room
	Broadcast chan *Message

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	mu sync.RWMutex
}

// Message is one server-to-client event (newBooking, newClient,
// paymentReceived, notificationRead).
type Message struct {
	Event     string      `json:"event"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Admins:     make(map[*Client]bool),
		Broadcast:  make(chan *Message),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			if client.Role == "Admin" || client.Role == "Staff" {
				h.Admins[client] = true
				log.Printf("🔌 Client joined admins room: user=%d role=%s", client.UserID, client.Role)
			} else {
				log.Printf("🔌 Anonymous client registered")
			}
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				delete(h.Admins, client)
				close(client.Send)
				log.Printf("🔌 Client unregistered: user=%d", client.UserID)
			}
			h.mu.Unlock()

		case message := <-h.Broadcast:
			h.broadcastToAdmins(message)
		}
	}
}

// broadcastToAdmins fans a message out to the admins room, dropping
// clients whose send buffer is full.
func (h *Hub) broadcastToAdmins(message *Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("❌ Error marshaling message: %v", err)
		return
	}

	for client := range h.Admins {
		select {
		case client.Send <- data:
		default:
			close(client.Send)
			delete(h.Clients, client)
			delete(h.Admins, client)
		}
	}
}

// AdminCount returns the number of sockets in the admins room.
func (h *Hub) AdminCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Admins)
}
