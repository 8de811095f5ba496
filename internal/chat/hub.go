// Package chat runs the in-office websocket hub. Messages are
// persisted by ChatService; the hub only handles live delivery.
package chat

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// OfficeRoomID is the shared broadcast conversation every user sees.
const OfficeRoomID = 0

type client struct {
	userID int
	conn   *websocket.Conn
	send   chan []byte
}

// Hub tracks connected users and routes messages to them. A user can
// hold several connections (phone and desktop) at once.
type Hub struct {
	mu      sync.RWMutex
	clients map[int]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int]map[*client]struct{}),
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	log.Printf("[Chat] User %d connected (%d connections)", c.userID, len(h.clients[c.userID]))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[c.userID]; ok {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			close(c.send)
			if len(conns) == 0 {
				delete(h.clients, c.userID)
			}
		}
	}
}

// Add attaches an upgraded connection for a user and starts its pumps.
func (h *Hub) Add(userID int, conn *websocket.Conn, onMessage func(userID int, data []byte)) {
	c := &client{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 32),
	}
	h.register(c)

	go c.writePump()
	go func() {
		defer func() {
			h.unregister(c)
			conn.Close()
		}()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			onMessage(userID, data)
		}
	}()
}

func (c *client) writePump() {
	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

func (h *Hub) push(userID int, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- data:
		default:
			// Slow consumer, drop instead of blocking the hub
		}
	}
}

// SendToUser delivers a payload to every live connection of one user.
func (h *Hub) SendToUser(userID int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Chat] Failed to encode payload: %v", err)
		return
	}
	h.push(userID, data)
}

// Broadcast delivers a payload to every connected user.
func (h *Hub) Broadcast(payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Chat] Failed to encode payload: %v", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, conns := range h.clients {
		for c := range conns {
			select {
			case c.send <- data:
			default:
			}
		}
	}
}

// OnlineUserIDs lists users with at least one live connection.
func (h *Hub) OnlineUserIDs() []int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]int, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}
