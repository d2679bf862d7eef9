// Package websocket pushes live check-in updates to browsers watching a
// group.
package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeSeatAssigned    MessageType = "seat_assigned"
	MessageTypePassesGenerated MessageType = "passes_generated"
	MessageTypePassesSent      MessageType = "passes_sent"
)

// SeatUpdate represents a seat status change
type SeatUpdate struct {
	SeatNumber  string `json:"seatNumber"`
	PassengerID int    `json:"passengerId"`
}

// Message represents a WebSocket message
type Message struct {
	Type      MessageType  `json:"type"`
	GroupID   string       `json:"groupId"`
	Seats     []SeatUpdate `json:"seats,omitempty"`
	Count     int          `json:"count,omitempty"`
	Message   string       `json:"message,omitempty"`
	Timestamp int64        `json:"timestamp"`
}

// Hub manages WebSocket connections per group
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	mu         sync.RWMutex
}

var globalHub *Hub
var hubOnce sync.Once

// GetHub returns the global hub instance
func GetHub() *Hub {
	hubOnce.Do(func() {
		globalHub = NewHub()
		go globalHub.Run()
	})
	return globalHub
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.groupID] == nil {
				h.clients[client.groupID] = make(map[*Client]bool)
			}
			h.clients[client.groupID][client] = true
			slog.Debug("websocket client registered", "groupId", client.groupID, "total", len(h.clients[client.groupID]))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.groupID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.groupID)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				slog.Error("websocket marshal failed", "error", err)
				continue
			}

			h.mu.RLock()
			clients := h.clients[message.GroupID]
			h.mu.RUnlock()

			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.mu.Lock()
					delete(h.clients[message.GroupID], client)
					close(client.send)
					h.mu.Unlock()
				}
			}
		}
	}
}

// BroadcastSeatAssigned notifies clients that a seat was bound to a passenger.
func (h *Hub) BroadcastSeatAssigned(groupID, seatNumber string, passengerID int) {
	h.broadcast <- &Message{
		Type:      MessageTypeSeatAssigned,
		GroupID:   groupID,
		Seats:     []SeatUpdate{{SeatNumber: seatNumber, PassengerID: passengerID}},
		Timestamp: time.Now().UnixMilli(),
	}
}

// BroadcastPassesGenerated notifies clients that boarding passes are ready.
func (h *Hub) BroadcastPassesGenerated(groupID string, count int) {
	h.broadcast <- &Message{
		Type:      MessageTypePassesGenerated,
		GroupID:   groupID,
		Count:     count,
		Message:   "Boarding passes generated",
		Timestamp: time.Now().UnixMilli(),
	}
}

// BroadcastPassesSent notifies clients that passes were emailed out.
func (h *Hub) BroadcastPassesSent(groupID string) {
	h.broadcast <- &Message{
		Type:      MessageTypePassesSent,
		GroupID:   groupID,
		Message:   "Boarding passes sent by email",
		Timestamp: time.Now().UnixMilli(),
	}
}

// GetClientCount returns the number of clients watching a group
func (h *Hub) GetClientCount(groupID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[groupID])
}
