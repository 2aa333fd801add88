package realtime

import (
	"encoding/json"
	"sync"
)

// Client represents a single websocket client connection.
// We keep it minimal here; the actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Event is the payload broadcast after a successful sensor mutation.
type Event struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
}

// Sensor event types.
const (
	EventSensorCreated  = "sensor_created"
	EventSensorUpdated  = "sensor_updated"
	EventSensorDeleted  = "sensor_deleted"
	EventSensorArchived = "sensor_archived"
	EventSensorRestored = "sensor_restored"
)

// Hub maintains the set of connected clients and broadcasts sensor change
// events to all of them. Delivery is best effort; a failed write never
// affects the request that produced the event.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns a singleton hub instance.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = &Hub{
			clients: make(map[Client]struct{}),
		}
	})
	return hubInstance
}

// Register adds a client to the hub.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Broadcast sends a sensor event to every connected client.
func (h *Hub) Broadcast(eventType string, sensorID int) {
	message, err := json.Marshal(Event{Type: eventType, ID: sensorID})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if ok := c.Send(message); !ok {
			// client write failed; the ws handler cleans it up on its side
		}
	}
}
