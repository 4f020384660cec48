package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/homeroom/internal/app/models"
)

// Event types pushed to dashboards
const (
	EventAnnouncementCreated = "announcement.created"
	EventAnnouncementUpdated = "announcement.updated"
	EventAnnouncementDeleted = "announcement.deleted"
	EventAttendanceSaved     = "attendance.saved"
)

// Event is a notification pushed to connected dashboards. An event with a
// ClassName only reaches readers who can see that class.
type Event struct {
	Type      string      `json:"type"`
	ClassName string      `json:"className,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub maintains the set of connected dashboards and fans events out to them
type Hub struct {
	clients map[*Client]bool

	// Events waiting to be delivered
	broadcast chan Event

	register   chan *Client
	unregister chan *Client

	// Closed once Run has returned
	done chan struct{}

	// Guards clients for readers outside Run
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Event, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles registrations and deliveries until ctx is cancelled, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.deliver(event)

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info().Msg("Event hub stopped")
			return
		}
	}
}

// attach hands client to Run. It reports false once the hub has stopped.
func (h *Hub) attach(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// detach hands client back to Run; a stopped hub has already closed it
func (h *Hub) detach(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.logger.Debug().
		Int64("userID", client.userID).
		Str("role", string(client.perm.Role)).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.logger.Debug().Int64("userID", client.userID).Msg("Client unregistered")
	}
}

// canReceive reports whether a client may see event
func canReceive(perm models.Permission, event Event) bool {
	if event.ClassName == "" {
		return perm.Role.Valid()
	}
	return perm.Role == models.RoleAdmin || perm.HasClass(event.ClassName)
}

// deliver sends event to every entitled client. Clients whose buffer is
// full are disconnected.
func (h *Hub) deliver(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("type", event.Type).Msg("Failed to marshal event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for client := range h.clients {
		if !canReceive(client.perm, event) {
			continue
		}
		select {
		case client.send <- data:
			sent++
		default:
			delete(h.clients, client)
			close(client.send)
			h.logger.Warn().Int64("userID", client.userID).Msg("Dropped slow client")
		}
	}

	h.logger.Debug().
		Str("type", event.Type).
		Str("class", event.ClassName).
		Int("clientCount", sent).
		Msg("Event delivered")
}

// Publish queues an event for delivery. It never blocks; events are
// dropped when the queue is full.
func (h *Hub) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn().Str("type", event.Type).Msg("Event queue full, dropping event")
	}
}

// ClientCount returns the number of connected dashboards
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
