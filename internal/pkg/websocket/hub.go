package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/spicalc/internal/app/models"
	"github.com/yigit/spicalc/internal/app/models/dto"
)

// publishBuffer bounds how many updates may wait for the hub loop
const publishBuffer = 256

// Hub maintains the set of active clients and pushes session updates to them
type Hub struct {
	// Registered clients organized by session ID
	clients map[string]map[*Client]bool

	// Updates waiting to be broadcast
	broadcast chan dto.SessionUpdate

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan dto.SessionUpdate, publishBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]map[*Client]bool),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles client registrations and broadcasts until ctx is done
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			h.logger.Debug().Msg("Session feed hub stopped")
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case update := <-h.broadcast:
			h.broadcastUpdate(update)
		}
	}
}

// Register adds a client unless the hub has stopped. When it returns true
// the client already receives every later update of its session.
func (h *Hub) Register(client *Client) bool {
	client.registered = make(chan struct{})
	select {
	case h.register <- client:
	case <-h.done:
		return false
	}

	select {
	case <-client.registered:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client unless the hub has stopped
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// PublishState queues a session snapshot for its subscribers. It never blocks;
// when the queue is full the update is dropped, since a later one supersedes it.
func (h *Hub) PublishState(state models.SessionState) {
	if h.ClientsCount(state.ID) == 0 {
		return
	}

	select {
	case h.broadcast <- dto.NewSessionUpdate(state):
	default:
		h.logger.Warn().Str("sessionID", state.ID).Msg("Session feed queue full, dropping update")
	}
}

// SendState delivers a snapshot to one registered client. It reports false
// when the client is no longer registered.
func (h *Hub) SendState(client *Client, state models.SessionState) bool {
	data, err := json.Marshal(dto.NewSessionUpdate(state))
	if err != nil {
		h.logger.Error().Err(err).Str("sessionID", state.ID).Msg("Failed to marshal session state")
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.clients[client.sessionID][client] {
		return false
	}
	h.deliverLocked(client, state.Version, data)
	return true
}

// CloseSession sends a final "closed" update to every client of a session
// and disconnects them
func (h *Hub) CloseSession(sessionID string) {
	data, err := json.Marshal(dto.NewSessionClosedUpdate(sessionID))
	if err != nil {
		h.logger.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to marshal close notice")
		data = nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[sessionID]
	if len(clients) == 0 {
		return
	}

	for client := range clients {
		if data != nil {
			select {
			case client.send <- data:
			default:
			}
		}
		h.removeLocked(client)
	}

	h.logger.Debug().Str("sessionID", sessionID).Msg("Session feed closed")
}

// ClientsCount returns the number of connected clients for a session
func (h *Hub) ClientsCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[sessionID])
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.sessionID]; !ok {
		h.clients[client.sessionID] = make(map[*Client]bool)
	}
	h.clients[client.sessionID][client] = true
	close(client.registered)

	h.logger.Debug().
		Str("sessionID", client.sessionID).
		Str("addr", client.remoteAddr()).
		Msg("Client registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.clients[client.sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.sessionID)
	}

	h.logger.Debug().
		Str("sessionID", client.sessionID).
		Str("addr", client.remoteAddr()).
		Msg("Client unregistered")
}

// broadcastUpdate sends an update to every client of its session
func (h *Hub) broadcastUpdate(update dto.SessionUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		h.logger.Error().Err(err).Str("sessionID", update.SessionID).Msg("Failed to marshal session update")
		return
	}

	var version uint64
	if update.Session != nil {
		version = update.Session.Version
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients[update.SessionID] {
		h.deliverLocked(client, version, data)
	}
}

// deliverLocked queues data for client unless it already holds a snapshot at
// least as new
func (h *Hub) deliverLocked(client *Client, version uint64, data []byte) {
	if client.delivered && version <= client.version {
		return
	}

	select {
	case client.send <- data:
		client.delivered = true
		client.version = version
	default:
		// Slow or gone; drop the client rather than stall the hub
		h.removeLocked(client)
	}
}

// closeAll disconnects every client
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.clients {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}
