package websocket

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/pkg/config"
)

var ErrClientInactive = errors.New("client is inactive")

// Manager fans deposit status updates out to connected clients. It
// implements interfaces.StatusBroadcaster.
type Manager struct {
	clients   map[string]*Client
	clientsMu sync.RWMutex
	config    config.WebSocketConfig
}

func NewManager(cfg config.WebSocketConfig) *Manager {
	manager := &Manager{
		clients: make(map[string]*Client),
		config:  cfg,
	}

	go manager.cleanupInactiveClients()

	return manager
}

func (m *Manager) AddClient(client *Client) {
	m.clientsMu.Lock()
	defer m.clientsMu.Unlock()

	m.clients[client.id] = client

	log.Info().
		Str("client_id", client.id).
		Int("total_clients", len(m.clients)).
		Msg("WebSocket client added")
}

func (m *Manager) RemoveClient(clientID string) {
	m.clientsMu.Lock()
	defer m.clientsMu.Unlock()

	if client, exists := m.clients[clientID]; exists {
		client.Close()
		delete(m.clients, clientID)

		log.Info().
			Str("client_id", clientID).
			Int("total_clients", len(m.clients)).
			Msg("WebSocket client removed")
	}
}

// Broadcast sends a deposit status update to all connected clients.
func (m *Manager) Broadcast(update *domain.DepositStatusUpdate) error {
	m.clientsMu.RLock()
	clients := make([]*Client, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.clientsMu.RUnlock()

	for _, client := range clients {
		if err := client.Send(update); err != nil {
			log.Error().
				Err(err).
				Str("client_id", client.id).
				Msg("Failed to send deposit status update")

			if !client.IsActive() {
				m.RemoveClient(client.id)
			}
		}
	}

	return nil
}

func (m *Manager) ClientCount() int {
	m.clientsMu.RLock()
	defer m.clientsMu.RUnlock()

	return len(m.clients)
}

func (m *Manager) cleanupInactiveClients() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.clientsMu.Lock()
		removed := 0
		for clientID, client := range m.clients {
			if !client.IsActive() {
				client.Close()
				delete(m.clients, clientID)
				removed++
			}
		}
		if removed > 0 {
			log.Info().
				Int("removed_count", removed).
				Int("active_clients", len(m.clients)).
				Msg("Cleaned up inactive WebSocket clients")
		}
		m.clientsMu.Unlock()
	}
}

// NewClient wraps an upgraded connection and starts its pumps.
func NewClient(conn *gws.Conn) *Client {
	client := &Client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan *domain.DepositStatusUpdate, 64),
		done: make(chan struct{}),
	}

	go client.writePump()
	go client.readPump()

	return client
}
