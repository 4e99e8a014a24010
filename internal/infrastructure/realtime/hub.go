// Package realtime keeps the live notification connections of each user.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/relatorio-inc/relatorio/internal/application/notification/dto"
	"github.com/relatorio-inc/relatorio/internal/shared/goroutine"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

const sendBufferSize = 64

var ErrSendChannelFull = errors.New("send channel full")

// Relay forwards encoded frames to hubs running in other processes.
type Relay interface {
	Publish(ctx context.Context, userID uint, payload []byte) error
	Subscribe(ctx context.Context, handler func(userID uint, payload []byte)) error
}

// Client is one browser connection. Send is closed when the client is
// unregistered.
type Client struct {
	UserID      uint
	Conn        *websocket.Conn
	Send        chan []byte
	ConnectedAt time.Time
}

// Hub fans out notification frames to every connection of a user.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}
	relay   Relay
	logger  logger.Interface
}

func NewHub(relay Relay, log logger.Interface) *Hub {
	return &Hub{
		clients: make(map[uint]map[*Client]struct{}),
		relay:   relay,
		logger:  log,
	}
}

func (h *Hub) Register(userID uint, conn *websocket.Conn) *Client {
	c := &Client{
		UserID:      userID,
		Conn:        conn,
		Send:        make(chan []byte, sendBufferSize),
		ConnectedAt: time.Now(),
	}

	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]struct{})
	}
	h.clients[userID][c] = struct{}{}
	total := len(h.clients[userID])
	h.mu.Unlock()

	h.logger.Infow("notification websocket connected", "user_id", userID, "connections", total)
	return c
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	if _, ok := conns[c]; !ok {
		return
	}
	delete(conns, c)
	close(c.Send)
	if len(conns) == 0 {
		delete(h.clients, c.UserID)
	}

	h.logger.Infow("notification websocket disconnected", "user_id", c.UserID)
}

// Connections returns how many live connections the user has here.
func (h *Hub) Connections(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Push delivers locally and, when a relay is configured, to other instances.
func (h *Hub) Push(ctx context.Context, userID uint, msg *dto.PushMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	h.deliver(userID, payload)

	if h.relay != nil {
		if err := h.relay.Publish(ctx, userID, payload); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hub) deliver(userID uint, payload []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for c := range h.clients[userID] {
		select {
		case c.Send <- payload:
			delivered++
		default:
			h.logger.Warnw("dropping push frame", "user_id", userID, "error", ErrSendChannelFull)
		}
	}
	return delivered
}

// RunRelay delivers frames published by other instances until ctx is done.
func (h *Hub) RunRelay(ctx context.Context) {
	if h.relay == nil {
		return
	}
	goroutine.SafeGo(h.logger, "notification-relay", func() {
		err := h.relay.Subscribe(ctx, func(userID uint, payload []byte) {
			h.deliver(userID, payload)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			h.logger.Warnw("notification relay stopped", "error", err)
		}
	})
}

// CloseAll unregisters every client, closing their send channels.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, conns := range h.clients {
		for c := range conns {
			close(c.Send)
		}
		delete(h.clients, userID)
	}
}
