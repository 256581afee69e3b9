package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"taskboard/internal/models"
	"taskboard/pkg/logger"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is one live connection belonging to an authenticated user.
type Client struct {
	UserID string
	Conn   Conn
	mu     sync.Mutex
}

func NewClient(userID string, conn Conn) *Client {
	return &Client{UserID: userID, Conn: conn}
}

func (c *Client) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, payload)
}

type envelope struct {
	userID  string
	payload []byte
}

// Hub fans board events out to the owner's connections. Events are never
// delivered to another user's clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan envelope
	done       chan struct{}

	log *zap.Logger
}

const broadcastBuffer = 256

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan envelope, broadcastBuffer),
		done:       make(chan struct{}),
		log:        logger.SystemLogger,
	}
}

// WithLogger replaces the system channel logger the hub reports to.
func (h *Hub) WithLogger(l *zap.Logger) *Hub {
	h.log = l
	return h
}

// Run processes registrations and deliveries until ctx is cancelled, then
// closes every remaining connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.add(client)
		case client := <-h.unregister:
			h.remove(client)
		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

// Register adds client to the hub. It returns false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish queues ev for userID's connections. It never blocks the caller:
// when the queue is full the event is dropped.
func (h *Hub) Publish(userID string, ev models.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		logger.ErrorLogger.Error("Error encoding event", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- envelope{userID: userID, payload: payload}:
	default:
		h.log.Warn("Event queue full, dropping event", zap.String("user_id", userID), zap.String("type", ev.Type))
	}
}

// ClientCount reports how many connections userID currently has.
func (h *Hub) ClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) add(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[client.UserID]
	if !ok {
		set = make(map[*Client]bool)
		h.clients[client.UserID] = set
	}
	set[client] = true
	h.log.Info("Websocket client connected", zap.String("user_id", client.UserID))
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[client.UserID]
	if !ok || !set[client] {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.UserID)
	}
	client.Conn.Close()
	h.log.Info("Websocket client disconnected", zap.String("user_id", client.UserID))
}

func (h *Hub) deliver(msg envelope) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients[msg.userID]))
	for client := range h.clients[msg.userID] {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	for _, client := range targets {
		if err := client.write(msg.payload); err != nil {
			h.log.Warn("Websocket write failed", zap.String("user_id", client.UserID), zap.Error(err))
			h.remove(client)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, set := range h.clients {
		for client := range set {
			client.Conn.Close()
		}
		delete(h.clients, userID)
	}
}
