package ws

import (
	"encoding/json"

	"go.uber.org/zap"

	"jackut/pkg/logger"
)

// Hub tracks connected users and pushes events to them. One connection
// per login; a new connection for the same login replaces the old one.
type Hub struct {
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client
	direct     chan *directMsg

	log *zap.Logger
}

type directMsg struct {
	login string
	data  []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		direct:     make(chan *directMsg, 256),
		log:        logger.Get(),
	}
}

// Run is the Hub's event loop. Call it in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			// The send channel is never closed; closing done tears the
			// replaced connection down while its pumps may still be live.
			if old, ok := h.clients[client.login]; ok {
				close(old.done)
			}
			h.clients[client.login] = client
			h.log.Debug("ws connect", zap.String("login", client.login), zap.Int("total", len(h.clients)))

		case client := <-h.unregister:
			if current, ok := h.clients[client.login]; ok && current == client {
				delete(h.clients, client.login)
				close(client.done)
				h.log.Debug("ws disconnect", zap.String("login", client.login), zap.Int("total", len(h.clients)))
			}

		case msg := <-h.direct:
			client, ok := h.clients[msg.login]
			if !ok {
				continue
			}
			select {
			case client.send <- msg.data:
			default:
				// Buffer full, drop the connection.
				delete(h.clients, client.login)
				close(client.done)
			}
		}
	}
}

// SendToUser delivers an event to a connected user. Users without a
// live connection simply miss the event; the store's queues remain the
// source of truth.
func (h *Hub) SendToUser(login string, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("ws marshal", zap.Error(err))
		return
	}
	h.direct <- &directMsg{login: login, data: data}
}
