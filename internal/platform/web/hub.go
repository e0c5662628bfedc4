package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum command size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one websocket connection attached to a session.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	session *Session
	release func()
}

type reply struct {
	client  *Client
	message *Message
}

// Hub keeps the connected clients of every session and fans messages out
// to them. All client bookkeeping happens on the Run goroutine.
type Hub struct {
	sessions map[string]map[*Client]bool

	broadcast  chan *Message
	replies    chan reply
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	logger *log.Logger
}

// NewHub creates a hub. Run must be started before clients connect.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message),
		replies:    make(chan reply),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run is the hub event loop. It returns when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for id, clients := range h.sessions {
				for client := range clients {
					close(client.send)
				}
				delete(h.sessions, id)
			}
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case r := <-h.replies:
			h.replyTo(r.client, r.message)
		}
	}
}

// Broadcast sends message to every client of message.SessionID.
func (h *Hub) Broadcast(message *Message) {
	select {
	case h.broadcast <- message:
	case <-h.done:
	}
}

// Reply sends message to a single client.
func (h *Hub) Reply(client *Client, message *Message) {
	select {
	case h.replies <- reply{client: client, message: message}:
	case <-h.done:
	}
}

// clients counts the clients attached to sessionID. Only safe on the Run
// goroutine or while Run is not running.
func (h *Hub) clients(sessionID string) int {
	return len(h.sessions[sessionID])
}

func (h *Hub) attach(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) detach(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) registerClient(client *Client) {
	id := client.session.ID()
	if h.sessions[id] == nil {
		h.sessions[id] = make(map[*Client]bool)
	}
	h.sessions[id][client] = true

	h.logger.Debug("client registered", "session", id, "clients", len(h.sessions[id]))
}

func (h *Hub) unregisterClient(client *Client) {
	id := client.session.ID()
	clients, ok := h.sessions[id]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)

	if len(clients) == 0 {
		delete(h.sessions, id)
	}

	h.logger.Debug("client unregistered", "session", id, "clients", len(clients))
}

func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("cannot marshal message", "type", message.Type, "err", err)
		return
	}

	for client := range h.sessions[message.SessionID] {
		h.deliver(client, data)
	}
}

func (h *Hub) replyTo(client *Client, message *Message) {
	if !h.sessions[client.session.ID()][client] {
		return
	}
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("cannot marshal message", "type", message.Type, "err", err)
		return
	}
	h.deliver(client, data)
}

func (h *Hub) deliver(client *Client, data []byte) {
	select {
	case client.send <- data:
	default:
		// Slow client; drop it rather than stall the session.
		h.unregisterClient(client)
	}
}

// readPump decodes commands from the connection and applies them to the
// session until the peer goes away.
func (c *Client) readPump() {
	defer func() {
		c.hub.detach(c)
		c.conn.Close()
		c.release()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket read failed", "session", c.session.ID(), "err", err)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			c.hub.Reply(c, errorMessage(c.session.ID(), "malformed command"))
			continue
		}
		if err := c.session.Handle(cmd); err != nil {
			c.hub.Reply(c, errorMessage(c.session.ID(), err.Error()))
		}
	}
}

// writePump forwards queued messages to the connection, one JSON document
// per websocket frame, and keeps the peer alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
