package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// NewClient builds a client for one connection. Each connection gets a fresh
// connection ID even when the same user opens several tabs.
func NewClient(hub *Hub, c *websocket.Conn, userID uint, userName string) *Client {
	return &Client{
		Hub:      hub,
		Conn:     c,
		ConnID:   uuid.New(),
		UserID:   userID,
		UserName: userName,
		Send:     make(chan []byte, 256),
		rooms:    make(map[string]struct{}),
	}
}

// ServeWs handles websocket requests from the peer.
func ServeWs(hub *Hub, c *websocket.Conn, userID uint, userName string) {
	client := NewClient(hub, c, userID, userName)
	hub.Register(client)

	go client.writePump()
	client.readPump() // runs in the handler goroutine
}
