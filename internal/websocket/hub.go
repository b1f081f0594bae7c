package websocket

import (
	"encoding/json"
	"sync"

	"codementor-be/internal/pkg/logger"
	"codementor-be/internal/registry"

	"github.com/google/uuid"
)

// Wire event types pushed to room members.
const (
	EventUserJoined      = "user_joined"
	EventUserLeft        = "user_left"
	EventCodeUpdate      = "code_update"
	EventCursorUpdate    = "cursor_update"
	EventChatMessage     = "chat_message"
	EventAIHelpRequested = "ai_help_requested"
	EventError           = "error"
)

// Envelope is the frame every wire message travels in, both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// RoomEventHandler receives parsed inbound messages from client connections.
// Implemented by the collaboration service; the hub stays transport-only.
type RoomEventHandler interface {
	HandleJoin(client *Client, roomCode string)
	HandleLeave(client *Client, roomCode string)
	HandleCodeChange(client *Client, roomCode, code string, cursorPosition int)
	HandleCursorMove(client *Client, roomCode string, line, column int)
	HandleChat(client *Client, roomCode, message string)
	HandleAIHelp(client *Client, roomCode, question string)
	HandleDisconnect(client *Client)
}

type Hub struct {
	// Registered clients keyed by connection ID.
	clients map[uuid.UUID]*Client

	mu sync.RWMutex

	registry *registry.Registry
	handler  RoomEventHandler
	logger   logger.ILogger
}

func NewHub(reg *registry.Registry, log logger.ILogger) *Hub {
	return &Hub{
		clients:  make(map[uuid.UUID]*Client),
		registry: reg,
		logger:   log,
	}
}

// SetHandler wires the room event handler. Must be called before any client
// registers; kept separate from the constructor because the service and the
// hub reference each other.
func (h *Hub) SetHandler(handler RoomEventHandler) {
	h.handler = handler
}

func (h *Hub) Registry() *registry.Registry {
	return h.registry
}

// Register adds a connection to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients[client.ConnID] = client
	h.mu.Unlock()
	h.logger.Info("Hub", "Client registered", map[string]interface{}{
		"conn_id": client.ConnID,
		"user_id": client.UserID,
	})
}

// Unregister drops a connection and closes its send channel. Safe to call
// more than once for the same connection.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.ConnID]; ok {
		delete(h.clients, client.ConnID)
		close(client.Send)
	}
	h.mu.Unlock()
	h.logger.Info("Hub", "Client unregistered", map[string]interface{}{
		"conn_id": client.ConnID,
		"user_id": client.UserID,
	})
}

// BroadcastToRoom pushes an event to every connection in the room.
func (h *Hub) BroadcastToRoom(roomCode string, eventType string, data interface{}) {
	h.broadcast(roomCode, uuid.Nil, eventType, data)
}

// BroadcastToRoomExcept pushes an event to every connection in the room other
// than the sender.
func (h *Hub) BroadcastToRoomExcept(roomCode string, senderConnID uuid.UUID, eventType string, data interface{}) {
	h.broadcast(roomCode, senderConnID, eventType, data)
}

func (h *Hub) broadcast(roomCode string, skip uuid.UUID, eventType string, data interface{}) {
	payload, err := marshalEnvelope(eventType, data)
	if err != nil {
		h.logger.Error("Hub", "Failed to encode event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
		return
	}

	conns := h.registry.MemberConns(roomCode)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, connID := range conns {
		if connID == skip {
			continue
		}
		client, ok := h.clients[connID]
		if !ok {
			continue
		}
		select {
		case client.Send <- payload:
		default:
			// Slow consumer, drop the connection rather than block the room.
			go h.Unregister(client)
		}
	}
}

// SendToConn pushes an event to a single connection.
func (h *Hub) SendToConn(connID uuid.UUID, eventType string, data interface{}) {
	payload, err := marshalEnvelope(eventType, data)
	if err != nil {
		return
	}

	h.mu.RLock()
	client, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case client.Send <- payload:
	default:
		go h.Unregister(client)
	}
}

func marshalEnvelope(eventType string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: eventType, Data: raw})
}
