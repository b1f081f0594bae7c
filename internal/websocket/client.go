package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024 // code blobs travel inline
)

// Inbound message types.
const (
	msgJoinRoom    = "join_room"
	msgLeaveRoom   = "leave_room"
	msgCodeChange  = "code_change"
	msgCursorMove  = "cursor_move"
	msgChatMessage = "chat_message"
	msgAIHelp      = "ai_help"
)

type joinRoomMessage struct {
	RoomCode string `json:"room_code"`
}

type codeChangeMessage struct {
	RoomCode       string `json:"room_code"`
	Code           string `json:"code"`
	CursorPosition int    `json:"cursor_position"`
}

type cursorMoveMessage struct {
	RoomCode string `json:"room_code"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

type chatMessage struct {
	RoomCode string `json:"room_code"`
	Message  string `json:"message"`
}

type aiHelpMessage struct {
	RoomCode string `json:"room_code"`
	Question string `json:"question"`
}

// Client is a middleman between one websocket connection and the hub. The
// connection ID is its transient identity; UserID is the durable one.
type Client struct {
	Hub *Hub

	Conn *websocket.Conn

	ConnID   uuid.UUID
	UserID   uint
	UserName string

	// Buffered channel of outbound messages.
	Send chan []byte

	// Rooms this connection has joined, for disconnect cleanup.
	roomsMu sync.Mutex
	rooms   map[string]struct{}
}

// TrackRoom records that this connection joined a room.
func (c *Client) TrackRoom(roomCode string) {
	c.roomsMu.Lock()
	defer c.roomsMu.Unlock()
	c.rooms[roomCode] = struct{}{}
}

// UntrackRoom forgets a room after an explicit leave.
func (c *Client) UntrackRoom(roomCode string) {
	c.roomsMu.Lock()
	defer c.roomsMu.Unlock()
	delete(c.rooms, roomCode)
}

// Rooms returns the rooms this connection is currently joined to.
func (c *Client) Rooms() []string {
	c.roomsMu.Lock()
	defer c.roomsMu.Unlock()
	rooms := make([]string, 0, len(c.rooms))
	for code := range c.rooms {
		rooms = append(rooms, code)
	}
	return rooms
}

// readPump pumps messages from the websocket connection to the hub.
func (c *Client) readPump() {
	defer func() {
		c.Hub.handler.HandleDisconnect(c)
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Client", "Unexpected close", map[string]interface{}{
					"conn_id": c.ConnID,
					"error":   err.Error(),
				})
			}
			break
		}
		c.dispatch(message)
	}
}

func (c *Client) dispatch(message []byte) {
	var env Envelope
	if err := json.Unmarshal(message, &env); err != nil {
		c.Hub.SendToConn(c.ConnID, EventError, map[string]string{"message": "malformed message"})
		return
	}

	switch env.Type {
	case msgJoinRoom:
		var m joinRoomMessage
		if err := json.Unmarshal(env.Data, &m); err != nil {
			c.Hub.SendToConn(c.ConnID, EventError, map[string]string{"message": "malformed join_room payload"})
			return
		}
		c.Hub.handler.HandleJoin(c, m.RoomCode)

	case msgLeaveRoom:
		var m joinRoomMessage
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		c.Hub.handler.HandleLeave(c, m.RoomCode)

	case msgCodeChange:
		var m codeChangeMessage
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		c.Hub.handler.HandleCodeChange(c, m.RoomCode, m.Code, m.CursorPosition)

	case msgCursorMove:
		var m cursorMoveMessage
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		c.Hub.handler.HandleCursorMove(c, m.RoomCode, m.Line, m.Column)

	case msgChatMessage:
		var m chatMessage
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		c.Hub.handler.HandleChat(c, m.RoomCode, m.Message)

	case msgAIHelp:
		var m aiHelpMessage
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		c.Hub.handler.HandleAIHelp(c, m.RoomCode, m.Question)

	default:
		c.Hub.SendToConn(c.ConnID, EventError, map[string]string{"message": "unknown message type"})
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
