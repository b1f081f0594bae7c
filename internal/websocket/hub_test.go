package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"codementor-be/internal/pkg/logger"
	"codementor-be/internal/registry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type silentLogger struct{}

func (silentLogger) Debug(module, message string, details map[string]interface{}) {}
func (silentLogger) Info(module, message string, details map[string]interface{})  {}
func (silentLogger) Warn(module, message string, details map[string]interface{})  {}
func (silentLogger) Error(module, message string, details map[string]interface{}) {}
func (silentLogger) Sync() error                                                  { return nil }
func (silentLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

func newTestHub() (*Hub, *registry.Registry) {
	reg := registry.NewRegistry()
	return NewHub(reg, silentLogger{}), reg
}

func joinTestClient(hub *Hub, reg *registry.Registry, roomCode string, userID uint, name string, buffer int) *Client {
	client := &Client{
		Hub:      hub,
		ConnID:   uuid.New(),
		UserID:   userID,
		UserName: name,
		Send:     make(chan []byte, buffer),
		rooms:    make(map[string]struct{}),
	}
	hub.Register(client)
	reg.AddMember(roomCode, client.ConnID, registry.Member{UserID: userID, Name: name})
	return client
}

func decodeEnvelope(t *testing.T, payload []byte) (string, map[string]interface{}) {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(payload, &env))
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return env.Type, data
}

func TestBroadcastToRoomScopedToMembers(t *testing.T) {
	hub, reg := newTestHub()

	alice := joinTestClient(hub, reg, "ROOM1", 1, "alice", 4)
	bob := joinTestClient(hub, reg, "ROOM1", 2, "bob", 4)
	carol := joinTestClient(hub, reg, "ROOM2", 3, "carol", 4)

	hub.BroadcastToRoom("ROOM1", EventChatMessage, map[string]string{"message": "hi"})

	for _, client := range []*Client{alice, bob} {
		select {
		case payload := <-client.Send:
			eventType, data := decodeEnvelope(t, payload)
			assert.Equal(t, EventChatMessage, eventType)
			assert.Equal(t, "hi", data["message"])
		case <-time.After(time.Second):
			t.Fatal("expected broadcast to reach room member")
		}
	}

	select {
	case payload := <-carol.Send:
		t.Fatalf("member of another room got %s", payload)
	default:
	}
}

func TestBroadcastExceptSkipsSender(t *testing.T) {
	hub, reg := newTestHub()

	alice := joinTestClient(hub, reg, "ROOM1", 1, "alice", 4)
	bob := joinTestClient(hub, reg, "ROOM1", 2, "bob", 4)

	hub.BroadcastToRoomExcept("ROOM1", alice.ConnID, EventCodeUpdate, map[string]string{"code": "v2"})

	select {
	case payload := <-bob.Send:
		eventType, _ := decodeEnvelope(t, payload)
		assert.Equal(t, EventCodeUpdate, eventType)
	case <-time.After(time.Second):
		t.Fatal("expected broadcast to reach the other member")
	}

	select {
	case payload := <-alice.Send:
		t.Fatalf("sender got its own broadcast: %s", payload)
	default:
	}
}

func TestSendToConnTargetsOneConnection(t *testing.T) {
	hub, reg := newTestHub()

	alice := joinTestClient(hub, reg, "ROOM1", 1, "alice", 4)
	bob := joinTestClient(hub, reg, "ROOM1", 2, "bob", 4)

	hub.SendToConn(alice.ConnID, EventCodeUpdate, map[string]string{"room_code": "ROOM1"})

	select {
	case payload := <-alice.Send:
		eventType, data := decodeEnvelope(t, payload)
		assert.Equal(t, EventCodeUpdate, eventType)
		assert.Equal(t, "ROOM1", data["room_code"])
	case <-time.After(time.Second):
		t.Fatal("expected direct send to arrive")
	}

	select {
	case payload := <-bob.Send:
		t.Fatalf("other connection got direct send: %s", payload)
	default:
	}

	// Unknown connection IDs are a no-op.
	hub.SendToConn(uuid.New(), EventCodeUpdate, map[string]string{})
}

func TestSlowConsumerIsDropped(t *testing.T) {
	hub, reg := newTestHub()

	slow := joinTestClient(hub, reg, "ROOM1", 1, "slow", 1)
	fast := joinTestClient(hub, reg, "ROOM1", 2, "fast", 8)

	// Fill the slow client's buffer, then broadcast once more. The room must
	// not block; the slow connection gets unregistered instead.
	hub.BroadcastToRoom("ROOM1", EventChatMessage, map[string]string{"message": "1"})
	hub.BroadcastToRoom("ROOM1", EventChatMessage, map[string]string{"message": "2"})

	assert.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		_, ok := hub.clients[slow.ConnID]
		return !ok
	}, time.Second, 5*time.Millisecond, "slow consumer should be unregistered")

	// The fast client saw every frame.
	assert.Len(t, fast.Send, 2)
}

func TestUnregisterIsIdempotent(t *testing.T) {
	hub, reg := newTestHub()

	client := joinTestClient(hub, reg, "ROOM1", 1, "alice", 4)
	hub.Unregister(client)
	hub.Unregister(client) // second call must not close the channel again

	_, open := <-client.Send
	assert.False(t, open)
}
