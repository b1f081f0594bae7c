package registry

import (
	"sync"

	"github.com/google/uuid"
)

// Member is one live connection inside a room. A user joining from two tabs
// shows up as two members with the same UserID.
type Member struct {
	UserID uint
	Name   string
}

// CursorPosition is the last reported cursor for a connection.
type CursorPosition struct {
	Line   int
	Column int
}

type room struct {
	members map[uuid.UUID]Member
	cursors map[uuid.UUID]CursorPosition

	latestCode string
	hasCode    bool
}

// Registry tracks live room state in memory: who is connected to which room,
// the freshest code text seen, and cursor positions. It is the fast path the
// websocket hub reads from; durable state lives in the session store.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*room
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*room),
	}
}

// EnsureRoom creates the in-memory entry for roomCode if absent.
func (r *Registry) EnsureRoom(roomCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLocked(roomCode)
}

func (r *Registry) ensureLocked(roomCode string) *room {
	rm, ok := r.rooms[roomCode]
	if !ok {
		rm = &room{
			members: make(map[uuid.UUID]Member),
			cursors: make(map[uuid.UUID]CursorPosition),
		}
		r.rooms[roomCode] = rm
	}
	return rm
}

// AddMember registers a connection in a room, creating the room entry on
// first join.
func (r *Registry) AddMember(roomCode string, connID uuid.UUID, member Member) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm := r.ensureLocked(roomCode)
	rm.members[connID] = member
}

// RemoveMember drops a connection from a room and returns the names of the
// members still present. When the last member leaves the room entry is
// deleted, so a future join starts from the persisted session state.
func (r *Registry) RemoveMember(roomCode string, connID uuid.UUID) (remaining []string, removed Member, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm, found := r.rooms[roomCode]
	if !found {
		return nil, Member{}, false
	}
	removed, ok = rm.members[connID]
	if !ok {
		return nil, Member{}, false
	}
	delete(rm.members, connID)
	delete(rm.cursors, connID)

	if len(rm.members) == 0 {
		delete(r.rooms, roomCode)
		return nil, removed, true
	}

	remaining = make([]string, 0, len(rm.members))
	for _, m := range rm.members {
		remaining = append(remaining, m.Name)
	}
	return remaining, removed, true
}

// SetLatestCode records the freshest code text for a room. Last write wins.
func (r *Registry) SetLatestCode(roomCode string, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm := r.ensureLocked(roomCode)
	rm.latestCode = code
	rm.hasCode = true
}

// LatestCode returns the in-memory code for a room. ok is false when no
// code_change has been seen since the room entry was created.
func (r *Registry) LatestCode(roomCode string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, found := r.rooms[roomCode]
	if !found || !rm.hasCode {
		return "", false
	}
	return rm.latestCode, true
}

// SetCursor records a connection's cursor position.
func (r *Registry) SetCursor(roomCode string, connID uuid.UUID, pos CursorPosition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, found := r.rooms[roomCode]
	if !found {
		return
	}
	if _, isMember := rm.members[connID]; !isMember {
		return
	}
	rm.cursors[connID] = pos
}

// Members returns the names of everyone currently in the room.
func (r *Registry) Members(roomCode string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, found := r.rooms[roomCode]
	if !found {
		return nil
	}
	names := make([]string, 0, len(rm.members))
	for _, m := range rm.members {
		names = append(names, m.Name)
	}
	return names
}

// MemberConns returns the connection IDs currently in the room. The hub uses
// this to resolve fan-out targets.
func (r *Registry) MemberConns(roomCode string) []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, found := r.rooms[roomCode]
	if !found {
		return nil
	}
	conns := make([]uuid.UUID, 0, len(rm.members))
	for id := range rm.members {
		conns = append(conns, id)
	}
	return conns
}

// MemberCount returns the number of live connections in a room.
func (r *Registry) MemberCount(roomCode string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, found := r.rooms[roomCode]
	if !found {
		return 0
	}
	return len(rm.members)
}

// UserPresent reports whether any connection of the given user remains in
// the room. The durable participant row stays active while this is true.
func (r *Registry) UserPresent(roomCode string, userID uint) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, found := r.rooms[roomCode]
	if !found {
		return false
	}
	for _, m := range rm.members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// HasMember reports whether a connection is currently joined to a room.
func (r *Registry) HasMember(roomCode string, connID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, found := r.rooms[roomCode]
	if !found {
		return false
	}
	_, isMember := rm.members[connID]
	return isMember
}
