package registry

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndRemoveMember(t *testing.T) {
	r := NewRegistry()
	alice := uuid.New()
	bob := uuid.New()

	r.AddMember("ROOM1", alice, Member{UserID: 1, Name: "alice"})
	r.AddMember("ROOM1", bob, Member{UserID: 2, Name: "bob"})

	assert.Equal(t, 2, r.MemberCount("ROOM1"))
	assert.ElementsMatch(t, []string{"alice", "bob"}, r.Members("ROOM1"))

	remaining, removed, ok := r.RemoveMember("ROOM1", alice)
	require.True(t, ok)
	assert.Equal(t, "alice", removed.Name)
	assert.Equal(t, []string{"bob"}, remaining)
	assert.Equal(t, 1, r.MemberCount("ROOM1"))
}

func TestRemoveLastMemberDeletesRoom(t *testing.T) {
	r := NewRegistry()
	conn := uuid.New()

	r.AddMember("ROOM1", conn, Member{UserID: 1, Name: "alice"})
	r.SetLatestCode("ROOM1", "print('hi')")

	remaining, _, ok := r.RemoveMember("ROOM1", conn)
	require.True(t, ok)
	assert.Empty(t, remaining)

	// The in-memory code goes with the room. A fresh join starts over from
	// the persisted session state.
	_, hasCode := r.LatestCode("ROOM1")
	assert.False(t, hasCode)
	assert.Equal(t, 0, r.MemberCount("ROOM1"))
}

func TestRemoveUnknownMember(t *testing.T) {
	r := NewRegistry()
	r.AddMember("ROOM1", uuid.New(), Member{UserID: 1, Name: "alice"})

	_, _, ok := r.RemoveMember("ROOM1", uuid.New())
	assert.False(t, ok)

	_, _, ok = r.RemoveMember("NOROOM", uuid.New())
	assert.False(t, ok)

	assert.Equal(t, 1, r.MemberCount("ROOM1"))
}

func TestLatestCodeLastWriteWins(t *testing.T) {
	r := NewRegistry()

	_, ok := r.LatestCode("ROOM1")
	assert.False(t, ok)

	r.SetLatestCode("ROOM1", "v1")
	r.SetLatestCode("ROOM1", "v2")

	code, ok := r.LatestCode("ROOM1")
	require.True(t, ok)
	assert.Equal(t, "v2", code)
}

func TestSetCursorRequiresMembership(t *testing.T) {
	r := NewRegistry()
	member := uuid.New()
	stranger := uuid.New()

	r.AddMember("ROOM1", member, Member{UserID: 1, Name: "alice"})

	r.SetCursor("ROOM1", member, CursorPosition{Line: 3, Column: 7})
	r.SetCursor("ROOM1", stranger, CursorPosition{Line: 1, Column: 1})
	r.SetCursor("NOROOM", member, CursorPosition{Line: 1, Column: 1})

	assert.True(t, r.HasMember("ROOM1", member))
	assert.False(t, r.HasMember("ROOM1", stranger))
}

func TestSameUserMultipleConnections(t *testing.T) {
	r := NewRegistry()
	tab1 := uuid.New()
	tab2 := uuid.New()

	r.AddMember("ROOM1", tab1, Member{UserID: 1, Name: "alice"})
	r.AddMember("ROOM1", tab2, Member{UserID: 1, Name: "alice"})

	assert.Equal(t, 2, r.MemberCount("ROOM1"))

	remaining, _, ok := r.RemoveMember("ROOM1", tab1)
	require.True(t, ok)
	assert.Equal(t, []string{"alice"}, remaining)
	assert.True(t, r.HasMember("ROOM1", tab2))
}

func TestConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			conn := uuid.New()
			r.AddMember("ROOM1", conn, Member{UserID: uint(n), Name: "user"})
			r.SetLatestCode("ROOM1", "code")
			r.SetCursor("ROOM1", conn, CursorPosition{Line: n, Column: n})
			r.Members("ROOM1")
			r.RemoveMember("ROOM1", conn)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, r.MemberCount("ROOM1"))
}
