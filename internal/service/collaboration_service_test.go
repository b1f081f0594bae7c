package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"codementor-be/internal/dto"
	"codementor-be/internal/entity"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/logger"
	"codementor-be/internal/registry"
	"codementor-be/internal/repository/contract"
	"codementor-be/internal/repository/specification"
	"codementor-be/internal/repository/unitofwork"
	"codementor-be/internal/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fakes

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

type capturingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *capturingPublisher) published() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][]byte(nil), p.payloads...)
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	nextId   uint
	sessions map[uint]*entity.CollaborationSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uint]*entity.CollaborationSession)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.CollaborationSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextId++
	session.Id = r.nextId
	cp := *session
	r.sessions[session.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.CollaborationSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollaborationSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if sessionMatches(s, specs) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollaborationSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.CollaborationSession
	for _, s := range r.sessions {
		if sessionMatches(s, specs) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeSessionRepo) UpdateCode(ctx context.Context, sessionId uint, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[sessionId]; ok {
		s.Code = code
	}
	return nil
}

func (r *fakeSessionRepo) RoomCodeExists(ctx context.Context, roomCode string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.RoomCode == roomCode {
			return true, nil
		}
	}
	return false, nil
}

func sessionMatches(s *entity.CollaborationSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByRoomCode:
			if s.RoomCode != sp.RoomCode {
				return false
			}
		case specification.ByOwnerID:
			if s.OwnerId != sp.OwnerID {
				return false
			}
		case specification.ActiveOnly:
			if !s.IsActive {
				return false
			}
		case specification.PublicOnly:
			if !s.IsPublic {
				return false
			}
		}
	}
	return true
}

type fakeParticipantRepo struct {
	mu     sync.Mutex
	nextId uint
	rows   []*entity.CollaborationParticipant
}

func (r *fakeParticipantRepo) Create(ctx context.Context, participant *entity.CollaborationParticipant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextId++
	participant.Id = r.nextId
	cp := *participant
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeParticipantRepo) Update(ctx context.Context, participant *entity.CollaborationParticipant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.Id == participant.Id {
			cp := *participant
			r.rows[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeParticipantRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollaborationParticipant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if participantMatches(row, specs) {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeParticipantRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollaborationParticipant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.CollaborationParticipant
	for _, row := range r.rows {
		if participantMatches(row, specs) {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeParticipantRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeParticipantRepo) all() []*entity.CollaborationParticipant {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.CollaborationParticipant, 0, len(r.rows))
	for _, row := range r.rows {
		cp := *row
		out = append(out, &cp)
	}
	return out
}

func participantMatches(p *entity.CollaborationParticipant, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.BySessionID:
			if p.SessionId != sp.SessionID {
				return false
			}
		case specification.ByUserID:
			if p.UserId != sp.UserID {
				return false
			}
		case specification.FilterBy:
			if sp.Field == "is_active" && p.IsActive != sp.Value.(bool) {
				return false
			}
		}
	}
	return true
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uint]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error           { return nil }

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			if u, found := r.users[byId.ID]; found {
				cp := *u
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *fakeUserRepo) CreateProfile(ctx context.Context, profile *entity.UserProfile) error { return nil }
func (r *fakeUserRepo) UpdateProfile(ctx context.Context, profile *entity.UserProfile) error { return nil }
func (r *fakeUserRepo) FindProfile(ctx context.Context, userId uint) (*entity.UserProfile, error) {
	return nil, nil
}
func (r *fakeUserRepo) TopProfilesByXp(ctx context.Context, limit int) ([]*entity.UserProfile, error) {
	return nil, nil
}

type fakeUnitOfWork struct {
	sessions     *fakeSessionRepo
	participants *fakeParticipantRepo
	users        *fakeUserRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return u.users }
func (u *fakeUnitOfWork) CollaborationSessionRepository() contract.CollaborationSessionRepository {
	return u.sessions
}
func (u *fakeUnitOfWork) CollaborationParticipantRepository() contract.CollaborationParticipantRepository {
	return u.participants
}
func (u *fakeUnitOfWork) AchievementRepository() contract.AchievementRepository     { return nil }
func (u *fakeUnitOfWork) GameResultRepository() contract.GameResultRepository       { return nil }
func (u *fakeUnitOfWork) RoadmapRepository() contract.RoadmapRepository             { return nil }
func (u *fakeUnitOfWork) AIInteractionRepository() contract.AIInteractionRepository { return nil }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

// Fixture

type collabFixture struct {
	registry     *registry.Registry
	hub          *websocket.Hub
	svc          *collaborationService
	sessions     *fakeSessionRepo
	participants *fakeParticipantRepo
	users        *fakeUserRepo
	publisher    *capturingPublisher
}

func newCollabFixture(t *testing.T) *collabFixture {
	t.Helper()

	sessions := newFakeSessionRepo()
	participants := &fakeParticipantRepo{}
	users := &fakeUserRepo{users: make(map[uint]*entity.User)}
	factory := &fakeFactory{uow: &fakeUnitOfWork{sessions: sessions, participants: participants, users: users}}

	reg := registry.NewRegistry()
	hub := websocket.NewHub(reg, noopLogger{})
	publisher := &capturingPublisher{}

	svc := NewCollaborationService(factory, hub, reg, publisher, nil, noopLogger{})
	hub.SetHandler(svc)

	return &collabFixture{
		registry:     reg,
		hub:          hub,
		svc:          svc,
		sessions:     sessions,
		participants: participants,
		users:        users,
		publisher:    publisher,
	}
}

func (f *collabFixture) seedSession(roomCode, code, language string, ownerId uint) *entity.CollaborationSession {
	session := &entity.CollaborationSession{
		RoomCode: roomCode,
		Name:     "room " + roomCode,
		OwnerId:  ownerId,
		Code:     code,
		Language: language,
		IsActive: true,
		IsPublic: true,
		Status:   entity.SessionStatusActive,
	}
	_ = f.sessions.Create(context.Background(), session)
	return session
}

func (f *collabFixture) connect(userId uint, userName string) *websocket.Client {
	client := websocket.NewClient(f.hub, nil, userId, userName)
	f.hub.Register(client)
	return client
}

func readEvent(t *testing.T, client *websocket.Client, wantType string) map[string]interface{} {
	t.Helper()
	select {
	case payload := <-client.Send:
		var env websocket.Envelope
		require.NoError(t, json.Unmarshal(payload, &env))
		require.Equal(t, wantType, env.Type)
		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		return data
	case <-time.After(time.Second):
		t.Fatalf("expected %q event, got none", wantType)
		return nil
	}
}

func assertNoEvent(t *testing.T, client *websocket.Client) {
	t.Helper()
	select {
	case payload := <-client.Send:
		t.Fatalf("expected no event, got %s", payload)
	default:
	}
}

func drainEvents(client *websocket.Client) {
	for {
		select {
		case <-client.Send:
		default:
			return
		}
	}
}

// REST surface

func TestCreateSession(t *testing.T) {
	f := newCollabFixture(t)

	resp, err := f.svc.CreateSession(context.Background(), 7, &dto.CreateSessionRequest{
		Name:     "pairing",
		Language: "go",
		Code:     "package main",
		IsPublic: true,
	})
	require.NoError(t, err)

	assert.Len(t, resp.RoomCode, 12)
	assert.Equal(t, "pairing", resp.Name)
	assert.Equal(t, uint(7), resp.OwnerId)
	assert.True(t, resp.IsActive)

	// The owner starts out as an active participant.
	assert.Equal(t, 1, resp.ParticipantCount)
	rows := f.participants.all()
	require.Len(t, rows, 1)
	assert.Equal(t, uint(7), rows[0].UserId)
	assert.True(t, rows[0].IsActive)

	// The room code must resolve back to the session.
	got, err := f.svc.GetSession(context.Background(), resp.RoomCode)
	require.NoError(t, err)
	assert.Equal(t, resp.Id, got.Id)
}

func TestGetSessionNotFound(t *testing.T) {
	f := newCollabFixture(t)

	_, err := f.svc.GetSession(context.Background(), "missing00000")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateSessionOwnerOnly(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 7)

	req := &dto.UpdateSessionRequest{Name: "renamed", IsPublic: false}

	_, err := f.svc.UpdateSession(context.Background(), 8, "abc123def456", req)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	resp, err := f.svc.UpdateSession(context.Background(), 7, "abc123def456", req)
	require.NoError(t, err)
	assert.Equal(t, "renamed", resp.Name)
	assert.False(t, resp.IsPublic)
}

func TestDeleteSessionOwnerOrAdmin(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 7)

	err := f.svc.DeleteSession(context.Background(), 8, false, "abc123def456")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// An admin may delete someone else's session.
	err = f.svc.DeleteSession(context.Background(), 8, true, "abc123def456")
	require.NoError(t, err)

	err = f.svc.DeleteSession(context.Background(), 7, false, "abc123def456")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListPublicSessionsFiltersPrivateAndInactive(t *testing.T) {
	f := newCollabFixture(t)
	public := f.seedSession("aaaaaaaaaaaa", "", "go", 1)

	private := f.seedSession("bbbbbbbbbbbb", "", "go", 1)
	private.IsPublic = false
	_ = f.sessions.Update(context.Background(), private)

	ended := f.seedSession("cccccccccccc", "", "go", 1)
	ended.IsActive = false
	_ = f.sessions.Update(context.Background(), ended)

	out, err := f.svc.ListPublicSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, public.RoomCode, out[0].RoomCode)
}

func TestJoinAndLeaveSessionRest(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 1)

	resp, err := f.svc.JoinSession(context.Background(), 2, "abc123def456")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ParticipantCount)

	// Joining twice reuses the row.
	resp, err = f.svc.JoinSession(context.Background(), 2, "abc123def456")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ParticipantCount)
	require.Len(t, f.participants.all(), 1)

	require.NoError(t, f.svc.LeaveSession(context.Background(), 2, "abc123def456"))
	rows := f.participants.all()
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsActive)
	assert.NotNil(t, rows[0].LeftAt)

	_, err = f.svc.JoinSession(context.Background(), 2, "missing00000")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLeaveSessionWithoutActiveParticipantRejected(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 1)

	// Never joined.
	err := f.svc.LeaveSession(context.Background(), 2, "abc123def456")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	require.Empty(t, f.participants.all())

	// A second leave finds no active row either.
	_, err = f.svc.JoinSession(context.Background(), 2, "abc123def456")
	require.NoError(t, err)
	require.NoError(t, f.svc.LeaveSession(context.Background(), 2, "abc123def456"))
	err = f.svc.LeaveSession(context.Background(), 2, "abc123def456")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateCodeRequiresActiveParticipant(t *testing.T) {
	f := newCollabFixture(t)
	session := f.seedSession("abc123def456", "v1", "go", 1)

	err := f.svc.UpdateCode(context.Background(), 2, "abc123def456", "v2")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Equal(t, "v1", f.sessions.sessions[session.Id].Code)

	_, err = f.svc.JoinSession(context.Background(), 2, "abc123def456")
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateCode(context.Background(), 2, "abc123def456", "v2"))
	assert.Equal(t, "v2", f.sessions.sessions[session.Id].Code)
}

func TestUpdateCodeBroadcastsToConnectedMembers(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "v1", "go", 1)
	f.users.users[2] = &entity.User{Id: 2, Name: "bob"}

	alice := f.connect(1, "alice")
	f.svc.HandleJoin(alice, "abc123def456")
	drainEvents(alice)

	_, err := f.svc.JoinSession(context.Background(), 2, "abc123def456")
	require.NoError(t, err)
	require.NoError(t, f.svc.UpdateCode(context.Background(), 2, "abc123def456", "v2"))

	update := readEvent(t, alice, websocket.EventCodeUpdate)
	assert.Equal(t, "v2", update["code"])
	assert.Equal(t, "bob", update["user_name"])

	code, ok := f.registry.LatestCode("abc123def456")
	require.True(t, ok)
	assert.Equal(t, "v2", code)
}

// Realtime room protocol

func TestJoinDeliversSnapshotOnlyToJoiner(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "print('hi')", "python", 1)

	alice := f.connect(1, "alice")
	f.svc.HandleJoin(alice, "abc123def456")

	joined := readEvent(t, alice, websocket.EventUserJoined)
	assert.Equal(t, "alice", joined["user_name"])

	state := readEvent(t, alice, websocket.EventCodeUpdate)
	assert.Equal(t, "abc123def456", state["room_code"])
	assert.Equal(t, "print('hi')", state["code"])
	assert.Equal(t, "python", state["language"])
	assert.ElementsMatch(t, []interface{}{"alice"}, state["members"])

	bob := f.connect(2, "bob")
	f.svc.HandleJoin(bob, "abc123def456")

	// Both see the membership change, only bob gets the snapshot.
	joined = readEvent(t, alice, websocket.EventUserJoined)
	assert.Equal(t, "bob", joined["user_name"])
	assertNoEvent(t, alice)

	readEvent(t, bob, websocket.EventUserJoined)
	state = readEvent(t, bob, websocket.EventCodeUpdate)
	assert.ElementsMatch(t, []interface{}{"alice", "bob"}, state["members"])

	rows := f.participants.all()
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.True(t, row.IsActive)
		assert.Nil(t, row.LeftAt)
	}
}

func TestJoinUnknownRoomHasNoSideEffects(t *testing.T) {
	f := newCollabFixture(t)

	client := f.connect(1, "alice")
	f.svc.HandleJoin(client, "nosuchroom00")

	errEvent := readEvent(t, client, websocket.EventError)
	assert.Equal(t, "room not found", errEvent["message"])

	assert.Equal(t, 0, f.registry.MemberCount("nosuchroom00"))
	assert.Empty(t, client.Rooms())
	assert.Empty(t, f.participants.all())
}

func TestJoinInactiveRoomRejected(t *testing.T) {
	f := newCollabFixture(t)
	session := f.seedSession("abc123def456", "", "go", 1)
	session.IsActive = false
	_ = f.sessions.Update(context.Background(), session)

	client := f.connect(1, "alice")
	f.svc.HandleJoin(client, "abc123def456")

	errEvent := readEvent(t, client, websocket.EventError)
	assert.Equal(t, "room not found", errEvent["message"])
	assert.Equal(t, 0, f.registry.MemberCount("abc123def456"))
}

func TestCodeChangeBroadcastSkipsSenderAndPersists(t *testing.T) {
	f := newCollabFixture(t)
	session := f.seedSession("abc123def456", "v1", "go", 1)

	alice := f.connect(1, "alice")
	bob := f.connect(2, "bob")
	f.svc.HandleJoin(alice, "abc123def456")
	f.svc.HandleJoin(bob, "abc123def456")
	drainEvents(alice)
	drainEvents(bob)

	f.svc.HandleCodeChange(alice, "abc123def456", "v2", 14)

	update := readEvent(t, bob, websocket.EventCodeUpdate)
	assert.Equal(t, "v2", update["code"])
	assert.Equal(t, "alice", update["user_name"])
	assert.Equal(t, float64(14), update["cursor_position"])
	assertNoEvent(t, alice)

	code, ok := f.registry.LatestCode("abc123def456")
	require.True(t, ok)
	assert.Equal(t, "v2", code)

	payloads := f.publisher.published()
	require.Len(t, payloads, 1)
	var msg dto.PersistCodeMessage
	require.NoError(t, json.Unmarshal(payloads[0], &msg))
	assert.Equal(t, session.Id, msg.SessionId)
	assert.Equal(t, "v2", msg.Code)

	// A later joiner gets the in-memory code, not the stale persisted blob.
	carol := f.connect(3, "carol")
	f.svc.HandleJoin(carol, "abc123def456")
	readEvent(t, carol, websocket.EventUserJoined)
	state := readEvent(t, carol, websocket.EventCodeUpdate)
	assert.Equal(t, "v2", state["code"])
}

func TestCodeChangeRequiresMembership(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "v1", "go", 1)

	member := f.connect(1, "alice")
	f.svc.HandleJoin(member, "abc123def456")
	drainEvents(member)

	stranger := f.connect(2, "mallory")
	f.svc.HandleCodeChange(stranger, "abc123def456", "pwned", 0)

	errEvent := readEvent(t, stranger, websocket.EventError)
	assert.Equal(t, "not a member of this room", errEvent["message"])
	assertNoEvent(t, member)

	_, ok := f.registry.LatestCode("abc123def456")
	assert.False(t, ok)
	assert.Empty(t, f.publisher.published())
}

func TestCursorMoveGoesToOthers(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 1)

	alice := f.connect(1, "alice")
	bob := f.connect(2, "bob")
	f.svc.HandleJoin(alice, "abc123def456")
	f.svc.HandleJoin(bob, "abc123def456")
	drainEvents(alice)
	drainEvents(bob)

	f.svc.HandleCursorMove(alice, "abc123def456", 10, 4)

	update := readEvent(t, bob, websocket.EventCursorUpdate)
	assert.Equal(t, "alice", update["user_name"])
	assert.Equal(t, float64(10), update["line"])
	assert.Equal(t, float64(4), update["column"])
	assertNoEvent(t, alice)
}

func TestChatGoesToEveryoneIncludingSender(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 1)

	alice := f.connect(1, "alice")
	bob := f.connect(2, "bob")
	f.svc.HandleJoin(alice, "abc123def456")
	f.svc.HandleJoin(bob, "abc123def456")
	drainEvents(alice)
	drainEvents(bob)

	f.svc.HandleChat(alice, "abc123def456", "hello")

	for _, client := range []*websocket.Client{alice, bob} {
		msg := readEvent(t, client, websocket.EventChatMessage)
		assert.Equal(t, "alice", msg["user_name"])
		assert.Equal(t, "hello", msg["message"])
		assert.NotEmpty(t, msg["timestamp"])
	}
}

func TestAIHelpBroadcastToRoom(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 1)

	alice := f.connect(1, "alice")
	bob := f.connect(2, "bob")
	f.svc.HandleJoin(alice, "abc123def456")
	f.svc.HandleJoin(bob, "abc123def456")
	drainEvents(alice)
	drainEvents(bob)

	f.svc.HandleAIHelp(alice, "abc123def456", "why does this panic?")

	for _, client := range []*websocket.Client{alice, bob} {
		evt := readEvent(t, client, websocket.EventAIHelpRequested)
		assert.Equal(t, "alice", evt["user_name"])
		assert.Equal(t, "why does this panic?", evt["question"])
	}
}

func TestLeaveDeactivatesParticipantAndNotifiesRoom(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 1)

	alice := f.connect(1, "alice")
	bob := f.connect(2, "bob")
	f.svc.HandleJoin(alice, "abc123def456")
	f.svc.HandleJoin(bob, "abc123def456")
	drainEvents(alice)
	drainEvents(bob)

	f.svc.HandleLeave(alice, "abc123def456")

	left := readEvent(t, bob, websocket.EventUserLeft)
	assert.Equal(t, "alice", left["user_name"])
	assert.ElementsMatch(t, []interface{}{"bob"}, left["members"])
	assertNoEvent(t, alice)

	assert.Empty(t, alice.Rooms())
	assert.Equal(t, 1, f.registry.MemberCount("abc123def456"))

	rows := f.participants.all()
	require.Len(t, rows, 2)
	for _, row := range rows {
		if row.UserId == 1 {
			assert.False(t, row.IsActive)
			assert.NotNil(t, row.LeftAt)
		} else {
			assert.True(t, row.IsActive)
		}
	}
}

func TestLeaveWithoutJoinGetsErrorReply(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 1)

	member := f.connect(1, "alice")
	f.svc.HandleJoin(member, "abc123def456")
	drainEvents(member)

	stranger := f.connect(2, "mallory")
	f.svc.HandleLeave(stranger, "abc123def456")

	errEvent := readEvent(t, stranger, websocket.EventError)
	assert.Equal(t, "not a member of this room", errEvent["message"])
	assertNoEvent(t, member)

	// No participant row was touched.
	rows := f.participants.all()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsActive)
}

func TestRejoinReactivatesParticipantRow(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 1)

	alice := f.connect(1, "alice")
	f.svc.HandleJoin(alice, "abc123def456")
	f.svc.HandleLeave(alice, "abc123def456")
	drainEvents(alice)

	f.svc.HandleJoin(alice, "abc123def456")
	drainEvents(alice)

	rows := f.participants.all()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsActive)
	assert.Nil(t, rows[0].LeftAt)
}

func TestMultiTabKeepsParticipantActiveUntilLastLeave(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 1)

	tab1 := f.connect(1, "alice")
	tab2 := f.connect(1, "alice")
	f.svc.HandleJoin(tab1, "abc123def456")
	f.svc.HandleJoin(tab2, "abc123def456")
	drainEvents(tab1)
	drainEvents(tab2)

	// Both tabs share a single participant row.
	rows := f.participants.all()
	require.Len(t, rows, 1)

	f.svc.HandleLeave(tab1, "abc123def456")
	drainEvents(tab2)

	rows = f.participants.all()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsActive, "row stays active while another tab remains")

	f.svc.HandleLeave(tab2, "abc123def456")

	rows = f.participants.all()
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsActive)
	assert.NotNil(t, rows[0].LeftAt)
	assert.Equal(t, 0, f.registry.MemberCount("abc123def456"))
}

func TestDisconnectLeavesEveryRoom(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("aaaaaaaaaaaa", "", "go", 1)
	f.seedSession("bbbbbbbbbbbb", "", "go", 1)

	alice := f.connect(1, "alice")
	f.svc.HandleJoin(alice, "aaaaaaaaaaaa")
	f.svc.HandleJoin(alice, "bbbbbbbbbbbb")
	drainEvents(alice)

	f.svc.HandleDisconnect(alice)

	assert.Equal(t, 0, f.registry.MemberCount("aaaaaaaaaaaa"))
	assert.Equal(t, 0, f.registry.MemberCount("bbbbbbbbbbbb"))
	for _, row := range f.participants.all() {
		assert.False(t, row.IsActive)
	}
}

func TestSessionResponseCountsActiveParticipants(t *testing.T) {
	f := newCollabFixture(t)
	f.seedSession("abc123def456", "", "go", 1)

	alice := f.connect(1, "alice")
	bob := f.connect(2, "bob")
	f.svc.HandleJoin(alice, "abc123def456")
	f.svc.HandleJoin(bob, "abc123def456")
	f.svc.HandleLeave(bob, "abc123def456")

	resp, err := f.svc.GetSession(context.Background(), "abc123def456")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ParticipantCount)
}
