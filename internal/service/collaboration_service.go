package service

import (
	"context"
	"encoding/json"
	"time"

	"codementor-be/internal/dto"
	"codementor-be/internal/entity"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/logger"
	"codementor-be/internal/registry"
	"codementor-be/internal/repository/specification"
	"codementor-be/internal/repository/unitofwork"
	"codementor-be/internal/websocket"
	"codementor-be/pkg/events"
	pktNats "codementor-be/pkg/nats"
	"codementor-be/pkg/roomcode"
)

type ICollaborationService interface {
	CreateSession(ctx context.Context, userId uint, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, roomCode string) (*dto.SessionResponse, error)
	ListPublicSessions(ctx context.Context) ([]*dto.SessionSummaryResponse, error)
	ListOwnSessions(ctx context.Context, userId uint) ([]*dto.SessionSummaryResponse, error)
	UpdateSession(ctx context.Context, userId uint, roomCode string, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, userId uint, isAdmin bool, roomCode string) error

	// REST counterparts of the realtime membership and code operations.
	JoinSession(ctx context.Context, userId uint, roomCode string) (*dto.SessionResponse, error)
	LeaveSession(ctx context.Context, userId uint, roomCode string) error
	UpdateCode(ctx context.Context, userId uint, roomCode, code string) error
}

// collaborationService drives both the REST surface for sessions and the
// realtime room protocol. It implements websocket.RoomEventHandler.
type collaborationService struct {
	uowFactory       unitofwork.RepositoryFactory
	hub              *websocket.Hub
	registry         *registry.Registry
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewCollaborationService(
	uowFactory unitofwork.RepositoryFactory,
	hub *websocket.Hub,
	reg *registry.Registry,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) *collaborationService {
	return &collaborationService{
		uowFactory:       uowFactory,
		hub:              hub,
		registry:         reg,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// REST surface

func (s *collaborationService) CreateSession(ctx context.Context, userId uint, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	code, err := roomcode.NewUnique(ctx, uow.CollaborationSessionRepository().RoomCodeExists)
	if err != nil {
		return nil, err
	}

	session := entity.CollaborationSession{
		RoomCode:    code,
		Name:        req.Name,
		Description: req.Description,
		OwnerId:     userId,
		Code:        req.Code,
		Language:    req.Language,
		IsActive:    true,
		IsPublic:    req.IsPublic,
		Status:      entity.SessionStatusActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	// The session and the owner's participant row land together or not at all.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CollaborationSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}
	owner := &entity.CollaborationParticipant{
		SessionId: session.Id,
		UserId:    userId,
		JoinedAt:  time.Now(),
		IsActive:  true,
	}
	if err := uow.CollaborationParticipantRepository().Create(ctx, owner); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewSessionCreated(session.RoomCode, userId, session.Language)); err != nil {
			s.logger.Warn("Collaboration", "Failed to publish SESSION_CREATED event", map[string]interface{}{
				"room_code": session.RoomCode,
				"error":     err.Error(),
			})
		}
	}

	return s.toSessionResponse(ctx, uow, &session)
}

func (s *collaborationService) GetSession(ctx context.Context, roomCode string) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findSession(ctx, uow, roomCode)
	if err != nil {
		return nil, err
	}
	return s.toSessionResponse(ctx, uow, session)
}

func (s *collaborationService) ListPublicSessions(ctx context.Context) ([]*dto.SessionSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.CollaborationSessionRepository().FindAll(ctx,
		specification.PublicOnly{},
		specification.ActiveOnly{},
		specification.WithOwner{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return s.toSummaries(sessions), nil
}

func (s *collaborationService) ListOwnSessions(ctx context.Context, userId uint) ([]*dto.SessionSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.CollaborationSessionRepository().FindAll(ctx,
		specification.ByOwnerID{OwnerID: userId},
		specification.WithOwner{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return s.toSummaries(sessions), nil
}

func (s *collaborationService) UpdateSession(ctx context.Context, userId uint, roomCode string, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findSession(ctx, uow, roomCode)
	if err != nil {
		return nil, err
	}
	if session.OwnerId != userId {
		return nil, apperrors.ErrPermissionDenied
	}

	session.Name = req.Name
	session.Description = req.Description
	session.IsPublic = req.IsPublic
	session.UpdatedAt = time.Now()
	if err := uow.CollaborationSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	return s.toSessionResponse(ctx, uow, session)
}

func (s *collaborationService) DeleteSession(ctx context.Context, userId uint, isAdmin bool, roomCode string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findSession(ctx, uow, roomCode)
	if err != nil {
		return err
	}
	if session.OwnerId != userId && !isAdmin {
		return apperrors.ErrPermissionDenied
	}

	if err := uow.CollaborationSessionRepository().Delete(ctx, session.Id); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewSessionDeleted(roomCode, userId)); err != nil {
			s.logger.Warn("Collaboration", "Failed to publish SESSION_DELETED event", map[string]interface{}{
				"room_code": roomCode,
				"error":     err.Error(),
			})
		}
	}
	return nil
}

func (s *collaborationService) JoinSession(ctx context.Context, userId uint, roomCode string) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findActiveSession(ctx, uow, roomCode)
	if err != nil {
		return nil, err
	}
	if err := s.upsertParticipant(ctx, uow, session.Id, userId); err != nil {
		return nil, err
	}
	return s.toSessionResponse(ctx, uow, session)
}

func (s *collaborationService) LeaveSession(ctx context.Context, userId uint, roomCode string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findActiveSession(ctx, uow, roomCode); err != nil {
		return err
	}
	return s.deactivateParticipant(ctx, uow, roomCode, userId)
}

// UpdateCode is the REST path for code writes. Last write wins, same as the
// realtime path.
func (s *collaborationService) UpdateCode(ctx context.Context, userId uint, roomCode, code string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findActiveSession(ctx, uow, roomCode)
	if err != nil {
		return err
	}

	participant, err := uow.CollaborationParticipantRepository().FindOne(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.ByUserID{UserID: userId},
		specification.Filter("is_active", true),
	)
	if err != nil {
		return err
	}
	if participant == nil {
		return apperrors.ErrPermissionDenied
	}

	if err := uow.CollaborationSessionRepository().UpdateCode(ctx, session.Id, code); err != nil {
		return err
	}

	// Keep connected members in sync with the out-of-band write.
	if s.registry.MemberCount(roomCode) > 0 {
		s.registry.SetLatestCode(roomCode, code)

		userName := ""
		if user, userErr := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId}); userErr == nil && user != nil {
			userName = user.Name
		}
		s.hub.BroadcastToRoom(roomCode, websocket.EventCodeUpdate, map[string]interface{}{
			"code":            code,
			"user_name":       userName,
			"cursor_position": 0,
		})
	}
	return nil
}

func (s *collaborationService) findSession(ctx context.Context, uow unitofwork.UnitOfWork, roomCode string) (*entity.CollaborationSession, error) {
	session, err := uow.CollaborationSessionRepository().FindOne(ctx,
		specification.ByRoomCode{RoomCode: roomCode},
		specification.WithOwner{},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.ErrNotFound
	}
	return session, nil
}

func (s *collaborationService) findActiveSession(ctx context.Context, uow unitofwork.UnitOfWork, roomCode string) (*entity.CollaborationSession, error) {
	session, err := uow.CollaborationSessionRepository().FindOne(ctx,
		specification.ByRoomCode{RoomCode: roomCode},
		specification.ActiveOnly{},
		specification.WithOwner{},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.ErrNotFound
	}
	return session, nil
}

func (s *collaborationService) toSessionResponse(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.CollaborationSession) (*dto.SessionResponse, error) {
	participants, err := uow.CollaborationParticipantRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.Filter("is_active", true),
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.SessionResponse{
		Id:               session.Id,
		RoomCode:         session.RoomCode,
		Name:             session.Name,
		Description:      session.Description,
		Language:         session.Language,
		Code:             session.Code,
		IsActive:         session.IsActive,
		IsPublic:         session.IsPublic,
		OwnerId:          session.OwnerId,
		ParticipantCount: len(participants),
		CreatedAt:        session.CreatedAt,
		UpdatedAt:        session.UpdatedAt,
	}
	if session.Owner != nil {
		resp.Owner = session.Owner.Name
	}
	for _, p := range participants {
		pr := dto.ParticipantResponse{
			UserId:   p.UserId,
			JoinedAt: p.JoinedAt,
			LeftAt:   p.LeftAt,
			IsActive: p.IsActive,
		}
		if p.User != nil {
			pr.Name = p.User.Name
		}
		resp.Participants = append(resp.Participants, pr)
	}
	return resp, nil
}

func (s *collaborationService) toSummaries(sessions []*entity.CollaborationSession) []*dto.SessionSummaryResponse {
	summaries := make([]*dto.SessionSummaryResponse, 0, len(sessions))
	for _, session := range sessions {
		summary := &dto.SessionSummaryResponse{
			Id:               session.Id,
			RoomCode:         session.RoomCode,
			Name:             session.Name,
			Language:         session.Language,
			IsPublic:         session.IsPublic,
			ParticipantCount: s.registry.MemberCount(session.RoomCode),
			CreatedAt:        session.CreatedAt,
		}
		if session.Owner != nil {
			summary.Owner = session.Owner.Name
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// Realtime room protocol (websocket.RoomEventHandler)

func (s *collaborationService) HandleJoin(client *websocket.Client, roomCode string) {
	ctx := context.Background()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.CollaborationSessionRepository().FindOne(ctx,
		specification.ByRoomCode{RoomCode: roomCode},
		specification.ActiveOnly{},
	)
	if err != nil {
		s.sendError(client, "room lookup failed")
		return
	}
	if session == nil {
		// No side effects on a failed join.
		s.sendError(client, "room not found")
		return
	}

	s.registry.AddMember(roomCode, client.ConnID, registry.Member{
		UserID: client.UserID,
		Name:   client.UserName,
	})
	client.TrackRoom(roomCode)

	if err := s.upsertParticipant(ctx, uow, session.Id, client.UserID); err != nil {
		s.logger.Error("Collaboration", "Participant upsert failed", map[string]interface{}{
			"room_code": roomCode,
			"user_id":   client.UserID,
			"error":     err.Error(),
		})
	}

	members := s.registry.Members(roomCode)
	s.hub.BroadcastToRoom(roomCode, websocket.EventUserJoined, map[string]interface{}{
		"user_name": client.UserName,
		"members":   members,
	})

	// Snapshot goes only to the joining connection, as a code_update so
	// clients handle it with the same path as live edits. Prefer the
	// in-memory code, fall back to the persisted blob.
	code, ok := s.registry.LatestCode(roomCode)
	if !ok {
		code = session.Code
	}
	s.hub.SendToConn(client.ConnID, websocket.EventCodeUpdate, map[string]interface{}{
		"room_code": roomCode,
		"code":      code,
		"language":  session.Language,
		"members":   members,
	})
}

func (s *collaborationService) HandleLeave(client *websocket.Client, roomCode string) {
	client.UntrackRoom(roomCode)
	s.leaveRoom(client, roomCode)
}

func (s *collaborationService) HandleDisconnect(client *websocket.Client) {
	// A dropped transport is a normal leave for every room the connection
	// was in.
	for _, roomCode := range client.Rooms() {
		s.leaveRoom(client, roomCode)
	}
}

func (s *collaborationService) leaveRoom(client *websocket.Client, roomCode string) {
	remaining, removed, ok := s.registry.RemoveMember(roomCode, client.ConnID)
	if !ok {
		s.sendError(client, "not a member of this room")
		return
	}

	// The shared participant row stays active until the user's last
	// connection is gone.
	if !s.registry.UserPresent(roomCode, removed.UserID) {
		ctx := context.Background()
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := s.deactivateParticipant(ctx, uow, roomCode, removed.UserID); err != nil {
			s.logger.Error("Collaboration", "Participant deactivate failed", map[string]interface{}{
				"room_code": roomCode,
				"user_id":   removed.UserID,
				"error":     err.Error(),
			})
		}
	}

	if len(remaining) > 0 {
		s.hub.BroadcastToRoom(roomCode, websocket.EventUserLeft, map[string]interface{}{
			"user_name": removed.Name,
			"members":   remaining,
		})
	}
}

func (s *collaborationService) HandleCodeChange(client *websocket.Client, roomCode, code string, cursorPosition int) {
	if !s.requireMembership(client, roomCode) {
		return
	}

	s.registry.SetLatestCode(roomCode, code)

	s.hub.BroadcastToRoomExcept(roomCode, client.ConnID, websocket.EventCodeUpdate, map[string]interface{}{
		"code":            code,
		"user_name":       client.UserName,
		"cursor_position": cursorPosition,
	})

	// Durable write rides the in-process queue so broadcast never waits on
	// the database.
	s.persistCodeAsync(roomCode, code)
}

func (s *collaborationService) persistCodeAsync(roomCode, code string) {
	ctx := context.Background()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.CollaborationSessionRepository().FindOne(ctx, specification.ByRoomCode{RoomCode: roomCode})
	if err != nil || session == nil {
		return
	}

	payload, err := json.Marshal(dto.PersistCodeMessage{SessionId: session.Id, Code: code})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("Collaboration", "Failed to enqueue code persist", map[string]interface{}{
			"room_code": roomCode,
			"error":     err.Error(),
		})
	}
}

func (s *collaborationService) HandleCursorMove(client *websocket.Client, roomCode string, line, column int) {
	if !s.requireMembership(client, roomCode) {
		return
	}

	s.registry.SetCursor(roomCode, client.ConnID, registry.CursorPosition{Line: line, Column: column})

	s.hub.BroadcastToRoomExcept(roomCode, client.ConnID, websocket.EventCursorUpdate, map[string]interface{}{
		"user_name": client.UserName,
		"line":      line,
		"column":    column,
	})
}

func (s *collaborationService) HandleChat(client *websocket.Client, roomCode, message string) {
	if !s.requireMembership(client, roomCode) {
		return
	}

	// Chat goes to everyone including the sender, so every member sees the
	// same ordered stream.
	s.hub.BroadcastToRoom(roomCode, websocket.EventChatMessage, map[string]interface{}{
		"user_name": client.UserName,
		"message":   message,
		"timestamp": time.Now().UTC(),
	})
}

func (s *collaborationService) HandleAIHelp(client *websocket.Client, roomCode, question string) {
	if !s.requireMembership(client, roomCode) {
		return
	}

	s.hub.BroadcastToRoom(roomCode, websocket.EventAIHelpRequested, map[string]interface{}{
		"user_name": client.UserName,
		"question":  question,
	})
}

func (s *collaborationService) requireMembership(client *websocket.Client, roomCode string) bool {
	if s.registry.HasMember(roomCode, client.ConnID) {
		return true
	}
	s.sendError(client, "not a member of this room")
	return false
}

func (s *collaborationService) sendError(client *websocket.Client, message string) {
	s.hub.SendToConn(client.ConnID, websocket.EventError, map[string]string{"message": message})
}

// upsertParticipant reactivates an existing row or creates one. A user
// rejoining never produces a duplicate.
func (s *collaborationService) upsertParticipant(ctx context.Context, uow unitofwork.UnitOfWork, sessionId, userId uint) error {
	repo := uow.CollaborationParticipantRepository()
	existing, err := repo.FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.IsActive = true
		existing.LeftAt = nil
		return repo.Update(ctx, existing)
	}
	return repo.Create(ctx, &entity.CollaborationParticipant{
		SessionId: sessionId,
		UserId:    userId,
		JoinedAt:  time.Now(),
		IsActive:  true,
	})
}

// deactivateParticipant closes the user's active row. Leaving without an
// active row is a permission error, same as writing code without one.
func (s *collaborationService) deactivateParticipant(ctx context.Context, uow unitofwork.UnitOfWork, roomCode string, userId uint) error {
	session, err := uow.CollaborationSessionRepository().FindOne(ctx, specification.ByRoomCode{RoomCode: roomCode})
	if err != nil {
		return err
	}
	if session == nil {
		return apperrors.ErrNotFound
	}
	repo := uow.CollaborationParticipantRepository()
	participant, err := repo.FindOne(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.ByUserID{UserID: userId},
		specification.Filter("is_active", true),
	)
	if err != nil {
		return err
	}
	if participant == nil {
		return apperrors.ErrPermissionDenied
	}
	now := time.Now()
	participant.IsActive = false
	participant.LeftAt = &now
	return repo.Update(ctx, participant)
}

var _ websocket.RoomEventHandler = (*collaborationService)(nil)
