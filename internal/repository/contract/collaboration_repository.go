package contract

import (
	"context"

	"codementor-be/internal/entity"
	"codementor-be/internal/repository/specification"
)

type CollaborationSessionRepository interface {
	Create(ctx context.Context, session *entity.CollaborationSession) error
	Update(ctx context.Context, session *entity.CollaborationSession) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollaborationSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollaborationSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateCode persists the latest code blob without touching the rest of
	// the row. Last write wins.
	UpdateCode(ctx context.Context, sessionId uint, code string) error
	RoomCodeExists(ctx context.Context, roomCode string) (bool, error)
}

type CollaborationParticipantRepository interface {
	Create(ctx context.Context, participant *entity.CollaborationParticipant) error
	Update(ctx context.Context, participant *entity.CollaborationParticipant) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollaborationParticipant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollaborationParticipant, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
