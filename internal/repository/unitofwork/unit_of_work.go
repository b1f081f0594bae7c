package unitofwork

import (
	"context"

	"codementor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CollaborationSessionRepository() contract.CollaborationSessionRepository
	CollaborationParticipantRepository() contract.CollaborationParticipantRepository
	AchievementRepository() contract.AchievementRepository
	GameResultRepository() contract.GameResultRepository
	RoadmapRepository() contract.RoadmapRepository
	AIInteractionRepository() contract.AIInteractionRepository
}
