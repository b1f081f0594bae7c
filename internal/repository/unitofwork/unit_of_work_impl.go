package unitofwork

import (
	"context"
	"fmt"

	"codementor-be/internal/repository/contract"
	"codementor-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // the active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CollaborationSessionRepository() contract.CollaborationSessionRepository {
	return implementation.NewCollaborationSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CollaborationParticipantRepository() contract.CollaborationParticipantRepository {
	return implementation.NewCollaborationParticipantRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AchievementRepository() contract.AchievementRepository {
	return implementation.NewAchievementRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GameResultRepository() contract.GameResultRepository {
	return implementation.NewGameResultRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RoadmapRepository() contract.RoadmapRepository {
	return implementation.NewRoadmapRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AIInteractionRepository() contract.AIInteractionRepository {
	return implementation.NewAIInteractionRepository(u.getDB())
}
