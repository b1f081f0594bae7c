package implementation

import (
	"context"
	"errors"
	"time"

	"codementor-be/internal/entity"
	"codementor-be/internal/mapper"
	"codementor-be/internal/model"
	"codementor-be/internal/repository/contract"
	"codementor-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CollaborationSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CollaborationMapper
}

func NewCollaborationSessionRepository(db *gorm.DB) contract.CollaborationSessionRepository {
	return &CollaborationSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCollaborationMapper(),
	}
}

func (r *CollaborationSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CollaborationSessionRepositoryImpl) Create(ctx context.Context, session *entity.CollaborationSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *CollaborationSessionRepositoryImpl) Update(ctx context.Context, session *entity.CollaborationSession) error {
	m := r.mapper.ToModel(session)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *CollaborationSessionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CollaborationSession{}, id).Error
}

func (r *CollaborationSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollaborationSession, error) {
	var m model.CollaborationSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CollaborationSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollaborationSession, error) {
	var models []*model.CollaborationSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CollaborationSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CollaborationSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CollaborationSessionRepositoryImpl) UpdateCode(ctx context.Context, sessionId uint, code string) error {
	return r.db.WithContext(ctx).
		Model(&model.CollaborationSession{}).
		Where("id = ?", sessionId).
		Updates(map[string]interface{}{
			"code":       code,
			"updated_at": time.Now(),
		}).Error
}

func (r *CollaborationSessionRepositoryImpl) RoomCodeExists(ctx context.Context, roomCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CollaborationSession{}).
		Where("room_code = ?", roomCode).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type CollaborationParticipantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CollaborationMapper
}

func NewCollaborationParticipantRepository(db *gorm.DB) contract.CollaborationParticipantRepository {
	return &CollaborationParticipantRepositoryImpl{
		db:     db,
		mapper: mapper.NewCollaborationMapper(),
	}
}

func (r *CollaborationParticipantRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CollaborationParticipantRepositoryImpl) Create(ctx context.Context, participant *entity.CollaborationParticipant) error {
	m := r.mapper.ParticipantToModel(participant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*participant = *r.mapper.ParticipantToEntity(m)
	return nil
}

func (r *CollaborationParticipantRepositoryImpl) Update(ctx context.Context, participant *entity.CollaborationParticipant) error {
	m := r.mapper.ParticipantToModel(participant)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *CollaborationParticipantRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollaborationParticipant, error) {
	var m model.CollaborationParticipant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ParticipantToEntity(&m), nil
}

func (r *CollaborationParticipantRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollaborationParticipant, error) {
	var models []*model.CollaborationParticipant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ParticipantsToEntities(models), nil
}

func (r *CollaborationParticipantRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CollaborationParticipant{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
