package implementation

import (
	"context"
	"errors"

	"codementor-be/internal/entity"
	"codementor-be/internal/mapper"
	"codementor-be/internal/model"
	"codementor-be/internal/repository/contract"
	"codementor-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AchievementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AchievementMapper
}

func NewAchievementRepository(db *gorm.DB) contract.AchievementRepository {
	return &AchievementRepositoryImpl{
		db:     db,
		mapper: mapper.NewAchievementMapper(),
	}
}

func (r *AchievementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AchievementRepositoryImpl) Create(ctx context.Context, achievement *entity.Achievement) error {
	m := r.mapper.ToModel(achievement)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*achievement = *r.mapper.ToEntity(m)
	return nil
}

func (r *AchievementRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Achievement, error) {
	var m model.Achievement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AchievementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Achievement, error) {
	var models []*model.Achievement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AchievementRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Achievement{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AchievementRepositoryImpl) CreateUnlock(ctx context.Context, unlock *entity.UserAchievement) error {
	m := r.mapper.UserAchievementToModel(unlock)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*unlock = *r.mapper.UserAchievementToEntity(m)
	return nil
}

func (r *AchievementRepositoryImpl) FindUnlock(ctx context.Context, specs ...specification.Specification) (*entity.UserAchievement, error) {
	var m model.UserAchievement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.UserAchievementToEntity(&m), nil
}

func (r *AchievementRepositoryImpl) FindUnlocks(ctx context.Context, specs ...specification.Specification) ([]*entity.UserAchievement, error) {
	var models []*model.UserAchievement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.UserAchievementsToEntities(models), nil
}
