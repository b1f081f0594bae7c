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

type GameResultRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GameMapper
}

func NewGameResultRepository(db *gorm.DB) contract.GameResultRepository {
	return &GameResultRepositoryImpl{
		db:     db,
		mapper: mapper.NewGameMapper(),
	}
}

func (r *GameResultRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GameResultRepositoryImpl) Create(ctx context.Context, result *entity.GameResult) error {
	m := r.mapper.ToModel(result)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*result = *r.mapper.ToEntity(m)
	return nil
}

func (r *GameResultRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GameResult, error) {
	var m model.GameResult
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GameResultRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GameResult, error) {
	var models []*model.GameResult
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GameResultRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.GameResult{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
