package implementation

import (
	"context"

	"codementor-be/internal/entity"
	"codementor-be/internal/mapper"
	"codementor-be/internal/model"
	"codementor-be/internal/repository/contract"
	"codementor-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AIInteractionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AIInteractionMapper
}

func NewAIInteractionRepository(db *gorm.DB) contract.AIInteractionRepository {
	return &AIInteractionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAIInteractionMapper(),
	}
}

func (r *AIInteractionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AIInteractionRepositoryImpl) Create(ctx context.Context, interaction *entity.AIInteraction) error {
	m := r.mapper.ToModel(interaction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interaction = *r.mapper.ToEntity(m)
	return nil
}

func (r *AIInteractionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AIInteraction, error) {
	var models []*model.AIInteraction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AIInteractionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AIInteraction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
