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

type RoadmapRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoadmapMapper
}

func NewRoadmapRepository(db *gorm.DB) contract.RoadmapRepository {
	return &RoadmapRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoadmapMapper(),
	}
}

func (r *RoadmapRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoadmapRepositoryImpl) Create(ctx context.Context, roadmap *entity.Roadmap) error {
	m := r.mapper.ToModel(roadmap)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*roadmap = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoadmapRepositoryImpl) Update(ctx context.Context, roadmap *entity.Roadmap) error {
	m := r.mapper.ToModel(roadmap)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *RoadmapRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Roadmap{}, id).Error
}

func (r *RoadmapRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Roadmap, error) {
	var m model.Roadmap
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RoadmapRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Roadmap, error) {
	var models []*model.Roadmap
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RoadmapRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Roadmap{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RoadmapRepositoryImpl) CreateEnrollment(ctx context.Context, enrollment *entity.RoadmapEnrollment) error {
	m := r.mapper.EnrollmentToModel(enrollment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*enrollment = *r.mapper.EnrollmentToEntity(m)
	return nil
}

func (r *RoadmapRepositoryImpl) UpdateEnrollment(ctx context.Context, enrollment *entity.RoadmapEnrollment) error {
	m := r.mapper.EnrollmentToModel(enrollment)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *RoadmapRepositoryImpl) FindEnrollment(ctx context.Context, specs ...specification.Specification) (*entity.RoadmapEnrollment, error) {
	var m model.RoadmapEnrollment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.EnrollmentToEntity(&m), nil
}

func (r *RoadmapRepositoryImpl) FindEnrollments(ctx context.Context, specs ...specification.Specification) ([]*entity.RoadmapEnrollment, error) {
	var models []*model.RoadmapEnrollment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.EnrollmentsToEntities(models), nil
}
