package contract

import (
	"context"

	"codementor-be/internal/entity"
	"codementor-be/internal/repository/specification"
)

type RoadmapRepository interface {
	Create(ctx context.Context, roadmap *entity.Roadmap) error
	Update(ctx context.Context, roadmap *entity.Roadmap) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Roadmap, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Roadmap, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateEnrollment(ctx context.Context, enrollment *entity.RoadmapEnrollment) error
	UpdateEnrollment(ctx context.Context, enrollment *entity.RoadmapEnrollment) error
	FindEnrollment(ctx context.Context, specs ...specification.Specification) (*entity.RoadmapEnrollment, error)
	FindEnrollments(ctx context.Context, specs ...specification.Specification) ([]*entity.RoadmapEnrollment, error)
}
