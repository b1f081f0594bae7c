package contract

import (
	"context"

	"codementor-be/internal/entity"
	"codementor-be/internal/repository/specification"
)

type AIInteractionRepository interface {
	Create(ctx context.Context, interaction *entity.AIInteraction) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AIInteraction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
