package contract

import (
	"context"

	"codementor-be/internal/entity"
	"codementor-be/internal/repository/specification"
)

type GameResultRepository interface {
	Create(ctx context.Context, result *entity.GameResult) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GameResult, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GameResult, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
