package contract

import (
	"context"

	"codementor-be/internal/entity"
	"codementor-be/internal/repository/specification"
)

type AchievementRepository interface {
	Create(ctx context.Context, achievement *entity.Achievement) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Achievement, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Achievement, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateUnlock(ctx context.Context, unlock *entity.UserAchievement) error
	FindUnlock(ctx context.Context, specs ...specification.Specification) (*entity.UserAchievement, error)
	FindUnlocks(ctx context.Context, specs ...specification.Specification) ([]*entity.UserAchievement, error)
}
