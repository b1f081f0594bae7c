package contract

import (
	"context"

	"codementor-be/internal/entity"
	"codementor-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateProfile(ctx context.Context, profile *entity.UserProfile) error
	UpdateProfile(ctx context.Context, profile *entity.UserProfile) error
	FindProfile(ctx context.Context, userId uint) (*entity.UserProfile, error)
	TopProfilesByXp(ctx context.Context, limit int) ([]*entity.UserProfile, error)
}
