package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"codementor-be/internal/dto"
	"codementor-be/internal/entity"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/mailer"
	"codementor-be/internal/repository/specification"
	"codementor-be/internal/repository/unitofwork"
	"codementor-be/pkg/events"
	pktNats "codementor-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userId uint) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uint, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// User and profile rows land together or not at all.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &entity.UserProfile{
		UserId:         user.Id,
		Level:          1,
		LastActiveDate: time.Now(),
	}
	if err := uow.UserRepository().CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Welcome email is auxiliary, never blocks registration.
	go func() {
		if emailErr := s.emailService.SendWelcome(user.Email, user.Name); emailErr != nil {
			fmt.Printf("Error sending welcome email: %v\n", emailErr)
		}
	}()

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewUserRegistered(user.Id, user.Email)); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_REGISTERED event: %v\n", err)
		}
	}

	return s.buildAuthResponse(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user)
}

func (s *authService) GetProfile(ctx context.Context, userId uint) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.UserRepository().FindProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrNotFound
	}
	return toProfileResponse(profile), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userId uint, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.UserRepository().FindProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrNotFound
	}

	profile.PreferredLanguages = req.PreferredLanguages
	profile.LearningGoals = req.LearningGoals
	if err := uow.UserRepository().UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func (s *authService) buildAuthResponse(user *entity.User) (*dto.AuthResponse, error) {
	claims := jwt.MapClaims{
		"user_id":   user.Id,
		"user_name": user.Name,
		"is_admin":  user.IsAdmin,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: signedToken,
		User: dto.UserResponse{
			Id:                user.Id,
			Name:              user.Name,
			Email:             user.Email,
			ProfilePictureUrl: user.ProfilePictureUrl,
			IsAdmin:           user.IsAdmin,
			LastLoginAt:       user.LastLoginAt,
			CreatedAt:         user.CreatedAt,
		},
	}, nil
}

func toProfileResponse(profile *entity.UserProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		UserId:             profile.UserId,
		Level:              profile.Level,
		XpPoints:           profile.XpPoints,
		BugsFixed:          profile.BugsFixed,
		GamesWon:           profile.GamesWon,
		CurrentStreak:      profile.CurrentStreak,
		PreferredLanguages: profile.PreferredLanguages,
		LearningGoals:      profile.LearningGoals,
		LastActiveDate:     profile.LastActiveDate,
	}
}
