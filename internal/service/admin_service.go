package service

import (
	"context"
	"time"

	"codementor-be/internal/dto"
	"codementor-be/internal/entity"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/repository/specification"
	"codementor-be/internal/repository/unitofwork"
)

type IAdminService interface {
	ListUsers(ctx context.Context, limit, offset int) ([]*dto.AdminUserResponse, error)
	DeleteUser(ctx context.Context, userId uint) error
	ListSessions(ctx context.Context) ([]*dto.SessionSummaryResponse, error)
	DeleteSession(ctx context.Context, sessionId uint) error
	SetSessionActive(ctx context.Context, sessionId uint, active bool) error
	PlatformStats(ctx context.Context) (*dto.PlatformStatsResponse, error)
	CreateAchievement(ctx context.Context, req *dto.CreateAchievementRequest) (*dto.AchievementResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{uowFactory: uowFactory}
}

func (s *adminService) ListUsers(ctx context.Context, limit, offset int) ([]*dto.AdminUserResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx,
		specification.WithProfile{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		resp := &dto.AdminUserResponse{
			Id:          u.Id,
			Name:        u.Name,
			Email:       u.Email,
			IsAdmin:     u.IsAdmin,
			LastLoginAt: u.LastLoginAt,
			CreatedAt:   u.CreatedAt,
		}
		if u.Profile != nil {
			resp.Level = u.Profile.Level
			resp.XpPoints = u.Profile.XpPoints
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *adminService) DeleteUser(ctx context.Context, userId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrNotFound
	}
	return uow.UserRepository().Delete(ctx, userId)
}

func (s *adminService) ListSessions(ctx context.Context) ([]*dto.SessionSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.CollaborationSessionRepository().FindAll(ctx,
		specification.WithOwner{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.SessionSummaryResponse, 0, len(sessions))
	for _, session := range sessions {
		count, err := uow.CollaborationParticipantRepository().Count(ctx,
			specification.BySessionID{SessionID: session.Id},
			specification.Filter("is_active", true),
		)
		if err != nil {
			return nil, err
		}
		summary := &dto.SessionSummaryResponse{
			Id:               session.Id,
			RoomCode:         session.RoomCode,
			Name:             session.Name,
			Language:         session.Language,
			IsPublic:         session.IsPublic,
			ParticipantCount: int(count),
			CreatedAt:        session.CreatedAt,
		}
		if session.Owner != nil {
			summary.Owner = session.Owner.Name
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *adminService) DeleteSession(ctx context.Context, sessionId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.CollaborationSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if session == nil {
		return apperrors.ErrNotFound
	}
	return uow.CollaborationSessionRepository().Delete(ctx, sessionId)
}

func (s *adminService) SetSessionActive(ctx context.Context, sessionId uint, active bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.CollaborationSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if session == nil {
		return apperrors.ErrNotFound
	}
	session.IsActive = active
	session.UpdatedAt = time.Now()
	return uow.CollaborationSessionRepository().Update(ctx, session)
}

func (s *adminService) PlatformStats(ctx context.Context) (*dto.PlatformStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalSessions, err := uow.CollaborationSessionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	activeSessions, err := uow.CollaborationSessionRepository().Count(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	gamesPlayed, err := uow.GameResultRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	aiInteractions, err := uow.AIInteractionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	roadmaps, err := uow.RoadmapRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PlatformStatsResponse{
		TotalUsers:      totalUsers,
		TotalSessions:   totalSessions,
		ActiveSessions:  activeSessions,
		GamesPlayed:     gamesPlayed,
		AIInteractions:  aiInteractions,
		RoadmapsCreated: roadmaps,
	}, nil
}

func (s *adminService) CreateAchievement(ctx context.Context, req *dto.CreateAchievementRequest) (*dto.AchievementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	achievement := entity.Achievement{
		Name:             req.Name,
		Description:      req.Description,
		Icon:             req.Icon,
		Rarity:           req.Rarity,
		XpReward:         req.XpReward,
		RequirementType:  req.RequirementType,
		RequirementValue: req.RequirementValue,
	}
	if err := uow.AchievementRepository().Create(ctx, &achievement); err != nil {
		return nil, err
	}

	return &dto.AchievementResponse{
		Id:               achievement.Id,
		Name:             achievement.Name,
		Description:      achievement.Description,
		Icon:             achievement.Icon,
		Rarity:           achievement.Rarity,
		XpReward:         achievement.XpReward,
		RequirementType:  achievement.RequirementType,
		RequirementValue: achievement.RequirementValue,
	}, nil
}
