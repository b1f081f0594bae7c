package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"codementor-be/internal/dto"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/logger"
	"codementor-be/internal/repository/specification"
	"codementor-be/internal/repository/unitofwork"
	"codementor-be/pkg/gamification"

	"github.com/redis/go-redis/v9"
)

const (
	leaderboardCacheKey = "leaderboard:top"
	leaderboardCacheTTL = time.Minute
	leaderboardSize     = 10
)

type IDashboardService interface {
	GetStats(ctx context.Context, userId uint) (*dto.DashboardStatsResponse, error)
	GetRecentActivity(ctx context.Context, userId uint, limit int) ([]*dto.ActivityItemResponse, error)
	GetLeaderboard(ctx context.Context) ([]*dto.LeaderboardEntryResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	rdb        *redis.Client
	logger     logger.ILogger
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, rdb *redis.Client, log logger.ILogger) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		rdb:        rdb,
		logger:     log,
	}
}

func (s *dashboardService) GetStats(ctx context.Context, userId uint) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserRepository().FindProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrNotFound
	}

	gamesPlayed, err := uow.GameResultRepository().Count(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}
	aiCount, err := uow.AIInteractionRepository().Count(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}
	sessionsOwned, err := uow.CollaborationSessionRepository().Count(ctx, specification.ByOwnerID{OwnerID: userId})
	if err != nil {
		return nil, err
	}

	var averageScore float64
	results, err := uow.GameResultRepository().FindAll(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		total := 0
		for _, r := range results {
			total += r.Score
		}
		averageScore = float64(total) / float64(len(results))
	}

	totalAchievements, err := uow.AchievementRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	unlocks, err := uow.AchievementRepository().FindUnlocks(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}
	achievementRate := 0
	if totalAchievements > 0 {
		achievementRate = len(unlocks) * 100 / int(totalAchievements)
	}

	// XP needed to reach the next level under xp = 50*(level)^2.
	nextLevelXP := 50 * profile.Level * profile.Level

	return &dto.DashboardStatsResponse{
		Level:           profile.Level,
		XpPoints:        profile.XpPoints,
		XpToNextLevel:   max(nextLevelXP-profile.XpPoints, 0),
		BugsFixed:       profile.BugsFixed,
		GamesWon:        profile.GamesWon,
		GamesPlayed:     gamesPlayed,
		CurrentStreak:   profile.CurrentStreak,
		AIInteractions:  aiCount,
		AverageScore:    averageScore,
		SessionsOwned:   sessionsOwned,
		AchievementRate: achievementRate,
	}, nil
}

func (s *dashboardService) GetRecentActivity(ctx context.Context, userId uint, limit int) ([]*dto.ActivityItemResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	results, err := uow.GameResultRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "completed_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	activity := make([]*dto.ActivityItemResponse, 0, len(results))
	for _, r := range results {
		activity = append(activity, &dto.ActivityItemResponse{
			Type:        r.GameType,
			Description: fmt.Sprintf("Scored %d on %s (%s)", r.Score, r.GameType, r.Difficulty),
			XpEarned:    r.XpEarned,
			OccurredAt:  r.CompletedAt,
		})
	}
	return activity, nil
}

func (s *dashboardService) GetLeaderboard(ctx context.Context) ([]*dto.LeaderboardEntryResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, leaderboardCacheKey).Bytes()
		if err == nil {
			var entries []*dto.LeaderboardEntryResponse
			if json.Unmarshal(cached, &entries) == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.buildLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := s.rdb.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
				s.logger.Warn("Dashboard", "Failed to cache leaderboard", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}
	return entries, nil
}

func (s *dashboardService) buildLeaderboard(ctx context.Context) ([]*dto.LeaderboardEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profiles, err := uow.UserRepository().TopProfilesByXp(ctx, leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]*dto.LeaderboardEntryResponse, 0, len(profiles))
	for i, p := range profiles {
		entry := &dto.LeaderboardEntryResponse{
			Rank:     i + 1,
			UserId:   p.UserId,
			Level:    gamification.LevelForXP(p.XpPoints),
			XpPoints: p.XpPoints,
			GamesWon: p.GamesWon,
		}
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: p.UserId})
		if err == nil && user != nil {
			entry.Name = user.Name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
