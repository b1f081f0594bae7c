package service

import (
	"context"
	"fmt"
	"time"

	"codementor-be/internal/dto"
	"codementor-be/internal/entity"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/logger"
	"codementor-be/internal/pkg/mailer"
	"codementor-be/internal/repository/specification"
	"codementor-be/internal/repository/unitofwork"
	"codementor-be/pkg/ai"
	"codementor-be/pkg/events"
	"codementor-be/pkg/gamification"
	pktNats "codementor-be/pkg/nats"

	"github.com/redis/go-redis/v9"
)

// A score at or above this counts as a win toward the games_won counter.
const winningScore = 70

type IGameService interface {
	SubmitResult(ctx context.Context, userId uint, req *dto.SubmitGameResultRequest) (*dto.SubmitGameResultResponse, error)
	ListResults(ctx context.Context, userId uint) ([]*dto.GameResultResponse, error)
	UserStats(ctx context.Context, userId uint) (*dto.UserGameStatsResponse, error)
	ListAchievements(ctx context.Context, userId uint) ([]*dto.AchievementResponse, error)
	GenerateChallenge(ctx context.Context, req *dto.GenerateChallengeRequest) (*dto.GenerateChallengeResponse, error)
}

type gameService struct {
	uowFactory     unitofwork.RepositoryFactory
	aiClient       *ai.Client
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	rdb            *redis.Client
	logger         logger.ILogger
}

func NewGameService(
	uowFactory unitofwork.RepositoryFactory,
	aiClient *ai.Client,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	rdb *redis.Client,
	log logger.ILogger,
) IGameService {
	return &gameService{
		uowFactory:     uowFactory,
		aiClient:       aiClient,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		rdb:            rdb,
		logger:         log,
	}
}

func (s *gameService) SubmitResult(ctx context.Context, userId uint, req *dto.SubmitGameResultRequest) (*dto.SubmitGameResultResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserRepository().FindProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrNotFound
	}

	xpEarned := gamification.XPForGameResult(req.Score, req.Difficulty, req.TimeSpent)

	result := entity.GameResult{
		UserId:      userId,
		GameType:    req.GameType,
		Score:       req.Score,
		TimeSpent:   req.TimeSpent,
		Difficulty:  req.Difficulty,
		Details:     req.Details,
		XpEarned:    xpEarned,
		CompletedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.GameResultRepository().Create(ctx, &result); err != nil {
		return nil, err
	}

	oldLevel := profile.Level
	profile.XpPoints += xpEarned
	if req.Score >= winningScore {
		profile.GamesWon++
		profile.XpPoints += gamification.XPForActivity(gamification.ActivityGameWon)
	}
	if req.GameType == entity.GameTypeBugHunt {
		profile.BugsFixed += bugsFixedFromDetails(req.Details)
	}
	s.advanceStreak(profile)

	newLevel := gamification.LevelForXP(profile.XpPoints)
	leveledUp := newLevel > oldLevel
	if leveledUp {
		profile.XpPoints += gamification.LevelUpBonus(newLevel)
		// Bonus XP can tip the level again.
		newLevel = gamification.LevelForXP(profile.XpPoints)
	}
	profile.Level = newLevel

	if err := uow.UserRepository().UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	unlocked, err := s.sweepAchievements(ctx, uow, userId, profile)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.invalidateLeaderboard(ctx)

	if leveledUp && s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewLevelUp(userId, newLevel)); err != nil {
			s.logger.Warn("Game", "Failed to publish LEVEL_UP event", map[string]interface{}{
				"user_id": userId, "error": err.Error(),
			})
		}
	}
	s.announceUnlocks(ctx, userId, unlocked)

	resp := &dto.SubmitGameResultResponse{
		Result: dto.GameResultResponse{
			Id:          result.Id,
			GameType:    result.GameType,
			Score:       result.Score,
			TimeSpent:   result.TimeSpent,
			Difficulty:  result.Difficulty,
			XpEarned:    result.XpEarned,
			CompletedAt: result.CompletedAt,
		},
		XpEarned:            xpEarned,
		NewLevel:            newLevel,
		LeveledUp:           leveledUp,
		UnlockedAchievement: []dto.AchievementResponse{},
	}
	for _, a := range unlocked {
		resp.UnlockedAchievement = append(resp.UnlockedAchievement, dto.AchievementResponse{
			Id:               a.Id,
			Name:             a.Name,
			Description:      a.Description,
			Icon:             a.Icon,
			Rarity:           a.Rarity,
			XpReward:         a.XpReward,
			RequirementType:  a.RequirementType,
			RequirementValue: a.RequirementValue,
			Unlocked:         true,
			Progress:         a.RequirementValue,
			ProgressPercent:  100,
		})
	}
	return resp, nil
}

func bugsFixedFromDetails(details map[string]interface{}) int {
	v, ok := details["bugs_fixed"]
	if !ok {
		return 0
	}
	// JSON numbers decode as float64.
	if f, ok := v.(float64); ok {
		return int(f)
	}
	return 0
}

// advanceStreak bumps the daily streak: consecutive days extend it, a gap
// resets it to one.
func (s *gameService) advanceStreak(profile *entity.UserProfile) {
	today := time.Now().Truncate(24 * time.Hour)
	last := profile.LastActiveDate.Truncate(24 * time.Hour)
	switch {
	case last.Equal(today):
		// already counted today
	case last.Equal(today.AddDate(0, 0, -1)):
		profile.CurrentStreak++
	default:
		profile.CurrentStreak = 1
	}
	profile.LastActiveDate = time.Now()
}

// sweepAchievements unlocks everything the updated profile now qualifies
// for. Runs inside the caller's transaction.
func (s *gameService) sweepAchievements(ctx context.Context, uow unitofwork.UnitOfWork, userId uint, profile *entity.UserProfile) ([]*entity.Achievement, error) {
	aiCount, err := uow.AIInteractionRepository().Count(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}
	snapshot := gamification.ProfileSnapshot{
		Level:          profile.Level,
		XpPoints:       profile.XpPoints,
		BugsFixed:      profile.BugsFixed,
		GamesWon:       profile.GamesWon,
		CurrentStreak:  profile.CurrentStreak,
		AIInteractions: int(aiCount),
	}

	all, err := uow.AchievementRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := uow.AchievementRepository().FindUnlocks(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}
	already := make(map[uint]bool, len(existing))
	for _, ua := range existing {
		already[ua.AchievementId] = true
	}

	var unlocked []*entity.Achievement
	for _, a := range all {
		if already[a.Id] {
			continue
		}
		if !gamification.IsUnlocked(snapshot, a.RequirementType, a.RequirementValue) {
			continue
		}
		unlock := entity.UserAchievement{
			UserId:        userId,
			AchievementId: a.Id,
			UnlockedAt:    time.Now(),
			Progress:      a.RequirementValue,
		}
		if err := uow.AchievementRepository().CreateUnlock(ctx, &unlock); err != nil {
			return nil, err
		}
		profile.XpPoints += a.XpReward
		unlocked = append(unlocked, a)
	}

	if len(unlocked) > 0 {
		profile.Level = gamification.LevelForXP(profile.XpPoints)
		if err := uow.UserRepository().UpdateProfile(ctx, profile); err != nil {
			return nil, err
		}
	}
	return unlocked, nil
}

func (s *gameService) announceUnlocks(ctx context.Context, userId uint, unlocked []*entity.Achievement) {
	if len(unlocked) == 0 {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return
	}

	for _, a := range unlocked {
		if s.eventPublisher != nil {
			if err := s.eventPublisher.Publish(ctx, events.NewAchievementUnlocked(userId, a.Id, a.Name, a.XpReward)); err != nil {
				s.logger.Warn("Game", "Failed to publish ACHIEVEMENT_UNLOCKED event", map[string]interface{}{
					"user_id": userId, "error": err.Error(),
				})
			}
		}
		achievement := a
		go func() {
			if emailErr := s.emailService.SendAchievementUnlocked(user.Email, user.Name, achievement.Name, achievement.XpReward); emailErr != nil {
				fmt.Printf("Error sending achievement email: %v\n", emailErr)
			}
		}()
	}
}

func (s *gameService) invalidateLeaderboard(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, leaderboardCacheKey).Err(); err != nil {
		s.logger.Warn("Game", "Failed to invalidate leaderboard cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *gameService) ListResults(ctx context.Context, userId uint) ([]*dto.GameResultResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	results, err := uow.GameResultRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "completed_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.GameResultResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, &dto.GameResultResponse{
			Id:          r.Id,
			GameType:    r.GameType,
			Score:       r.Score,
			TimeSpent:   r.TimeSpent,
			Difficulty:  r.Difficulty,
			XpEarned:    r.XpEarned,
			CompletedAt: r.CompletedAt,
		})
	}
	return responses, nil
}

func (s *gameService) UserStats(ctx context.Context, userId uint) (*dto.UserGameStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserRepository().FindProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrNotFound
	}

	recent, err := uow.GameResultRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "completed_at", Desc: true},
		specification.Pagination{Limit: 10},
	)
	if err != nil {
		return nil, err
	}

	var easy, medium, hard int
	for _, r := range recent {
		switch r.Difficulty {
		case entity.DifficultyEasy:
			easy++
		case entity.DifficultyMedium:
			medium++
		case entity.DifficultyHard:
			hard++
		}
	}

	resp := &dto.UserGameStatsResponse{
		Level:                 profile.Level,
		XpPoints:              profile.XpPoints,
		BugsFixed:             profile.BugsFixed,
		GamesWon:              profile.GamesWon,
		CurrentStreak:         profile.CurrentStreak,
		RecommendedDifficulty: gamification.RecommendedDifficulty(easy, medium, hard),
		RecentResults:         make([]dto.GameResultResponse, 0, len(recent)),
	}
	for _, r := range recent {
		resp.RecentResults = append(resp.RecentResults, dto.GameResultResponse{
			Id:          r.Id,
			GameType:    r.GameType,
			Score:       r.Score,
			TimeSpent:   r.TimeSpent,
			Difficulty:  r.Difficulty,
			XpEarned:    r.XpEarned,
			CompletedAt: r.CompletedAt,
		})
	}
	return resp, nil
}

func (s *gameService) ListAchievements(ctx context.Context, userId uint) ([]*dto.AchievementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserRepository().FindProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrNotFound
	}
	aiCount, err := uow.AIInteractionRepository().Count(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}
	snapshot := gamification.ProfileSnapshot{
		Level:          profile.Level,
		XpPoints:       profile.XpPoints,
		BugsFixed:      profile.BugsFixed,
		GamesWon:       profile.GamesWon,
		CurrentStreak:  profile.CurrentStreak,
		AIInteractions: int(aiCount),
	}

	all, err := uow.AchievementRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	unlocks, err := uow.AchievementRepository().FindUnlocks(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}
	unlockedSet := make(map[uint]bool, len(unlocks))
	for _, ua := range unlocks {
		unlockedSet[ua.AchievementId] = true
	}

	responses := make([]*dto.AchievementResponse, 0, len(all))
	for _, a := range all {
		resp := &dto.AchievementResponse{
			Id:               a.Id,
			Name:             a.Name,
			Description:      a.Description,
			Icon:             a.Icon,
			Rarity:           a.Rarity,
			XpReward:         a.XpReward,
			RequirementType:  a.RequirementType,
			RequirementValue: a.RequirementValue,
			Unlocked:         unlockedSet[a.Id],
			Progress:         gamification.ProgressFor(snapshot, a.RequirementType),
			ProgressPercent:  gamification.ProgressPercentage(snapshot, a.RequirementType, a.RequirementValue),
		}
		if resp.Unlocked {
			resp.Progress = a.RequirementValue
			resp.ProgressPercent = 100
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *gameService) GenerateChallenge(ctx context.Context, req *dto.GenerateChallengeRequest) (*dto.GenerateChallengeResponse, error) {
	var challenge string
	var err error
	switch req.GameType {
	case entity.GameTypeBugHunt:
		challenge, err = s.aiClient.GenerateBuggyCode(ctx, req.Language, req.Difficulty)
	case entity.GameTypeCodeCompletion:
		challenge, err = s.aiClient.CompleteCode(ctx, "", req.Language)
	default:
		challenge, err = s.aiClient.CreateChallenge(ctx, req.Difficulty, req.Language)
	}
	if err != nil {
		return nil, err
	}
	return &dto.GenerateChallengeResponse{Challenge: challenge}, nil
}
