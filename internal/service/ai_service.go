package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"codementor-be/internal/dto"
	"codementor-be/internal/entity"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/logger"
	"codementor-be/internal/repository/specification"
	"codementor-be/internal/repository/unitofwork"
	"codementor-be/pkg/ai"

	gocache "github.com/patrickmn/go-cache"
)

type IAIService interface {
	AnalyzeCode(ctx context.Context, userId uint, req *dto.CodeRequest) (*dto.AIResponse, error)
	FindBugs(ctx context.Context, userId uint, req *dto.CodeRequest) (*dto.AIResponse, error)
	ExplainCode(ctx context.Context, userId uint, req *dto.ExplainCodeRequest) (*dto.AIResponse, error)
	RefactorCode(ctx context.Context, userId uint, req *dto.CodeRequest) (*dto.AIResponse, error)
	History(ctx context.Context, userId uint) ([]*dto.AIInteractionResponse, error)
}

// aiService fronts the upstream model with a short-lived response cache so
// identical prompts inside a session do not burn quota. Upstream failures
// degrade to a canned apology instead of an error.
type aiService struct {
	uowFactory unitofwork.RepositoryFactory
	aiClient   *ai.Client
	cache      *gocache.Cache
	logger     logger.ILogger
}

func NewAIService(uowFactory unitofwork.RepositoryFactory, aiClient *ai.Client, log logger.ILogger) IAIService {
	return &aiService{
		uowFactory: uowFactory,
		aiClient:   aiClient,
		cache:      gocache.New(10*time.Minute, 15*time.Minute),
		logger:     log,
	}
}

func (s *aiService) AnalyzeCode(ctx context.Context, userId uint, req *dto.CodeRequest) (*dto.AIResponse, error) {
	return s.run(ctx, userId, entity.AITypeAnalyze, req.Code, req.Language, func(ctx context.Context) (string, error) {
		return s.aiClient.AnalyzeCode(ctx, req.Code, req.Language, "")
	})
}

func (s *aiService) FindBugs(ctx context.Context, userId uint, req *dto.CodeRequest) (*dto.AIResponse, error) {
	return s.run(ctx, userId, entity.AITypeBugFind, req.Code, req.Language, func(ctx context.Context) (string, error) {
		return s.aiClient.FindBugs(ctx, req.Code, req.Language)
	})
}

func (s *aiService) ExplainCode(ctx context.Context, userId uint, req *dto.ExplainCodeRequest) (*dto.AIResponse, error) {
	return s.run(ctx, userId, entity.AITypeExplain, req.Code+"|"+req.Level, req.Language, func(ctx context.Context) (string, error) {
		return s.aiClient.ExplainCode(ctx, req.Code, req.Language, req.Level)
	})
}

func (s *aiService) RefactorCode(ctx context.Context, userId uint, req *dto.CodeRequest) (*dto.AIResponse, error) {
	return s.run(ctx, userId, entity.AITypeRefactor, req.Code, req.Language, func(ctx context.Context) (string, error) {
		return s.aiClient.RefactorCode(ctx, req.Code, req.Language)
	})
}

func (s *aiService) run(ctx context.Context, userId uint, interactionType, input, language string, call func(context.Context) (string, error)) (*dto.AIResponse, error) {
	key := cacheKey(interactionType, input, language)
	if cached, found := s.cache.Get(key); found {
		result := cached.(string)
		s.record(ctx, userId, interactionType, input, result, language)
		return &dto.AIResponse{Result: result, Cached: true}, nil
	}

	result, err := call(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			s.logger.Warn("AI", "Upstream unavailable, serving fallback", map[string]interface{}{
				"type":  interactionType,
				"error": err.Error(),
			})
			s.record(ctx, userId, interactionType, input, ai.FallbackMessage, language)
			return &dto.AIResponse{Result: ai.FallbackMessage}, nil
		}
		return nil, err
	}

	s.cache.Set(key, result, gocache.DefaultExpiration)
	s.record(ctx, userId, interactionType, input, result, language)
	return &dto.AIResponse{Result: result}, nil
}

func (s *aiService) record(ctx context.Context, userId uint, interactionType, input, output, language string) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	interaction := entity.AIInteraction{
		UserId:    userId,
		Type:      interactionType,
		Input:     input,
		Output:    output,
		Language:  language,
		CreatedAt: time.Now(),
	}
	if err := uow.AIInteractionRepository().Create(ctx, &interaction); err != nil {
		s.logger.Error("AI", "Failed to record interaction", map[string]interface{}{
			"user_id": userId,
			"type":    interactionType,
			"error":   err.Error(),
		})
	}
}

func (s *aiService) History(ctx context.Context, userId uint) ([]*dto.AIInteractionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	interactions, err := uow.AIInteractionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 50},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AIInteractionResponse, 0, len(interactions))
	for _, i := range interactions {
		responses = append(responses, &dto.AIInteractionResponse{
			Id:        i.Id,
			Type:      i.Type,
			Language:  i.Language,
			CreatedAt: i.CreatedAt,
		})
	}
	return responses, nil
}

func cacheKey(interactionType, input, language string) string {
	sum := sha256.Sum256([]byte(interactionType + "|" + language + "|" + input))
	return hex.EncodeToString(sum[:])
}
