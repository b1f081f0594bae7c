package service

import (
	"context"
	"fmt"
	"time"

	"codementor-be/internal/dto"
	"codementor-be/internal/entity"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/repository/specification"
	"codementor-be/internal/repository/unitofwork"
	"codementor-be/pkg/ai"
)

type IRoadmapService interface {
	List(ctx context.Context, category string) ([]*dto.RoadmapResponse, error)
	Get(ctx context.Context, id uint) (*dto.RoadmapResponse, error)
	Create(ctx context.Context, userId uint, req *dto.CreateRoadmapRequest) (*dto.RoadmapResponse, error)
	Generate(ctx context.Context, userId uint, req *dto.GenerateRoadmapRequest) (*dto.AIResponse, error)
	Enroll(ctx context.Context, userId uint, roadmapId uint) (*dto.EnrollmentResponse, error)
	UpdateEnrollment(ctx context.Context, userId uint, roadmapId uint, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error)
	MyEnrollments(ctx context.Context, userId uint) ([]*dto.EnrollmentResponse, error)
}

type roadmapService struct {
	uowFactory unitofwork.RepositoryFactory
	aiClient   *ai.Client
}

func NewRoadmapService(uowFactory unitofwork.RepositoryFactory, aiClient *ai.Client) IRoadmapService {
	return &roadmapService{
		uowFactory: uowFactory,
		aiClient:   aiClient,
	}
}

func (s *roadmapService) List(ctx context.Context, category string) ([]*dto.RoadmapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByStatus{Status: entity.RoadmapStatusActive},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}

	roadmaps, err := uow.RoadmapRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.RoadmapResponse, 0, len(roadmaps))
	for _, r := range roadmaps {
		responses = append(responses, s.toResponse(ctx, uow, r))
	}
	return responses, nil
}

func (s *roadmapService) Get(ctx context.Context, id uint) (*dto.RoadmapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	roadmap, err := uow.RoadmapRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, apperrors.ErrNotFound
	}
	return s.toResponse(ctx, uow, roadmap), nil
}

func (s *roadmapService) Create(ctx context.Context, userId uint, req *dto.CreateRoadmapRequest) (*dto.RoadmapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	roadmap := entity.Roadmap{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Difficulty:        req.Difficulty,
		EstimatedDuration: req.EstimatedDuration,
		Topics:            req.Topics,
		Goals:             req.Goals,
		AuthorId:          userId,
		Status:            entity.RoadmapStatusActive,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if err := uow.RoadmapRepository().Create(ctx, &roadmap); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, uow, &roadmap), nil
}

func (s *roadmapService) Generate(ctx context.Context, userId uint, req *dto.GenerateRoadmapRequest) (*dto.AIResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.UserRepository().FindProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	var languages []string
	if profile != nil {
		languages = profile.PreferredLanguages
	}
	goals := fmt.Sprintf("learn %s, %s available per week", req.Topic, req.TimeCommitment)

	result, err := s.aiClient.GenerateRoadmap(ctx, req.SkillLevel, languages, goals)
	if err != nil {
		return nil, err
	}

	interaction := entity.AIInteraction{
		UserId:    userId,
		Type:      entity.AITypeRoadmap,
		Input:     req.Topic,
		Output:    result,
		CreatedAt: time.Now(),
	}
	_ = uow.AIInteractionRepository().Create(ctx, &interaction)

	return &dto.AIResponse{Result: result}, nil
}

func (s *roadmapService) Enroll(ctx context.Context, userId uint, roadmapId uint) (*dto.EnrollmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	roadmap, err := uow.RoadmapRepository().FindOne(ctx, specification.ByID{ID: roadmapId})
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, apperrors.ErrNotFound
	}

	existing, err := uow.RoadmapRepository().FindEnrollment(ctx,
		specification.ByRoadmapID{RoadmapID: roadmapId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("already enrolled: %w", apperrors.ErrConflict)
	}

	enrollment := entity.RoadmapEnrollment{
		RoadmapId:      roadmapId,
		UserId:         userId,
		EnrolledAt:     time.Now(),
		LastAccessedAt: time.Now(),
	}
	if err := uow.RoadmapRepository().CreateEnrollment(ctx, &enrollment); err != nil {
		return nil, err
	}
	return toEnrollmentResponse(&enrollment), nil
}

func (s *roadmapService) UpdateEnrollment(ctx context.Context, userId uint, roadmapId uint, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	enrollment, err := uow.RoadmapRepository().FindEnrollment(ctx,
		specification.ByRoadmapID{RoadmapID: roadmapId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, apperrors.ErrNotFound
	}

	enrollment.Progress = req.Progress
	enrollment.Notes = req.Notes
	enrollment.LastAccessedAt = time.Now()
	if err := uow.RoadmapRepository().UpdateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return toEnrollmentResponse(enrollment), nil
}

func (s *roadmapService) MyEnrollments(ctx context.Context, userId uint) ([]*dto.EnrollmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	enrollments, err := uow.RoadmapRepository().FindEnrollments(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "last_accessed_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		responses = append(responses, toEnrollmentResponse(e))
	}
	return responses, nil
}

func (s *roadmapService) toResponse(ctx context.Context, uow unitofwork.UnitOfWork, roadmap *entity.Roadmap) *dto.RoadmapResponse {
	resp := &dto.RoadmapResponse{
		Id:                roadmap.Id,
		Title:             roadmap.Title,
		Description:       roadmap.Description,
		Category:          roadmap.Category,
		Difficulty:        roadmap.Difficulty,
		EstimatedDuration: roadmap.EstimatedDuration,
		Topics:            roadmap.Topics,
		Goals:             roadmap.Goals,
		Status:            roadmap.Status,
		CreatedAt:         roadmap.CreatedAt,
	}
	if roadmap.Author != nil {
		resp.Author = roadmap.Author.Name
	}
	enrollments, err := uow.RoadmapRepository().FindEnrollments(ctx, specification.ByRoadmapID{RoadmapID: roadmap.Id})
	if err == nil {
		resp.EnrolledCount = len(enrollments)
	}
	return resp
}

func toEnrollmentResponse(e *entity.RoadmapEnrollment) *dto.EnrollmentResponse {
	return &dto.EnrollmentResponse{
		Id:             e.Id,
		RoadmapId:      e.RoadmapId,
		Progress:       e.Progress,
		EnrolledAt:     e.EnrolledAt,
		LastAccessedAt: e.LastAccessedAt,
		Notes:          e.Notes,
	}
}
