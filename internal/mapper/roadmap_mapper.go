package mapper

import (
	"encoding/json"

	"codementor-be/internal/entity"
	"codementor-be/internal/model"
)

type RoadmapMapper struct {
	userMapper *UserMapper
}

func NewRoadmapMapper() *RoadmapMapper {
	return &RoadmapMapper{userMapper: NewUserMapper()}
}

func (m *RoadmapMapper) ToEntity(r *model.Roadmap) *entity.Roadmap {
	if r == nil {
		return nil
	}

	var topics, goals []string
	if len(r.Topics) > 0 {
		_ = json.Unmarshal(r.Topics, &topics)
	}
	if len(r.Goals) > 0 {
		_ = json.Unmarshal(r.Goals, &goals)
	}

	roadmap := &entity.Roadmap{
		Id:                r.Id,
		Title:             r.Title,
		Description:       r.Description,
		Category:          r.Category,
		Difficulty:        r.Difficulty,
		EstimatedDuration: r.EstimatedDuration,
		Topics:            topics,
		Goals:             goals,
		AuthorId:          r.AuthorId,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		Author:            m.userMapper.ToEntity(r.Author),
	}

	for _, e := range r.Enrollments {
		roadmap.Enrollments = append(roadmap.Enrollments, m.EnrollmentToEntity(e))
	}

	return roadmap
}

func (m *RoadmapMapper) ToModel(r *entity.Roadmap) *model.Roadmap {
	if r == nil {
		return nil
	}

	topics, _ := json.Marshal(r.Topics)
	goals, _ := json.Marshal(r.Goals)

	return &model.Roadmap{
		Id:                r.Id,
		Title:             r.Title,
		Description:       r.Description,
		Category:          r.Category,
		Difficulty:        r.Difficulty,
		EstimatedDuration: r.EstimatedDuration,
		Topics:            topics,
		Goals:             goals,
		AuthorId:          r.AuthorId,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func (m *RoadmapMapper) ToEntities(roadmaps []*model.Roadmap) []*entity.Roadmap {
	entities := make([]*entity.Roadmap, len(roadmaps))
	for i, r := range roadmaps {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *RoadmapMapper) EnrollmentToEntity(e *model.RoadmapEnrollment) *entity.RoadmapEnrollment {
	if e == nil {
		return nil
	}

	return &entity.RoadmapEnrollment{
		Id:             e.Id,
		RoadmapId:      e.RoadmapId,
		UserId:         e.UserId,
		Progress:       e.Progress,
		EnrolledAt:     e.EnrolledAt,
		LastAccessedAt: e.LastAccessedAt,
		Notes:          e.Notes,
	}
}

func (m *RoadmapMapper) EnrollmentToModel(e *entity.RoadmapEnrollment) *model.RoadmapEnrollment {
	if e == nil {
		return nil
	}

	return &model.RoadmapEnrollment{
		Id:             e.Id,
		RoadmapId:      e.RoadmapId,
		UserId:         e.UserId,
		Progress:       e.Progress,
		EnrolledAt:     e.EnrolledAt,
		LastAccessedAt: e.LastAccessedAt,
		Notes:          e.Notes,
	}
}

func (m *RoadmapMapper) EnrollmentsToEntities(enrollments []*model.RoadmapEnrollment) []*entity.RoadmapEnrollment {
	entities := make([]*entity.RoadmapEnrollment, len(enrollments))
	for i, e := range enrollments {
		entities[i] = m.EnrollmentToEntity(e)
	}
	return entities
}
