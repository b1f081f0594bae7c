package mapper

import (
	"codementor-be/internal/entity"
	"codementor-be/internal/model"
)

type CollaborationMapper struct {
	userMapper *UserMapper
}

func NewCollaborationMapper() *CollaborationMapper {
	return &CollaborationMapper{userMapper: NewUserMapper()}
}

func (m *CollaborationMapper) ToEntity(s *model.CollaborationSession) *entity.CollaborationSession {
	if s == nil {
		return nil
	}

	participants := make([]*entity.CollaborationParticipant, len(s.Participants))
	for i, p := range s.Participants {
		participants[i] = m.ParticipantToEntity(p)
	}

	return &entity.CollaborationSession{
		Id:           s.Id,
		RoomCode:     s.RoomCode,
		Name:         s.Name,
		Description:  s.Description,
		OwnerId:      s.OwnerId,
		Code:         s.Code,
		Language:     s.Language,
		IsActive:     s.IsActive,
		IsPublic:     s.IsPublic,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		Owner:        m.userMapper.ToEntity(s.Owner),
		Participants: participants,
	}
}

func (m *CollaborationMapper) ToModel(s *entity.CollaborationSession) *model.CollaborationSession {
	if s == nil {
		return nil
	}

	return &model.CollaborationSession{
		Id:          s.Id,
		RoomCode:    s.RoomCode,
		Name:        s.Name,
		Description: s.Description,
		OwnerId:     s.OwnerId,
		Code:        s.Code,
		Language:    s.Language,
		IsActive:    s.IsActive,
		IsPublic:    s.IsPublic,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *CollaborationMapper) ToEntities(sessions []*model.CollaborationSession) []*entity.CollaborationSession {
	entities := make([]*entity.CollaborationSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *CollaborationMapper) ParticipantToEntity(p *model.CollaborationParticipant) *entity.CollaborationParticipant {
	if p == nil {
		return nil
	}

	return &entity.CollaborationParticipant{
		Id:        p.Id,
		SessionId: p.SessionId,
		UserId:    p.UserId,
		JoinedAt:  p.JoinedAt,
		LeftAt:    p.LeftAt,
		IsActive:  p.IsActive,
		User:      m.userMapper.ToEntity(p.User),
	}
}

func (m *CollaborationMapper) ParticipantToModel(p *entity.CollaborationParticipant) *model.CollaborationParticipant {
	if p == nil {
		return nil
	}

	return &model.CollaborationParticipant{
		Id:        p.Id,
		SessionId: p.SessionId,
		UserId:    p.UserId,
		JoinedAt:  p.JoinedAt,
		LeftAt:    p.LeftAt,
		IsActive:  p.IsActive,
	}
}

func (m *CollaborationMapper) ParticipantsToEntities(participants []*model.CollaborationParticipant) []*entity.CollaborationParticipant {
	entities := make([]*entity.CollaborationParticipant, len(participants))
	for i, p := range participants {
		entities[i] = m.ParticipantToEntity(p)
	}
	return entities
}
