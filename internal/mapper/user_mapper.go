package mapper

import (
	"encoding/json"

	"codementor-be/internal/entity"
	"codementor-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:                u.Id,
		Name:              u.Name,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		ProfilePictureUrl: u.ProfilePictureUrl,
		IsEmailVerified:   u.IsEmailVerified,
		IsAdmin:           u.IsAdmin,
		LastLoginAt:       u.LastLoginAt,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
		Profile:           m.ProfileToEntity(u.Profile),
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:                u.Id,
		Name:              u.Name,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		ProfilePictureUrl: u.ProfilePictureUrl,
		IsEmailVerified:   u.IsEmailVerified,
		IsAdmin:           u.IsAdmin,
		LastLoginAt:       u.LastLoginAt,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
		Profile:           m.ProfileToModel(u.Profile),
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) ProfileToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}

	var languages []string
	if len(p.PreferredLanguages) > 0 {
		_ = json.Unmarshal(p.PreferredLanguages, &languages)
	}

	return &entity.UserProfile{
		UserId:             p.UserId,
		Level:              p.Level,
		XpPoints:           p.XpPoints,
		BugsFixed:          p.BugsFixed,
		GamesWon:           p.GamesWon,
		CurrentStreak:      p.CurrentStreak,
		PreferredLanguages: languages,
		LearningGoals:      p.LearningGoals,
		LastActiveDate:     p.LastActiveDate,
	}
}

func (m *UserMapper) ProfileToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}

	languages, _ := json.Marshal(p.PreferredLanguages)

	return &model.UserProfile{
		UserId:             p.UserId,
		Level:              p.Level,
		XpPoints:           p.XpPoints,
		BugsFixed:          p.BugsFixed,
		GamesWon:           p.GamesWon,
		CurrentStreak:      p.CurrentStreak,
		PreferredLanguages: languages,
		LearningGoals:      p.LearningGoals,
		LastActiveDate:     p.LastActiveDate,
	}
}
