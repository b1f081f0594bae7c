package mapper

import (
	"codementor-be/internal/entity"
	"codementor-be/internal/model"
)

type AchievementMapper struct{}

func NewAchievementMapper() *AchievementMapper {
	return &AchievementMapper{}
}

func (m *AchievementMapper) ToEntity(a *model.Achievement) *entity.Achievement {
	if a == nil {
		return nil
	}

	return &entity.Achievement{
		Id:               a.Id,
		Name:             a.Name,
		Description:      a.Description,
		Icon:             a.Icon,
		Rarity:           a.Rarity,
		XpReward:         a.XpReward,
		RequirementType:  a.RequirementType,
		RequirementValue: a.RequirementValue,
	}
}

func (m *AchievementMapper) ToModel(a *entity.Achievement) *model.Achievement {
	if a == nil {
		return nil
	}

	return &model.Achievement{
		Id:               a.Id,
		Name:             a.Name,
		Description:      a.Description,
		Icon:             a.Icon,
		Rarity:           a.Rarity,
		XpReward:         a.XpReward,
		RequirementType:  a.RequirementType,
		RequirementValue: a.RequirementValue,
	}
}

func (m *AchievementMapper) ToEntities(achievements []*model.Achievement) []*entity.Achievement {
	entities := make([]*entity.Achievement, len(achievements))
	for i, a := range achievements {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *AchievementMapper) UserAchievementToEntity(ua *model.UserAchievement) *entity.UserAchievement {
	if ua == nil {
		return nil
	}

	return &entity.UserAchievement{
		Id:            ua.Id,
		UserId:        ua.UserId,
		AchievementId: ua.AchievementId,
		UnlockedAt:    ua.UnlockedAt,
		Progress:      ua.Progress,
		Achievement:   m.ToEntity(ua.Achievement),
	}
}

func (m *AchievementMapper) UserAchievementToModel(ua *entity.UserAchievement) *model.UserAchievement {
	if ua == nil {
		return nil
	}

	return &model.UserAchievement{
		Id:            ua.Id,
		UserId:        ua.UserId,
		AchievementId: ua.AchievementId,
		UnlockedAt:    ua.UnlockedAt,
		Progress:      ua.Progress,
	}
}

func (m *AchievementMapper) UserAchievementsToEntities(uas []*model.UserAchievement) []*entity.UserAchievement {
	entities := make([]*entity.UserAchievement, len(uas))
	for i, ua := range uas {
		entities[i] = m.UserAchievementToEntity(ua)
	}
	return entities
}
