package mapper

import (
	"encoding/json"

	"codementor-be/internal/entity"
	"codementor-be/internal/model"
)

type GameMapper struct{}

func NewGameMapper() *GameMapper {
	return &GameMapper{}
}

func (m *GameMapper) ToEntity(g *model.GameResult) *entity.GameResult {
	if g == nil {
		return nil
	}

	var details map[string]interface{}
	if len(g.Details) > 0 {
		_ = json.Unmarshal(g.Details, &details)
	}

	return &entity.GameResult{
		Id:          g.Id,
		UserId:      g.UserId,
		GameType:    g.GameType,
		Score:       g.Score,
		TimeSpent:   g.TimeSpent,
		Difficulty:  g.Difficulty,
		Details:     details,
		XpEarned:    g.XpEarned,
		CompletedAt: g.CompletedAt,
	}
}

func (m *GameMapper) ToModel(g *entity.GameResult) *model.GameResult {
	if g == nil {
		return nil
	}

	details, _ := json.Marshal(g.Details)

	return &model.GameResult{
		Id:          g.Id,
		UserId:      g.UserId,
		GameType:    g.GameType,
		Score:       g.Score,
		TimeSpent:   g.TimeSpent,
		Difficulty:  g.Difficulty,
		Details:     details,
		XpEarned:    g.XpEarned,
		CompletedAt: g.CompletedAt,
	}
}

func (m *GameMapper) ToEntities(results []*model.GameResult) []*entity.GameResult {
	entities := make([]*entity.GameResult, len(results))
	for i, g := range results {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
