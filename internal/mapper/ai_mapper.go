package mapper

import (
	"codementor-be/internal/entity"
	"codementor-be/internal/model"
)

type AIInteractionMapper struct{}

func NewAIInteractionMapper() *AIInteractionMapper {
	return &AIInteractionMapper{}
}

func (m *AIInteractionMapper) ToEntity(i *model.AIInteraction) *entity.AIInteraction {
	if i == nil {
		return nil
	}

	return &entity.AIInteraction{
		Id:        i.Id,
		UserId:    i.UserId,
		Type:      i.Type,
		Input:     i.Input,
		Output:    i.Output,
		Language:  i.Language,
		CreatedAt: i.CreatedAt,
	}
}

func (m *AIInteractionMapper) ToModel(i *entity.AIInteraction) *model.AIInteraction {
	if i == nil {
		return nil
	}

	return &model.AIInteraction{
		Id:        i.Id,
		UserId:    i.UserId,
		Type:      i.Type,
		Input:     i.Input,
		Output:    i.Output,
		Language:  i.Language,
		CreatedAt: i.CreatedAt,
	}
}

func (m *AIInteractionMapper) ToEntities(interactions []*model.AIInteraction) []*entity.AIInteraction {
	entities := make([]*entity.AIInteraction, len(interactions))
	for i, interaction := range interactions {
		entities[i] = m.ToEntity(interaction)
	}
	return entities
}
