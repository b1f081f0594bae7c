package entity

import "time"

// Achievement rarities.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

type Achievement struct {
	Id               uint
	Name             string
	Description      string
	Icon             string
	Rarity           string
	XpReward         int
	RequirementType  string
	RequirementValue int
}

type UserAchievement struct {
	Id            uint
	UserId        uint
	AchievementId uint
	UnlockedAt    time.Time
	Progress      int

	Achievement *Achievement
}
