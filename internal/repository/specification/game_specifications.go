package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByGameType struct {
	GameType string
}

func (s ByGameType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("game_type = ?", s.GameType)
}

type CompletedAfter struct {
	After time.Time
}

func (s CompletedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("completed_at >= ?", s.After)
}

type ByAchievementID struct {
	AchievementID uint
}

func (s ByAchievementID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("achievement_id = ?", s.AchievementID)
}

// WithAchievement preloads the achievement definition on unlock rows.
type WithAchievement struct{}

func (s WithAchievement) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Achievement")
}

type ByRoadmapID struct {
	RoadmapID uint
}

func (s ByRoadmapID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("roadmap_id = ?", s.RoadmapID)
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByInteractionType struct {
	Type string
}

func (s ByInteractionType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}
