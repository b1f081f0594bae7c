package dto

import "time"

type AdminUserResponse struct {
	Id          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	IsAdmin     bool       `json:"is_admin"`
	Level       int        `json:"level"`
	XpPoints    int        `json:"xp_points"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PlatformStatsResponse struct {
	TotalUsers       int64 `json:"total_users"`
	TotalSessions    int64 `json:"total_sessions"`
	ActiveSessions   int64 `json:"active_sessions"`
	GamesPlayed      int64 `json:"games_played"`
	AIInteractions   int64 `json:"ai_interactions"`
	RoadmapsCreated  int64 `json:"roadmaps_created"`
}

type SetSessionActiveRequest struct {
	IsActive bool `json:"is_active"`
}

type CreateAchievementRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=100"`
	Description      string `json:"description" validate:"required"`
	Icon             string `json:"icon" validate:"required"`
	Rarity           string `json:"rarity" validate:"required,oneof=common rare epic legendary"`
	XpReward         int    `json:"xp_reward" validate:"min=0"`
	RequirementType  string `json:"requirement_type" validate:"required"`
	RequirementValue int    `json:"requirement_value" validate:"min=1"`
}
