package dto

import "time"

type SubmitGameResultRequest struct {
	GameType   string                 `json:"game_type" validate:"required,oneof=bug-hunt code-completion refactor-challenge"`
	Score      int                    `json:"score" validate:"min=0"`
	TimeSpent  int                    `json:"time_spent" validate:"min=0"`
	Difficulty string                 `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Details    map[string]interface{} `json:"details"`
}

type GameResultResponse struct {
	Id          uint      `json:"id"`
	GameType    string    `json:"game_type"`
	Score       int       `json:"score"`
	TimeSpent   int       `json:"time_spent"`
	Difficulty  string    `json:"difficulty"`
	XpEarned    int       `json:"xp_earned"`
	CompletedAt time.Time `json:"completed_at"`
}

type SubmitGameResultResponse struct {
	Result              GameResultResponse    `json:"result"`
	XpEarned            int                   `json:"xp_earned"`
	NewLevel            int                   `json:"new_level"`
	LeveledUp           bool                  `json:"leveled_up"`
	UnlockedAchievement []AchievementResponse `json:"unlocked_achievements"`
}

type AchievementResponse struct {
	Id               uint   `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	Rarity           string `json:"rarity"`
	XpReward         int    `json:"xp_reward"`
	RequirementType  string `json:"requirement_type"`
	RequirementValue int    `json:"requirement_value"`
	Unlocked         bool   `json:"unlocked"`
	Progress         int    `json:"progress"`
	ProgressPercent  int    `json:"progress_percent"`
}

type UserGameStatsResponse struct {
	Level                 int                  `json:"level"`
	XpPoints              int                  `json:"xp_points"`
	BugsFixed             int                  `json:"bugs_fixed"`
	GamesWon              int                  `json:"games_won"`
	CurrentStreak         int                  `json:"current_streak"`
	RecommendedDifficulty string               `json:"recommended_difficulty"`
	RecentResults         []GameResultResponse `json:"recent_results"`
}

type GenerateChallengeRequest struct {
	GameType   string `json:"game_type" validate:"required,oneof=bug-hunt code-completion refactor-challenge"`
	Language   string `json:"language" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

type GenerateChallengeResponse struct {
	Challenge string `json:"challenge"`
}
