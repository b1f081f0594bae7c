package dto

import "time"

type DashboardStatsResponse struct {
	Level           int     `json:"level"`
	XpPoints        int     `json:"xp_points"`
	XpToNextLevel   int     `json:"xp_to_next_level"`
	BugsFixed       int     `json:"bugs_fixed"`
	GamesWon        int     `json:"games_won"`
	GamesPlayed     int64   `json:"games_played"`
	CurrentStreak   int     `json:"current_streak"`
	AIInteractions  int64   `json:"ai_interactions"`
	AverageScore    float64 `json:"average_score"`
	SessionsOwned   int64   `json:"sessions_owned"`
	AchievementRate int     `json:"achievement_rate"`
}

type ActivityItemResponse struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	XpEarned    int       `json:"xp_earned"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type LeaderboardEntryResponse struct {
	Rank     int    `json:"rank"`
	UserId   uint   `json:"user_id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	XpPoints int    `json:"xp_points"`
	GamesWon int    `json:"games_won"`
}
