package entity

import "time"

// Game types reported by the frontend.
const (
	GameTypeBugHunt        = "bug-hunt"
	GameTypeCodeCompletion = "code-completion"
	GameTypeRefactor       = "refactor-challenge"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type GameResult struct {
	Id          uint
	UserId      uint
	GameType    string
	Score       int
	TimeSpent   int // seconds
	Difficulty  string
	Details     map[string]interface{}
	XpEarned    int
	CompletedAt time.Time
}
