// Package gamification holds the pure XP/level/achievement arithmetic.
// Everything here is stateless: callers pass profile snapshots in and persist
// the results themselves.
package gamification

import "math"

// Activity types reported by the client.
const (
	ActivityBugFixed     = "bug_fixed"
	ActivityGameWon      = "game_won"
	ActivityCodeAnalyzed = "code_analyzed"
)

// XPForGameResult computes the XP award for a finished game: score/10 base,
// a bonus XP point per 30 seconds saved under the 5 minute par, scaled by
// difficulty.
func XPForGameResult(score int, difficulty string, timeSpentSeconds int) int {
	baseXP := score / 10

	multiplier := 1.0
	switch difficulty {
	case "medium":
		multiplier = 1.5
	case "hard":
		multiplier = 2.0
	}

	timeBonus := (300 - timeSpentSeconds) / 30
	if timeBonus < 0 {
		timeBonus = 0
	}

	return int(float64(baseXP+timeBonus) * multiplier)
}

// XPForActivity returns the flat XP award for a reported activity type.
func XPForActivity(activityType string) int {
	switch activityType {
	case ActivityBugFixed:
		return 10
	case ActivityGameWon:
		return 25
	case ActivityCodeAnalyzed:
		return 5
	default:
		return 0
	}
}

// LevelForXP maps total XP to a level. Level 1 covers 0-49 XP, level 2 starts
// at 50, level 3 at 200, and so on quadratically.
func LevelForXP(xpPoints int) int {
	if xpPoints < 0 {
		return 1
	}
	return int(math.Sqrt(float64(xpPoints)/50)) + 1
}

// LevelUpBonus is the XP bonus granted on reaching a new level.
func LevelUpBonus(newLevel int) int {
	return newLevel * 10
}

// RecommendedDifficulty suggests the next game difficulty from recent history.
func RecommendedDifficulty(easyGames, mediumGames, hardGames int) string {
	if easyGames < 5 {
		return "easy"
	}
	if mediumGames < 5 {
		return "medium"
	}
	return "hard"
}
