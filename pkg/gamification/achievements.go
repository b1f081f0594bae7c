package gamification

// Achievement requirement types stored in the achievements catalog.
const (
	RequirementBugsFixed      = "bugs_fixed"
	RequirementGamesWon       = "games_won"
	RequirementLevel          = "level"
	RequirementStreak         = "streak"
	RequirementAIInteractions = "ai_interactions"
)

// ProfileSnapshot carries the counters achievement checks run against.
type ProfileSnapshot struct {
	Level          int
	XpPoints       int
	BugsFixed      int
	GamesWon       int
	CurrentStreak  int
	AIInteractions int
}

// ProgressFor returns the current counter value for a requirement type.
func ProgressFor(profile ProfileSnapshot, requirementType string) int {
	switch requirementType {
	case RequirementBugsFixed:
		return profile.BugsFixed
	case RequirementGamesWon:
		return profile.GamesWon
	case RequirementLevel:
		return profile.Level
	case RequirementStreak:
		return profile.CurrentStreak
	case RequirementAIInteractions:
		return profile.AIInteractions
	default:
		return 0
	}
}

// ProgressPercentage clamps progress toward a requirement to 0-100.
func ProgressPercentage(profile ProfileSnapshot, requirementType string, requirementValue int) int {
	if requirementValue <= 0 {
		return 100
	}
	current := ProgressFor(profile, requirementType)
	pct := current * 100 / requirementValue
	if pct > 100 {
		return 100
	}
	return pct
}

// IsUnlocked reports whether the profile satisfies a requirement.
func IsUnlocked(profile ProfileSnapshot, requirementType string, requirementValue int) bool {
	return ProgressFor(profile, requirementType) >= requirementValue
}
