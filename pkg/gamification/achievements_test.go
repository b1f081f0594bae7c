package gamification

import "testing"

func TestProgressFor(t *testing.T) {
	profile := ProfileSnapshot{
		Level:          7,
		BugsFixed:      12,
		GamesWon:       3,
		CurrentStreak:  9,
		AIInteractions: 41,
	}

	tests := []struct {
		requirement string
		want        int
	}{
		{RequirementBugsFixed, 12},
		{RequirementGamesWon, 3},
		{RequirementLevel, 7},
		{RequirementStreak, 9},
		{RequirementAIInteractions, 41},
		{"unknown", 0},
	}

	for _, tt := range tests {
		if got := ProgressFor(profile, tt.requirement); got != tt.want {
			t.Errorf("ProgressFor(%q) = %d, want %d", tt.requirement, got, tt.want)
		}
	}
}

func TestProgressPercentage(t *testing.T) {
	profile := ProfileSnapshot{BugsFixed: 5}

	if got := ProgressPercentage(profile, RequirementBugsFixed, 10); got != 50 {
		t.Errorf("percentage = %d, want 50", got)
	}
	if got := ProgressPercentage(profile, RequirementBugsFixed, 2); got != 100 {
		t.Errorf("percentage over target = %d, want 100 (clamped)", got)
	}
	if got := ProgressPercentage(profile, RequirementBugsFixed, 0); got != 100 {
		t.Errorf("percentage with zero target = %d, want 100", got)
	}
}

func TestIsUnlocked(t *testing.T) {
	profile := ProfileSnapshot{GamesWon: 25}

	if !IsUnlocked(profile, RequirementGamesWon, 25) {
		t.Error("expected games_won 25/25 to unlock")
	}
	if IsUnlocked(profile, RequirementGamesWon, 26) {
		t.Error("expected games_won 25/26 to stay locked")
	}
}
