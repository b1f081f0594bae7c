package gamification

import "testing"

func TestXPForGameResult(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		difficulty string
		timeSpent  int
		want       int
	}{
		{name: "easy slow run", score: 80, difficulty: "easy", timeSpent: 300, want: 8},
		{name: "easy fast run gets time bonus", score: 80, difficulty: "easy", timeSpent: 0, want: 18},
		{name: "medium multiplies by 1.5", score: 100, difficulty: "medium", timeSpent: 300, want: 15},
		{name: "hard multiplies by 2", score: 100, difficulty: "hard", timeSpent: 300, want: 20},
		{name: "overtime never goes negative", score: 0, difficulty: "easy", timeSpent: 900, want: 0},
		{name: "unknown difficulty falls back to 1x", score: 50, difficulty: "nightmare", timeSpent: 300, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := XPForGameResult(tt.score, tt.difficulty, tt.timeSpent); got != tt.want {
				t.Errorf("XPForGameResult() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{199, 2},
		{200, 3},
		{449, 3},
		{450, 4},
		{-10, 1},
	}

	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestXPForActivity(t *testing.T) {
	if got := XPForActivity(ActivityBugFixed); got != 10 {
		t.Errorf("bug_fixed XP = %d, want 10", got)
	}
	if got := XPForActivity(ActivityGameWon); got != 25 {
		t.Errorf("game_won XP = %d, want 25", got)
	}
	if got := XPForActivity(ActivityCodeAnalyzed); got != 5 {
		t.Errorf("code_analyzed XP = %d, want 5", got)
	}
	if got := XPForActivity("unknown"); got != 0 {
		t.Errorf("unknown activity XP = %d, want 0", got)
	}
}

func TestRecommendedDifficulty(t *testing.T) {
	if got := RecommendedDifficulty(0, 0, 0); got != "easy" {
		t.Errorf("fresh player difficulty = %q, want easy", got)
	}
	if got := RecommendedDifficulty(5, 2, 0); got != "medium" {
		t.Errorf("difficulty = %q, want medium", got)
	}
	if got := RecommendedDifficulty(6, 5, 1); got != "hard" {
		t.Errorf("difficulty = %q, want hard", got)
	}
}
