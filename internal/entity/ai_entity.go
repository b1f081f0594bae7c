package entity

import "time"

// AI interaction types.
const (
	AITypeAnalyze  = "analyze"
	AITypeExplain  = "explain"
	AITypeRefactor = "refactor"
	AITypeBugFind  = "bug-find"
	AITypeComplete = "complete"
	AITypeRoadmap  = "roadmap"
)

// AIInteraction records one round-trip with the AI collaborator, kept for
// achievement progress and usage history.
type AIInteraction struct {
	Id        uint
	UserId    uint
	Type      string
	Input     string
	Output    string
	Language  string
	CreatedAt time.Time
}
