package dto

import "time"

type CreateRoadmapRequest struct {
	Title             string   `json:"title" validate:"required,min=1,max=200"`
	Description       string   `json:"description" validate:"required"`
	Category          string   `json:"category" validate:"required"`
	Difficulty        string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	EstimatedDuration string   `json:"estimated_duration" validate:"required"`
	Topics            []string `json:"topics"`
	Goals             []string `json:"goals"`
}

type GenerateRoadmapRequest struct {
	Topic          string `json:"topic" validate:"required"`
	SkillLevel     string `json:"skill_level" validate:"required,oneof=beginner intermediate advanced"`
	TimeCommitment string `json:"time_commitment" validate:"required"`
}

type RoadmapResponse struct {
	Id                uint     `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Difficulty        string   `json:"difficulty"`
	EstimatedDuration string   `json:"estimated_duration"`
	Topics            []string `json:"topics"`
	Goals             []string `json:"goals"`
	Author            string   `json:"author,omitempty"`
	Status            string   `json:"status"`
	EnrolledCount     int      `json:"enrolled_count"`
	CreatedAt         time.Time `json:"created_at"`
}

type EnrollmentResponse struct {
	Id             uint      `json:"id"`
	RoadmapId      uint      `json:"roadmap_id"`
	Progress       int       `json:"progress"`
	EnrolledAt     time.Time `json:"enrolled_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	Notes          *string   `json:"notes,omitempty"`
}

type UpdateEnrollmentRequest struct {
	Progress int     `json:"progress" validate:"min=0,max=100"`
	Notes    *string `json:"notes"`
}
