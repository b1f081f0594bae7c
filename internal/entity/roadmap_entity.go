package entity

import "time"

const (
	RoadmapStatusActive   = "active"
	RoadmapStatusDraft    = "draft"
	RoadmapStatusArchived = "archived"
)

type Roadmap struct {
	Id                uint
	Title             string
	Description       string
	Category          string
	Difficulty        string // beginner, intermediate, advanced
	EstimatedDuration string // e.g. "6 months", "3 weeks"
	Topics            []string
	Goals             []string
	AuthorId          uint
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Author      *User
	Enrollments []*RoadmapEnrollment
}

type RoadmapEnrollment struct {
	Id             uint
	RoadmapId      uint
	UserId         uint
	Progress       int // percentage 0-100
	EnrolledAt     time.Time
	LastAccessedAt time.Time
	Notes          *string
}
