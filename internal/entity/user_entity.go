package entity

import "time"

const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)

type User struct {
	Id                uint
	Name              string
	Email             string
	PasswordHash      string
	ProfilePictureUrl *string
	IsEmailVerified   bool
	IsAdmin           bool
	LastLoginAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Profile *UserProfile
}

// UserProfile carries the gamification counters, one row per user.
type UserProfile struct {
	UserId             uint
	Level              int
	XpPoints           int
	BugsFixed          int
	GamesWon           int
	CurrentStreak      int
	PreferredLanguages []string
	LearningGoals      string
	LastActiveDate     time.Time
}
