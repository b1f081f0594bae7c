package dto

import "time"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	Id                uint       `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	ProfilePictureUrl *string    `json:"profile_picture_url,omitempty"`
	IsAdmin           bool       `json:"is_admin"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type UpdateProfileRequest struct {
	PreferredLanguages []string `json:"preferred_languages"`
	LearningGoals      string   `json:"learning_goals"`
}

type ProfileResponse struct {
	UserId             uint      `json:"user_id"`
	Level              int       `json:"level"`
	XpPoints           int       `json:"xp_points"`
	BugsFixed          int       `json:"bugs_fixed"`
	GamesWon           int       `json:"games_won"`
	CurrentStreak      int       `json:"current_streak"`
	PreferredLanguages []string  `json:"preferred_languages"`
	LearningGoals      string    `json:"learning_goals"`
	LastActiveDate     time.Time `json:"last_active_date"`
}
