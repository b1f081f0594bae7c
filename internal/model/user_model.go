package model

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	Id                uint    `gorm:"primaryKey;autoIncrement"`
	Name              string  `gorm:"type:varchar(100);not null"`
	Email             string  `gorm:"type:varchar(256);not null;uniqueIndex"`
	PasswordHash      string  `gorm:"not null"`
	ProfilePictureUrl *string `gorm:"type:varchar(512)"`
	IsEmailVerified   bool    `gorm:"not null;default:false"`
	IsAdmin           bool    `gorm:"not null;default:false"`
	LastLoginAt       *time.Time
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`

	Profile *UserProfile `gorm:"foreignKey:UserId"`
}

func (User) TableName() string {
	return "users"
}

type UserProfile struct {
	UserId             uint           `gorm:"primaryKey"`
	Level              int            `gorm:"not null;default:1"`
	XpPoints           int            `gorm:"not null;default:0"`
	BugsFixed          int            `gorm:"not null;default:0"`
	GamesWon           int            `gorm:"not null;default:0"`
	CurrentStreak      int            `gorm:"not null;default:0"`
	PreferredLanguages datatypes.JSON `gorm:"type:jsonb"`
	LearningGoals      string
	LastActiveDate     time.Time
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
