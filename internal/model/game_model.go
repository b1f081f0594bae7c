package model

import (
	"time"

	"gorm.io/datatypes"
)

type GameResult struct {
	Id          uint   `gorm:"primaryKey;autoIncrement"`
	UserId      uint   `gorm:"not null;index"`
	GameType    string `gorm:"type:varchar(50);not null"`
	Score       int    `gorm:"not null"`
	TimeSpent   int    `gorm:"not null"`
	Difficulty  string `gorm:"type:varchar(20);not null"`
	Details     datatypes.JSON
	XpEarned    int `gorm:"not null;default:0"`
	CompletedAt time.Time `gorm:"index"`
}

func (GameResult) TableName() string {
	return "game_results"
}
