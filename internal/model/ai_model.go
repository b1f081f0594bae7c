package model

import "time"

type AIInteraction struct {
	Id        uint   `gorm:"primaryKey;autoIncrement"`
	UserId    uint   `gorm:"not null;index"`
	Type      string `gorm:"type:varchar(50);not null"`
	Input     string `gorm:"type:text"`
	Output    string `gorm:"type:text"`
	Language  string `gorm:"type:varchar(50)"`
	CreatedAt time.Time
}

func (AIInteraction) TableName() string {
	return "ai_interactions"
}
