package model

import "time"

type Achievement struct {
	Id               uint   `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"type:varchar(100);not null"`
	Description      string `gorm:"not null"`
	Icon             string `gorm:"type:varchar(10);not null"`
	Rarity           string `gorm:"type:varchar(20);not null"`
	XpReward         int    `gorm:"not null;default:0"`
	RequirementType  string `gorm:"type:varchar(50);not null"`
	RequirementValue int    `gorm:"not null"`
}

func (Achievement) TableName() string {
	return "achievements"
}

type UserAchievement struct {
	Id            uint `gorm:"primaryKey;autoIncrement"`
	UserId        uint `gorm:"not null;index"`
	AchievementId uint `gorm:"not null;index"`
	UnlockedAt    time.Time
	Progress      int `gorm:"not null;default:0"`

	Achievement *Achievement `gorm:"foreignKey:AchievementId"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
