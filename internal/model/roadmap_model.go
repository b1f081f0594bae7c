package model

import (
	"time"

	"gorm.io/datatypes"
)

type Roadmap struct {
	Id                uint   `gorm:"primaryKey;autoIncrement"`
	Title             string `gorm:"type:varchar(200);not null"`
	Description       string `gorm:"not null"`
	Category          string `gorm:"type:varchar(50);not null"`
	Difficulty        string `gorm:"type:varchar(20);not null"`
	EstimatedDuration string `gorm:"type:varchar(50);not null"`
	Topics            datatypes.JSON
	Goals             datatypes.JSON
	AuthorId          uint   `gorm:"not null;index"`
	Status            string `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Author      *User                `gorm:"foreignKey:AuthorId"`
	Enrollments []*RoadmapEnrollment `gorm:"foreignKey:RoadmapId;constraint:OnDelete:CASCADE"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

type RoadmapEnrollment struct {
	Id             uint `gorm:"primaryKey;autoIncrement"`
	RoadmapId      uint `gorm:"not null;index:idx_roadmap_user,unique"`
	UserId         uint `gorm:"not null;index:idx_roadmap_user,unique"`
	Progress       int  `gorm:"not null;default:0"`
	EnrolledAt     time.Time
	LastAccessedAt time.Time
	Notes          *string
}

func (RoadmapEnrollment) TableName() string {
	return "roadmap_enrollments"
}
