package model

import "time"

type CollaborationSession struct {
	Id          uint   `gorm:"primaryKey;autoIncrement"`
	RoomCode    string `gorm:"type:varchar(16);not null;uniqueIndex"`
	Name        string `gorm:"type:varchar(200);not null"`
	Description string
	OwnerId     uint   `gorm:"not null;index"`
	Code        string `gorm:"type:text"`
	Language    string `gorm:"type:varchar(50);not null"`
	IsActive    bool   `gorm:"not null;default:true"`
	IsPublic    bool   `gorm:"not null;default:false"`
	Status      string `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner        *User                       `gorm:"foreignKey:OwnerId"`
	Participants []*CollaborationParticipant `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
}

func (CollaborationSession) TableName() string {
	return "collaboration_sessions"
}

type CollaborationParticipant struct {
	Id        uint `gorm:"primaryKey;autoIncrement"`
	SessionId uint `gorm:"not null;index:idx_session_user,unique,composite:session_user"`
	UserId    uint `gorm:"not null;index:idx_session_user,unique,composite:session_user"`
	JoinedAt  time.Time
	LeftAt    *time.Time
	IsActive  bool `gorm:"not null;default:true"`

	User *User `gorm:"foreignKey:UserId"`
}

func (CollaborationParticipant) TableName() string {
	return "collaboration_participants"
}
