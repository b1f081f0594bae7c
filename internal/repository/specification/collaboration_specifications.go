package specification

import "gorm.io/gorm"

// ByRoomCode filters sessions by their public room code.
type ByRoomCode struct {
	RoomCode string
}

func (s ByRoomCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("room_code = ?", s.RoomCode)
}

type BySessionID struct {
	SessionID uint
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

type ByOwnerID struct {
	OwnerID uint
}

func (s ByOwnerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

type PublicOnly struct{}

func (s PublicOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_public = ?", true)
}

// WithOwner preloads the session owner.
type WithOwner struct{}

func (s WithOwner) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Owner")
}

// WithActiveParticipants preloads active participants and their users.
type WithActiveParticipants struct{}

func (s WithActiveParticipants) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Participants", "is_active = ?", true).Preload("Participants.User")
}
