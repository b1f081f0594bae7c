package entity

import "time"

const SessionStatusActive = "active"

// CollaborationSession is the durable record of a collaboration room. The
// room code is its public identity, globally unique and immutable after
// creation. The stored code blob is last-write-wins.
type CollaborationSession struct {
	Id          uint
	RoomCode    string
	Name        string
	Description string
	OwnerId     uint
	Code        string
	Language    string
	IsActive    bool
	IsPublic    bool
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner        *User
	Participants []*CollaborationParticipant
}

// CollaborationParticipant is the durable membership row, at most one active
// per (session, user). Rejoining reactivates rather than duplicating.
type CollaborationParticipant struct {
	Id        uint
	SessionId uint
	UserId    uint
	JoinedAt  time.Time
	LeftAt    *time.Time
	IsActive  bool

	User *User
}
