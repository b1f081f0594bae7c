package dto

import "time"

type CreateSessionRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Language    string `json:"language" validate:"required"`
	Code        string `json:"code"`
	IsPublic    bool   `json:"is_public"`
}

type UpdateCodeRequest struct {
	Code string `json:"code"`
}

type UpdateSessionRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

type ParticipantResponse struct {
	UserId   uint       `json:"user_id"`
	Name     string     `json:"name"`
	JoinedAt time.Time  `json:"joined_at"`
	LeftAt   *time.Time `json:"left_at,omitempty"`
	IsActive bool       `json:"is_active"`
}

type SessionResponse struct {
	Id               uint                  `json:"id"`
	RoomCode         string                `json:"room_code"`
	Name             string                `json:"name"`
	Description      string                `json:"description"`
	Language         string                `json:"language"`
	Code             string                `json:"code"`
	IsActive         bool                  `json:"is_active"`
	IsPublic         bool                  `json:"is_public"`
	Owner            string                `json:"owner"`
	OwnerId          uint                  `json:"owner_id"`
	Participants     []ParticipantResponse `json:"participants"`
	ParticipantCount int                   `json:"participant_count"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// PersistCodeMessage is the payload carried on the in-process queue that
// decouples broadcast from the durable code write.
type PersistCodeMessage struct {
	SessionId uint   `json:"session_id"`
	Code      string `json:"code"`
}

type SessionSummaryResponse struct {
	Id               uint      `json:"id"`
	RoomCode         string    `json:"room_code"`
	Name             string    `json:"name"`
	Language         string    `json:"language"`
	IsPublic         bool      `json:"is_public"`
	Owner            string    `json:"owner"`
	ParticipantCount int       `json:"participant_count"`
	CreatedAt        time.Time `json:"created_at"`
}
