package events

import "time"

// Event defines the contract for all platform events pushed onto the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the standard Event implementation used by the constructors
// below.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes.
const (
	TypeUserRegistered      = "USER_REGISTERED"
	TypeSessionCreated      = "SESSION_CREATED"
	TypeSessionDeleted      = "SESSION_DELETED"
	TypeAchievementUnlocked = "ACHIEVEMENT_UNLOCKED"
	TypeLevelUp             = "LEVEL_UP"
)

func NewUserRegistered(userID uint, email string) Event {
	return BaseEvent{
		Type:       TypeUserRegistered,
		Data:       map[string]interface{}{"user_id": userID, "email": email},
		OccurredAt: time.Now(),
	}
}

func NewSessionCreated(roomCode string, ownerID uint, language string) Event {
	return BaseEvent{
		Type:       TypeSessionCreated,
		Data:       map[string]interface{}{"room_code": roomCode, "owner_id": ownerID, "language": language},
		OccurredAt: time.Now(),
	}
}

func NewSessionDeleted(roomCode string, actorID uint) Event {
	return BaseEvent{
		Type:       TypeSessionDeleted,
		Data:       map[string]interface{}{"room_code": roomCode, "actor_id": actorID},
		OccurredAt: time.Now(),
	}
}

func NewAchievementUnlocked(userID uint, achievementID uint, name string, xpReward int) Event {
	return BaseEvent{
		Type: TypeAchievementUnlocked,
		Data: map[string]interface{}{
			"user_id":        userID,
			"achievement_id": achievementID,
			"name":           name,
			"xp_reward":      xpReward,
		},
		OccurredAt: time.Now(),
	}
}

func NewLevelUp(userID uint, newLevel int) Event {
	return BaseEvent{
		Type:       TypeLevelUp,
		Data:       map[string]interface{}{"user_id": userID, "new_level": newLevel},
		OccurredAt: time.Now(),
	}
}
