package events

//go:generate mockgen -destination=mock_events/mock_publisher.go -package=mock_events gamehub-server/internal/events Publisher

import (
	"context"
	"github.com/google/uuid"
	"time"
)

const (
	UserRegistered   = "user.registered"
	UserNameUpdated  = "user.name_updated"
	UserPhotoUpdated = "user.photo_updated"
	GameCreated      = "game.created"
	GameDeleted      = "game.deleted"
)

// Event is a change notification emitted after a successful write.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Subject    string      `json:"subject"` // id or email of the affected document
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload,omitempty"`
}

func NewEvent(eventType, subject string, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Key is used as the Kafka message key, e.g. "game.created.65f0c...".
func (e Event) Key() string {
	return e.Type + "." + e.Subject
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Noop drops every event. It is the default sink.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
