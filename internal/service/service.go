package service

import (
	"context"
	"errors"
	"gamehub-server/internal/events"
	"github.com/rs/zerolog"
	"os"
	"time"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrMissingFields  = errors.New("required fields are missing")
	ErrUserExists     = errors.New("user already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrWrongPassword  = errors.New("wrong password")
	ErrNotModified    = errors.New("user not found or value unchanged")
	ErrGameIDRequired = errors.New("game id is required")
	ErrGameNotFound   = errors.New("game not found")
)

// now is the creation timestamp, truncated to what the datastores keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// publish never fails the request; the write it reports has already happened.
func publish(ctx context.Context, p events.Publisher, event events.Event) {
	if err := p.Publish(ctx, event); err != nil {
		logger.Error().Err(err).Str("event", event.Type).Str("subject", event.Subject).Msg("Error publishing event")
	}
}
