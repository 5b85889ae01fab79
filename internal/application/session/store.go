package session

import (
	"context"
	"time"
)

// Session is the server-side record backing an access token.
type Session struct {
	ID         string    `json:"id"`
	UserID     uint      `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Store persists sessions with a TTL. Get returns nil without error for an
// unknown or expired session.
type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Touch(ctx context.Context, id string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
