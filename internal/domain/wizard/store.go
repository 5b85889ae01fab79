package wizard

import "context"

// DraftStore persists one draft per user. Get returns nil without error when
// the user has no draft in progress.
type DraftStore interface {
	Get(ctx context.Context, userID uint) (*Draft, error)
	Save(ctx context.Context, d *Draft) error
	Delete(ctx context.Context, userID uint) error
}
