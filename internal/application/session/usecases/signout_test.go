package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/session"
)

func newSignOutUseCase(store session.Store, hub *session.Hub) *SignOutUseCase {
	cfg := testSessionConfig()
	watcher := session.NewIdleWatcher(store, hub, cfg.IdleTimeout(), nopLogger())
	return NewSignOutUseCase(store, hub, watcher, cfg, nopLogger())
}

func TestSignOut_DeletesSessionAndPublishes(t *testing.T) {
	hub := session.NewHub()
	events, cancel := hub.Subscribe()
	defer cancel()

	deleted := ""
	store := &mockSessionStore{
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	uc := newSignOutUseCase(store, hub)
	err := uc.Execute(context.Background(), SignOutCommand{SessionID: "s1", UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "s1", deleted)

	e := <-events
	assert.Equal(t, session.EventSignedOut, e.Type)
	assert.Equal(t, "s1", e.SessionID)
}

func TestSignOut_SlowStoreDoesNotBlockSignOut(t *testing.T) {
	hub := session.NewHub()
	events, cancel := hub.Subscribe()
	defer cancel()

	store := &mockSessionStore{
		DeleteFunc: func(ctx context.Context, id string) error {
			// Simulate a store that only answers after the caller gave up.
			<-ctx.Done()
			return ctx.Err()
		},
	}

	uc := newSignOutUseCase(store, hub)

	start := time.Now()
	err := uc.Execute(context.Background(), SignOutCommand{SessionID: "s1", UserID: 1})
	elapsed := time.Since(start)

	// Local teardown proceeds regardless of the store.
	require.NoError(t, err)
	assert.Less(t, elapsed, 5*time.Second)

	e := <-events
	assert.Equal(t, session.EventSignedOut, e.Type)
}

func TestSignOut_StoreErrorIsSwallowed(t *testing.T) {
	hub := session.NewHub()
	store := &mockSessionStore{
		DeleteFunc: func(ctx context.Context, id string) error {
			return assert.AnError
		},
	}

	uc := newSignOutUseCase(store, hub)
	require.NoError(t, uc.Execute(context.Background(), SignOutCommand{SessionID: "s1", UserID: 1}))
}
