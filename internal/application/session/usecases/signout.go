package usecases

import (
	"context"
	"errors"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/session"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/config"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type SignOutCommand struct {
	SessionID string
	UserID    uint
}

type SignOutUseCase struct {
	store       session.Store
	hub         *session.Hub
	idleWatcher *session.IdleWatcher
	cfg         config.SessionConfig
	logger      logger.Interface
}

func NewSignOutUseCase(
	store session.Store,
	hub *session.Hub,
	idleWatcher *session.IdleWatcher,
	cfg config.SessionConfig,
	log logger.Interface,
) *SignOutUseCase {
	return &SignOutUseCase{
		store:       store,
		hub:         hub,
		idleWatcher: idleWatcher,
		cfg:         cfg,
		logger:      log,
	}
}

// Execute signs the session out. The store delete is bounded by the
// configured sign-out timeout: if the store is slow or unreachable the
// session is still torn down locally, so sign-out never hangs the user.
func (uc *SignOutUseCase) Execute(ctx context.Context, cmd SignOutCommand) error {
	uc.idleWatcher.Stop(cmd.SessionID)

	deleteCtx, cancel := context.WithTimeout(ctx, uc.cfg.SignOutTimeout())
	defer cancel()

	if err := uc.store.Delete(deleteCtx, cmd.SessionID); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			uc.logger.Warnw("session store slow on sign-out, proceeding locally", "session_id", cmd.SessionID)
		} else {
			uc.logger.Warnw("failed to delete session on sign-out", "session_id", cmd.SessionID, "error", err)
		}
	}

	uc.hub.Publish(session.Event{Type: session.EventSignedOut, UserID: cmd.UserID, SessionID: cmd.SessionID})
	uc.logger.Infow("user signed out", "user_id", cmd.UserID, "session_id", cmd.SessionID)
	return nil
}
