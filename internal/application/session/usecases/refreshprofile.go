package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/session"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// refreshDelay gives a just-committed profile write time to become readable
// before the reload, avoiding a stale read right after an update.
const refreshDelay = 100 * time.Millisecond

type RefreshProfileQuery struct {
	UserID    uint
	SessionID string
}

type RefreshProfileUseCase struct {
	userRepo user.Repository
	hub      *session.Hub
	logger   logger.Interface
}

func NewRefreshProfileUseCase(userRepo user.Repository, hub *session.Hub, log logger.Interface) *RefreshProfileUseCase {
	return &RefreshProfileUseCase{userRepo: userRepo, hub: hub, logger: log}
}

// Execute reloads the caller's profile after a short settle delay, retrying
// once on failure before giving up.
func (uc *RefreshProfileUseCase) Execute(ctx context.Context, query RefreshProfileQuery) (*user.Profile, error) {
	select {
	case <-time.After(refreshDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	profile, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Warnw("profile refresh failed, retrying once", "user_id", query.UserID, "error", err)
		profile, err = uc.userRepo.GetByID(ctx, query.UserID)
		if err != nil {
			uc.logger.Errorw("profile refresh failed after retry", "user_id", query.UserID, "error", err)
			return nil, fmt.Errorf("failed to refresh profile: %w", err)
		}
	}

	uc.hub.Publish(session.Event{Type: session.EventProfileRefreshed, UserID: query.UserID, SessionID: query.SessionID})
	return profile, nil
}
