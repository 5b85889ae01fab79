package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type GetDashboardQuery struct {
	UserID uint
}

// DashboardResult is the landing page data: counts per status and the most
// recent tickets, both scoped to the caller's visibility.
type DashboardResult struct {
	CountsByStatus map[ticket.Status]int64
	Total          int64
	Recent         []*ticket.Ticket
}

// recentLimit caps the recent-ticket strip on the dashboard.
const recentLimit = 10

type GetDashboardUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetDashboardUseCase(ticketRepo ticket.Repository, userRepo user.Repository, log logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{ticketRepo: ticketRepo, userRepo: userRepo, logger: log}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*DashboardResult, error) {
	profile, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var filter ticket.Filter
	if !profile.Role().IsStaff() {
		allowed := profile.AllowedCompanyIDs()
		if len(allowed) == 0 {
			return &DashboardResult{CountsByStatus: map[ticket.Status]int64{}}, nil
		}
		filter.CompanyIDs = allowed
	}

	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	counts, err := uc.ticketRepo.CountByStatus(queryCtx, filter)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewTimeoutError(MsgListTimeout)
		}
		uc.logger.Errorw("failed to count tickets", "error", err)
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	recent, err := uc.ticketRepo.List(queryCtx, filter)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewTimeoutError(MsgListTimeout)
		}
		uc.logger.Errorw("failed to list recent tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return &DashboardResult{CountsByStatus: counts, Total: total, Recent: recent}, nil
}
