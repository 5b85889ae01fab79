package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/biztime"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// queryTimeout bounds listing queries; a slow database surfaces as a
// retryable error instead of a hung request.
const queryTimeout = 10 * time.Second

const MsgListTimeout = "A consulta demorou demais. Tente novamente."

type ListTicketsQuery struct {
	UserID      uint
	Status      string
	CompanyID   uint
	EquipmentID uint
	OnlyMine    bool
	DateFrom    *time.Time
	DateTo      *time.Time
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, userRepo user.Repository, log logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, userRepo: userRepo, logger: log}
}

// Execute lists tickets scoped to the caller: staff see everything matching
// the filter, clients only tickets of companies they are associated with.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*ticket.Ticket, error) {
	profile, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	filter, err := buildFilter(profile, query)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		// Client with no company associations: nothing to list.
		return []*ticket.Ticket{}, nil
	}

	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tickets, err := uc.ticketRepo.List(queryCtx, *filter)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewTimeoutError(MsgListTimeout)
		}
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// buildFilter translates the query into a repository filter honoring the
// caller's visibility. A nil filter with nil error means the result set is
// empty by construction.
func buildFilter(profile *user.Profile, query ListTicketsQuery) (*ticket.Filter, error) {
	var filter ticket.Filter

	if query.Status != "" {
		st, err := ticket.NewStatus(query.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = &st
	}
	if query.EquipmentID != 0 {
		id := query.EquipmentID
		filter.EquipmentID = &id
	}
	if query.OnlyMine {
		uid := profile.ID()
		filter.CreatedBy = &uid
	}
	if query.DateFrom != nil {
		from := biztime.StartOfDay(*query.DateFrom)
		filter.DateFrom = &from
	}
	if query.DateTo != nil {
		to := biztime.EndOfDay(*query.DateTo)
		filter.DateTo = &to
	}

	if profile.Role().IsStaff() {
		if query.CompanyID != 0 {
			filter.CompanyIDs = []uint{query.CompanyID}
		}
		return &filter, nil
	}

	allowed := profile.AllowedCompanyIDs()
	if len(allowed) == 0 {
		return nil, nil
	}
	if query.CompanyID != 0 {
		if !profile.CanAccessCompany(query.CompanyID) {
			return nil, nil
		}
		filter.CompanyIDs = []uint{query.CompanyID}
	} else {
		filter.CompanyIDs = allowed
	}
	return &filter, nil
}
