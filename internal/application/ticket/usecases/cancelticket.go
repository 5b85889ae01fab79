package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const MsgCancelForbidden = "Você não pode cancelar este chamado."

type CancelTicketCommand struct {
	TicketID uint
	UserID   uint
}

type CancelTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewCancelTicketUseCase(ticketRepo ticket.Repository, userRepo user.Repository, log logger.Interface) *CancelTicketUseCase {
	return &CancelTicketUseCase{ticketRepo: ticketRepo, userRepo: userRepo, logger: log}
}

// Execute cancels a ticket. Staff may cancel any ticket; a client may cancel
// only a ticket they opened themselves.
func (uc *CancelTicketUseCase) Execute(ctx context.Context, cmd CancelTicketCommand) (*ticket.Ticket, error) {
	profile, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}

	if !profile.CanAccessCompany(t.CompanyID()) {
		return nil, apperrors.NewNotFoundError(MsgTicketNotAccessible)
	}
	if !profile.Role().IsStaff() && !t.IsOwnedBy(profile.ID()) {
		return nil, apperrors.NewForbiddenError(MsgCancelForbidden)
	}

	if err := t.Cancel(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket cancelled", "ticket_id", t.ID(), "by", cmd.UserID)
	return t, nil
}
