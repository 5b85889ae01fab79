package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID uint
	UserID   uint
}

type CloseTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewCloseTicketUseCase(ticketRepo ticket.Repository, userRepo user.Repository, log logger.Interface) *CloseTicketUseCase {
	return &CloseTicketUseCase{ticketRepo: ticketRepo, userRepo: userRepo, logger: log}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*ticket.Ticket, error) {
	profile, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if !profile.Role().IsStaff() {
		return nil, apperrors.NewForbiddenError(MsgStatusChangeForbidden)
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}

	if err := t.Close(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket closed", "ticket_id", t.ID(), "by", cmd.UserID)
	return t, nil
}
