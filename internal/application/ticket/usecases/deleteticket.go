package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const MsgDeleteForbidden = "Apenas administradores podem excluir chamados."

type DeleteTicketCommand struct {
	TicketID uint
	UserID   uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, userRepo user.Repository, log logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, userRepo: userRepo, logger: log}
}

// Execute removes a ticket and its comments permanently. Admin only.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	profile, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if !profile.Role().IsAdmin() {
		return apperrors.NewForbiddenError(MsgDeleteForbidden)
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return fmt.Errorf("failed to load ticket: %w", err)
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "by", cmd.UserID)
	return nil
}
