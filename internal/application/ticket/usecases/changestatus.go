package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const MsgStatusChangeForbidden = "Apenas a equipe pode alterar o status de um chamado."

type ChangeStatusCommand struct {
	TicketID uint
	UserID   uint
	Status   string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewChangeStatusUseCase(ticketRepo ticket.Repository, userRepo user.Repository, log logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{ticketRepo: ticketRepo, userRepo: userRepo, logger: log}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ticket.Ticket, error) {
	target, err := ticket.NewStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

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

	from := t.Status()
	if err := t.ChangeStatus(target); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "from", from.String(), "to", target.String(), "by", cmd.UserID)
	return t, nil
}
