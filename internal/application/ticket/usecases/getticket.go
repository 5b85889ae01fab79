package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const MsgTicketNotAccessible = "Chamado não encontrado."

type GetTicketQuery struct {
	TicketID uint
	UserID   uint
}

// GetTicketResult bundles the ticket with its comments, already filtered by
// what the caller's role may see.
type GetTicketResult struct {
	Ticket   *ticket.Ticket
	Comments []*ticket.Comment
}

type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	log logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	profile, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}

	// A client sees tickets of any company they are associated with. An
	// inaccessible ticket reads as not found so IDs can not be probed.
	if !profile.CanAccessCompany(t.CompanyID()) {
		return nil, apperrors.NewNotFoundError(MsgTicketNotAccessible)
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID(), profile.Role().CanViewInternalComments())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	return &GetTicketResult{Ticket: t, Comments: comments}, nil
}
