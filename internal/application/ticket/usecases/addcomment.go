package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/notification"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const (
	MsgInternalCommentForbidden = "Apenas a equipe pode criar notas internas."
	MsgTicketTerminal           = "Este chamado está encerrado e não aceita novas respostas."
)

type AddCommentCommand struct {
	TicketID   uint
	UserID     uint
	Content    string
	IsInternal bool
}

type AddCommentResult struct {
	Comment *ticket.Comment
	// NotificationSent is false when the counterpart email failed; the
	// comment itself was still recorded.
	NotificationSent bool
}

type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	dispatcher  *notification.Dispatcher
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	dispatcher *notification.Dispatcher,
	log logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		dispatcher:  dispatcher,
		logger:      log,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
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
	if t.Status().IsTerminal() {
		return nil, apperrors.NewValidationError(MsgTicketTerminal)
	}
	if cmd.IsInternal && !profile.Role().CanViewInternalComments() {
		return nil, apperrors.NewForbiddenError(MsgInternalCommentForbidden)
	}

	comment, err := ticket.NewComment(t.ID(), profile.ID(), profile.FullName(), profile.Role().String(), cmd.Content, cmd.IsInternal)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	sent := uc.dispatcher.NotifyCommentAdded(ctx, t, comment)

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "ticket_id", t.ID(), "internal", comment.IsInternal())
	return &AddCommentResult{Comment: comment, NotificationSent: sent}, nil
}
