package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const MsgCannotDeleteSelf = "Você não pode excluir a própria conta."

type DeleteUserCommand struct {
	UserID      uint
	RequestedBy uint
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, log logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: log}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == cmd.RequestedBy {
		return apperrors.NewValidationError(MsgCannotDeleteSelf)
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete profile", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID, "by", cmd.RequestedBy)
	return nil
}
