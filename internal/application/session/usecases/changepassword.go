package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	userRepo  user.Repository
	hasher    PasswordHasher
	minLength int
	logger    logger.Interface
}

func NewChangePasswordUseCase(userRepo user.Repository, hasher PasswordHasher, minLength int, log logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{userRepo: userRepo, hasher: hasher, minLength: minLength, logger: log}
}

// Execute replaces the caller's password. A forced-change account skips the
// current password check only when no current password was ever delivered to
// the user, which is not the case here, so the check always applies.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if len(cmd.NewPassword) < uc.minLength {
		return apperrors.NewValidationError(fmt.Sprintf("a nova senha deve ter pelo menos %d caracteres", uc.minLength))
	}

	profile, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if err := uc.hasher.Verify(profile.PasswordHash(), cmd.CurrentPassword); err != nil {
		return apperrors.NewUnauthorizedError("Senha atual incorreta")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := profile.ChangePassword(hash); err != nil {
		return err
	}
	if err := uc.userRepo.Update(ctx, profile); err != nil {
		uc.logger.Errorw("failed to persist password change", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}
