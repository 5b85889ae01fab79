package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// UpdateContactCommand is the self-service edit: the user may change their
// own name and phone, nothing else.
type UpdateContactCommand struct {
	UserID   uint
	FullName string
	Phone    string
}

type UpdateContactUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateContactUseCase(userRepo user.Repository, log logger.Interface) *UpdateContactUseCase {
	return &UpdateContactUseCase{userRepo: userRepo, logger: log}
}

func (uc *UpdateContactUseCase) Execute(ctx context.Context, cmd UpdateContactCommand) (*user.Profile, error) {
	profile, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := profile.UpdateContact(cmd.FullName, cmd.Phone); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, profile); err != nil {
		uc.logger.Errorw("failed to update profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}
