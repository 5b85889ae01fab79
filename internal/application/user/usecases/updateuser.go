package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// UpdateUserCommand is the admin edit of an account: role, company
// associations and the forced password change flag.
type UpdateUserCommand struct {
	UserID               uint
	FullName             string
	Phone                string
	Role                 string
	CompanyID            uint
	AdditionalCompanyIDs []uint
	ForcePasswordChange  bool
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, log logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, logger: log}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*user.Profile, error) {
	profile, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := profile.UpdateByAdmin(cmd.FullName, cmd.Phone, user.Role(cmd.Role), cmd.CompanyID, cmd.AdditionalCompanyIDs, cmd.ForcePasswordChange); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, profile); err != nil {
		uc.logger.Errorw("failed to update profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("user updated", "user_id", profile.ID())
	return profile, nil
}
