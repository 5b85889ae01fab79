package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/setting"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// UpdateSettingsCommand carries only the keys being changed. Nil pointers
// leave the stored value untouched.
type UpdateSettingsCommand struct {
	PortalName   *string
	PrimaryColor *string
}

type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpdateSettingsUseCase(settingRepo setting.Repository, log logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settingRepo: settingRepo, logger: log}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) error {
	pending := map[string]*string{
		setting.KeyPortalName:   cmd.PortalName,
		setting.KeyPrimaryColor: cmd.PrimaryColor,
	}

	for key, value := range pending {
		if value == nil {
			continue
		}
		s, err := setting.NewSetting(key, *value)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.settingRepo.Upsert(ctx, s); err != nil {
			uc.logger.Errorw("failed to save setting", "key", key, "error", err)
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	uc.logger.Infow("settings updated")
	return nil
}
