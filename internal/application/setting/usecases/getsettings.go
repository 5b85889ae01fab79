package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/setting"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// Branding is the resolved portal appearance, with defaults applied for
// anything never configured.
type Branding struct {
	PortalName   string
	LogoURL      string
	PrimaryColor string
}

type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewGetSettingsUseCase(settingRepo setting.Repository, log logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingRepo: settingRepo, logger: log}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*Branding, error) {
	all, err := uc.settingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	b := &Branding{
		PortalName:   setting.DefaultPortalName,
		PrimaryColor: setting.DefaultPrimaryColor,
	}
	for _, s := range all {
		switch s.Key() {
		case setting.KeyPortalName:
			if s.Value() != "" {
				b.PortalName = s.Value()
			}
		case setting.KeyLogoURL:
			b.LogoURL = s.Value()
		case setting.KeyPrimaryColor:
			if s.Value() != "" {
				b.PrimaryColor = s.Value()
			}
		}
	}
	return b, nil
}
