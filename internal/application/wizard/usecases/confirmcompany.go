package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/wizard"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type ConfirmCompanyCommand struct {
	UserID    uint
	CompanyID uint
}

type ConfirmCompanyUseCase struct {
	drafts      wizard.DraftStore
	companyRepo company.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewConfirmCompanyUseCase(
	drafts wizard.DraftStore,
	companyRepo company.Repository,
	userRepo user.Repository,
	log logger.Interface,
) *ConfirmCompanyUseCase {
	return &ConfirmCompanyUseCase{
		drafts:      drafts,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

// Execute pins the chosen company on the draft and advances it to equipment
// selection. Access is rechecked here so a stale lookup result can not be
// replayed into a draft for a company the caller lost access to.
func (uc *ConfirmCompanyUseCase) Execute(ctx context.Context, cmd ConfirmCompanyCommand) (*wizard.Draft, error) {
	profile, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if !profile.CanAccessCompany(cmd.CompanyID) {
		return nil, apperrors.NewForbiddenError(MsgCompanyNotLinked)
	}

	c, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", cmd.CompanyID, "error", err)
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	d, err := uc.drafts.Get(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if d == nil {
		d = wizard.NewDraft(cmd.UserID)
	}

	if err := d.ConfirmCompany(wizard.CompanySnapshot{
		ID:          c.ID(),
		Name:        c.Name(),
		CNPJ:        c.CNPJ(),
		FullAddress: c.FullAddress(),
	}); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.drafts.Save(ctx, d); err != nil {
		uc.logger.Errorw("failed to save draft", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}
