package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type UpdateCompanyCommand struct {
	CompanyID   uint
	Name        string
	CNPJ        string
	FullAddress string
}

type UpdateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(companyRepo company.Repository, log logger.Interface) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{companyRepo: companyRepo, logger: log}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*company.Company, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", cmd.CompanyID, "error", err)
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	if err := c.Update(cmd.Name, cmd.CNPJ, cmd.FullAddress); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.companyRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update company", "company_id", cmd.CompanyID, "error", err)
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	uc.logger.Infow("company updated", "company_id", c.ID())
	return c, nil
}
