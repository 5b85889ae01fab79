package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/lookup"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

const (
	MsgInvalidCNPJ      = "CNPJ inválido. Informe os 14 dígitos."
	MsgCompanyExists    = "Já existe uma empresa cadastrada com este CNPJ."
	MsgRegistryNotFound = "CNPJ não encontrado na Receita Federal."
	MsgRegistryDown     = "Serviço de consulta de CNPJ indisponível no momento. Tente novamente."
)

// RegisterCompanyCommand creates a company. With FromRegistry set the name
// and address come from the national registry; otherwise the Name and
// FullAddress fields are used as given.
type RegisterCompanyCommand struct {
	CNPJ         string
	FromRegistry bool
	Name         string
	FullAddress  string
}

type RegisterCompanyUseCase struct {
	companyRepo   company.Repository
	companyClient lookup.CompanyClient
	logger        logger.Interface
}

func NewRegisterCompanyUseCase(companyRepo company.Repository, companyClient lookup.CompanyClient, log logger.Interface) *RegisterCompanyUseCase {
	return &RegisterCompanyUseCase{companyRepo: companyRepo, companyClient: companyClient, logger: log}
}

func (uc *RegisterCompanyUseCase) Execute(ctx context.Context, cmd RegisterCompanyCommand) (*company.Company, error) {
	digits := utils.StripDigits(cmd.CNPJ)
	if !utils.IsValidCNPJ(digits) {
		return nil, apperrors.NewValidationError(MsgInvalidCNPJ)
	}

	existing, err := uc.companyRepo.GetByCNPJ(ctx, digits)
	if err != nil {
		uc.logger.Errorw("failed to check existing company", "error", err)
		return nil, fmt.Errorf("failed to check existing company: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(MsgCompanyExists)
	}

	name := cmd.Name
	address := cmd.FullAddress
	if cmd.FromRegistry {
		info, err := uc.companyClient.FetchCompany(ctx, digits)
		if err != nil {
			switch {
			case errors.Is(err, lookup.ErrNotFound):
				return nil, apperrors.NewNotFoundError(MsgRegistryNotFound)
			case errors.Is(err, lookup.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
				return nil, apperrors.NewTimeoutError(MsgRegistryDown)
			default:
				uc.logger.Errorw("registry lookup failed", "error", err)
				return nil, fmt.Errorf("failed to query company registry: %w", err)
			}
		}
		name = info.LegalName
		if info.TradeName != "" {
			name = info.TradeName
		}
		address = info.FullAddress()
	}

	c, err := company.NewCompany(name, digits, address)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.companyRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save company", "error", err)
		return nil, fmt.Errorf("failed to save company: %w", err)
	}

	uc.logger.Infow("company registered", "company_id", c.ID(), "cnpj", c.CNPJ())
	return c, nil
}
