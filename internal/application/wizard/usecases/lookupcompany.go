package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/lookup"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

// queryTimeout bounds list and lookup queries so a slow database turns into
// a retryable error instead of a hung request.
const queryTimeout = 10 * time.Second

// Messages shown on the company lookup step. Which one the user sees
// depends on their role, so a client is never told whether a company exists
// outside their associations.
const (
	MsgInvalidCNPJ      = "CNPJ inválido. Informe os 14 dígitos."
	MsgNoAssociations   = "Seu usuário não está vinculado a nenhuma empresa. Entre em contato com o administrador."
	MsgCompanyNotLinked = "Esta empresa não está vinculada ao seu usuário."
	MsgCompanyNotFound  = "Empresa não cadastrada."
	MsgLookupTimeout    = "A consulta demorou demais. Tente novamente."
	MsgRegistryNotFound = "CNPJ não encontrado na Receita Federal."
	MsgRegistryUnstable = "Serviço de consulta de CNPJ indisponível no momento. Tente novamente."
)

type LookupCompanyQuery struct {
	UserID uint
	CNPJ   string
}

// LookupCompanyResult carries either a registered company or, for admins
// looking up an unregistered CNPJ, a registry preview they can register
// inline.
type LookupCompanyResult struct {
	Company         *company.Company
	RegistryPreview *lookup.CompanyInfo
}

type LookupCompanyUseCase struct {
	companyRepo   company.Repository
	userRepo      user.Repository
	companyClient lookup.CompanyClient
	logger        logger.Interface
}

func NewLookupCompanyUseCase(
	companyRepo company.Repository,
	userRepo user.Repository,
	companyClient lookup.CompanyClient,
	log logger.Interface,
) *LookupCompanyUseCase {
	return &LookupCompanyUseCase{
		companyRepo:   companyRepo,
		userRepo:      userRepo,
		companyClient: companyClient,
		logger:        log,
	}
}

func (uc *LookupCompanyUseCase) Execute(ctx context.Context, query LookupCompanyQuery) (*LookupCompanyResult, error) {
	digits := utils.StripDigits(query.CNPJ)
	if !utils.IsValidCNPJ(digits) {
		return nil, apperrors.NewValidationError(MsgInvalidCNPJ)
	}

	profile, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	// Clients without any company association cannot open tickets at all;
	// this is surfaced before touching the company table so the message is
	// about their account, not about the CNPJ.
	if !profile.Role().IsStaff() && len(profile.AllowedCompanyIDs()) == 0 {
		return nil, apperrors.NewForbiddenError(MsgNoAssociations)
	}

	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	found, err := uc.companyRepo.GetByCNPJ(queryCtx, digits)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewTimeoutError(MsgLookupTimeout)
		}
		uc.logger.Errorw("company lookup failed", "error", err)
		return nil, fmt.Errorf("failed to look up company: %w", err)
	}

	if found != nil {
		if !profile.CanAccessCompany(found.ID()) {
			return nil, apperrors.NewForbiddenError(MsgCompanyNotLinked)
		}
		return &LookupCompanyResult{Company: found}, nil
	}

	// Unregistered CNPJ. Only admins may register companies inline, and only
	// they get the registry preview; everyone else sees not-found.
	if !profile.Role().IsAdmin() {
		return nil, apperrors.NewNotFoundError(MsgCompanyNotFound)
	}

	info, err := uc.companyClient.FetchCompany(ctx, digits)
	if err != nil {
		switch {
		case errors.Is(err, lookup.ErrNotFound):
			return nil, apperrors.NewNotFoundError(MsgRegistryNotFound)
		case errors.Is(err, lookup.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
			uc.logger.Warnw("company registry unavailable", "error", err)
			return nil, apperrors.NewTimeoutError(MsgRegistryUnstable)
		default:
			uc.logger.Errorw("company registry lookup failed", "error", err)
			return nil, fmt.Errorf("failed to query company registry: %w", err)
		}
	}

	return &LookupCompanyResult{RegistryPreview: info}, nil
}
