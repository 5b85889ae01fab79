package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type ListCompaniesQuery struct {
	UserID uint
}

type ListCompaniesUseCase struct {
	companyRepo company.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.Repository, userRepo user.Repository, log logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{companyRepo: companyRepo, userRepo: userRepo, logger: log}
}

// Execute lists companies visible to the caller: staff see all, clients only
// their associations.
func (uc *ListCompaniesUseCase) Execute(ctx context.Context, query ListCompaniesQuery) ([]*company.Company, error) {
	profile, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if profile.Role().IsStaff() {
		list, err := uc.companyRepo.List(ctx)
		if err != nil {
			uc.logger.Errorw("failed to list companies", "error", err)
			return nil, fmt.Errorf("failed to list companies: %w", err)
		}
		return list, nil
	}

	allowed := profile.AllowedCompanyIDs()
	if len(allowed) == 0 {
		return []*company.Company{}, nil
	}
	list, err := uc.companyRepo.GetByIDs(ctx, allowed)
	if err != nil {
		uc.logger.Errorw("failed to load companies", "error", err)
		return nil, fmt.Errorf("failed to load companies: %w", err)
	}
	return list, nil
}
