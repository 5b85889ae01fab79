package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const MsgCompanyNotAccessible = "Empresa não encontrada."

type ListEquipmentQuery struct {
	UserID    uint
	CompanyID uint
}

type ListEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	userRepo      user.Repository
	logger        logger.Interface
}

func NewListEquipmentUseCase(equipmentRepo equipment.Repository, userRepo user.Repository, log logger.Interface) *ListEquipmentUseCase {
	return &ListEquipmentUseCase{equipmentRepo: equipmentRepo, userRepo: userRepo, logger: log}
}

// Execute lists equipment. With a company filter the caller must have
// access to that company; without one, clients get all equipment of their
// associated companies and staff get everything.
func (uc *ListEquipmentUseCase) Execute(ctx context.Context, query ListEquipmentQuery) ([]*equipment.Equipment, error) {
	profile, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if query.CompanyID != 0 {
		if !profile.CanAccessCompany(query.CompanyID) {
			return nil, apperrors.NewNotFoundError(MsgCompanyNotAccessible)
		}
		list, err := uc.equipmentRepo.ListByCompany(ctx, query.CompanyID)
		if err != nil {
			uc.logger.Errorw("failed to list equipment", "company_id", query.CompanyID, "error", err)
			return nil, fmt.Errorf("failed to list equipment: %w", err)
		}
		return list, nil
	}

	if profile.Role().IsStaff() {
		list, err := uc.equipmentRepo.ListByCompanies(ctx, nil)
		if err != nil {
			uc.logger.Errorw("failed to list equipment", "error", err)
			return nil, fmt.Errorf("failed to list equipment: %w", err)
		}
		return list, nil
	}

	allowed := profile.AllowedCompanyIDs()
	if len(allowed) == 0 {
		return []*equipment.Equipment{}, nil
	}
	list, err := uc.equipmentRepo.ListByCompanies(ctx, allowed)
	if err != nil {
		uc.logger.Errorw("failed to list equipment", "error", err)
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return list, nil
}
