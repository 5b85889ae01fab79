package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type CreateEquipmentCommand struct {
	CompanyID            uint
	Manufacturer         string
	Model                string
	SerialNumber         string
	InternalLocation     string
	InstallationLocation string
	ApplicationType      string
	Technology           string
}

type CreateEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	companyRepo   company.Repository
	logger        logger.Interface
}

func NewCreateEquipmentUseCase(equipmentRepo equipment.Repository, companyRepo company.Repository, log logger.Interface) *CreateEquipmentUseCase {
	return &CreateEquipmentUseCase{equipmentRepo: equipmentRepo, companyRepo: companyRepo, logger: log}
}

func (uc *CreateEquipmentUseCase) Execute(ctx context.Context, cmd CreateEquipmentCommand) (*equipment.Equipment, error) {
	if _, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID); err != nil {
		uc.logger.Errorw("failed to load company", "company_id", cmd.CompanyID, "error", err)
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	e, err := equipment.NewEquipment(
		cmd.CompanyID,
		cmd.Manufacturer,
		cmd.Model,
		cmd.SerialNumber,
		cmd.InternalLocation,
		cmd.InstallationLocation,
		equipment.ApplicationType(cmd.ApplicationType),
		cmd.Technology,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.equipmentRepo.Save(ctx, e); err != nil {
		uc.logger.Errorw("failed to save equipment", "company_id", cmd.CompanyID, "error", err)
		return nil, fmt.Errorf("failed to save equipment: %w", err)
	}

	uc.logger.Infow("equipment created", "equipment_id", e.ID(), "company_id", cmd.CompanyID)
	return e, nil
}
