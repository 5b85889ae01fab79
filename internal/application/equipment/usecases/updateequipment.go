package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type UpdateEquipmentCommand struct {
	EquipmentID          uint
	Manufacturer         string
	Model                string
	SerialNumber         string
	InternalLocation     string
	InstallationLocation string
	ApplicationType      string
	Technology           string
}

type UpdateEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewUpdateEquipmentUseCase(equipmentRepo equipment.Repository, log logger.Interface) *UpdateEquipmentUseCase {
	return &UpdateEquipmentUseCase{equipmentRepo: equipmentRepo, logger: log}
}

func (uc *UpdateEquipmentUseCase) Execute(ctx context.Context, cmd UpdateEquipmentCommand) (*equipment.Equipment, error) {
	e, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID)
	if err != nil {
		uc.logger.Errorw("failed to load equipment", "equipment_id", cmd.EquipmentID, "error", err)
		return nil, fmt.Errorf("failed to load equipment: %w", err)
	}

	if err := e.Update(
		cmd.Manufacturer,
		cmd.Model,
		cmd.SerialNumber,
		cmd.InternalLocation,
		cmd.InstallationLocation,
		equipment.ApplicationType(cmd.ApplicationType),
		cmd.Technology,
	); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.equipmentRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to update equipment", "equipment_id", e.ID(), "error", err)
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}

	uc.logger.Infow("equipment updated", "equipment_id", e.ID())
	return e, nil
}
