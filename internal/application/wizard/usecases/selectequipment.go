package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/wizard"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const (
	MsgEquipmentNotOfCompany = "Este equipamento não pertence à empresa selecionada."
	MsgEquipmentRequired     = "Selecione um equipamento ou informe o modelo."
)

// SelectEquipmentCommand picks an existing equipment by ID or registers a
// new one from the inline form. When EquipmentID is zero the New fields are
// used.
type SelectEquipmentCommand struct {
	UserID      uint
	EquipmentID uint

	NewManufacturer         string
	NewModel                string
	NewSerialNumber         string
	NewInternalLocation     string
	NewInstallationLocation string
	NewApplicationType      string
	NewTechnology           string
}

type SelectEquipmentUseCase struct {
	drafts        wizard.DraftStore
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewSelectEquipmentUseCase(drafts wizard.DraftStore, equipmentRepo equipment.Repository, log logger.Interface) *SelectEquipmentUseCase {
	return &SelectEquipmentUseCase{drafts: drafts, equipmentRepo: equipmentRepo, logger: log}
}

func (uc *SelectEquipmentUseCase) Execute(ctx context.Context, cmd SelectEquipmentCommand) (*wizard.Draft, error) {
	d, err := uc.drafts.Get(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if d == nil || d.Step != wizard.StepEquipmentSelection || d.Company == nil {
		return nil, apperrors.NewValidationError(MsgDraftNotAtEquipment)
	}

	var snap wizard.EquipmentSnapshot
	switch {
	case cmd.EquipmentID != 0:
		e, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID)
		if err != nil {
			uc.logger.Errorw("failed to load equipment", "equipment_id", cmd.EquipmentID, "error", err)
			return nil, fmt.Errorf("failed to load equipment: %w", err)
		}
		if e.CompanyID() != d.Company.ID {
			return nil, apperrors.NewForbiddenError(MsgEquipmentNotOfCompany)
		}
		snap = snapshotOf(e)

	case cmd.NewModel != "":
		e, err := equipment.NewEquipment(
			d.Company.ID,
			cmd.NewManufacturer,
			cmd.NewModel,
			cmd.NewSerialNumber,
			cmd.NewInternalLocation,
			cmd.NewInstallationLocation,
			equipment.ApplicationType(cmd.NewApplicationType),
			cmd.NewTechnology,
		)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.equipmentRepo.Save(ctx, e); err != nil {
			uc.logger.Errorw("failed to register equipment", "company_id", d.Company.ID, "error", err)
			return nil, fmt.Errorf("failed to register equipment: %w", err)
		}
		uc.logger.Infow("equipment registered from wizard", "equipment_id", e.ID(), "company_id", d.Company.ID)
		snap = snapshotOf(e)

	default:
		return nil, apperrors.NewValidationError(MsgEquipmentRequired)
	}

	if err := d.SelectEquipment(snap); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.drafts.Save(ctx, d); err != nil {
		uc.logger.Errorw("failed to save draft", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}

func snapshotOf(e *equipment.Equipment) wizard.EquipmentSnapshot {
	return wizard.EquipmentSnapshot{
		ID:                   e.ID(),
		Manufacturer:         e.Manufacturer(),
		Model:                e.Model(),
		SerialNumber:         e.SerialNumber(),
		InternalLocation:     e.InternalLocation(),
		InstallationLocation: e.InstallationLocation(),
		ApplicationType:      e.ApplicationType().String(),
		Technology:           e.Technology(),
		HasApplicationType:   e.HasApplicationType(),
		HasTechnology:        e.HasTechnology(),
	}
}
