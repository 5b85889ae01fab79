package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/wizard"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const MsgDraftNotAtEquipment = "Confirme a empresa antes de escolher o equipamento."

type ListEquipmentQuery struct {
	UserID uint
}

// ListEquipmentResult pairs the company's registered equipment with the
// static manufacturer catalog used when registering a new one.
type ListEquipmentResult struct {
	Equipment     []*equipment.Equipment
	Manufacturers []string
}

type ListEquipmentUseCase struct {
	drafts        wizard.DraftStore
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewListEquipmentUseCase(drafts wizard.DraftStore, equipmentRepo equipment.Repository, log logger.Interface) *ListEquipmentUseCase {
	return &ListEquipmentUseCase{drafts: drafts, equipmentRepo: equipmentRepo, logger: log}
}

func (uc *ListEquipmentUseCase) Execute(ctx context.Context, query ListEquipmentQuery) (*ListEquipmentResult, error) {
	d, err := uc.drafts.Get(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if d == nil || d.Step != wizard.StepEquipmentSelection || d.Company == nil {
		return nil, apperrors.NewValidationError(MsgDraftNotAtEquipment)
	}

	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	items, err := uc.equipmentRepo.ListByCompany(queryCtx, d.Company.ID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewTimeoutError(MsgLookupTimeout)
		}
		uc.logger.Errorw("failed to list equipment", "company_id", d.Company.ID, "error", err)
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	return &ListEquipmentResult{
		Equipment:     items,
		Manufacturers: equipment.CatalogManufacturers(),
	}, nil
}
