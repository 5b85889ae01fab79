package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const MsgEquipmentHasTickets = "O equipamento possui chamados vinculados e não pode ser excluído."

type DeleteEquipmentCommand struct {
	EquipmentID uint
}

type DeleteEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	ticketRepo    ticket.Repository
	logger        logger.Interface
}

func NewDeleteEquipmentUseCase(equipmentRepo equipment.Repository, ticketRepo ticket.Repository, log logger.Interface) *DeleteEquipmentUseCase {
	return &DeleteEquipmentUseCase{equipmentRepo: equipmentRepo, ticketRepo: ticketRepo, logger: log}
}

func (uc *DeleteEquipmentUseCase) Execute(ctx context.Context, cmd DeleteEquipmentCommand) error {
	if _, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID); err != nil {
		uc.logger.Errorw("failed to load equipment", "equipment_id", cmd.EquipmentID, "error", err)
		return fmt.Errorf("failed to load equipment: %w", err)
	}

	id := cmd.EquipmentID
	linked, err := uc.ticketRepo.List(ctx, ticket.Filter{EquipmentID: &id})
	if err != nil {
		return fmt.Errorf("failed to check linked tickets: %w", err)
	}
	if len(linked) > 0 {
		return apperrors.NewConflictError(MsgEquipmentHasTickets)
	}

	if err := uc.equipmentRepo.Delete(ctx, cmd.EquipmentID); err != nil {
		uc.logger.Errorw("failed to delete equipment", "equipment_id", cmd.EquipmentID, "error", err)
		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	uc.logger.Infow("equipment deleted", "equipment_id", cmd.EquipmentID)
	return nil
}
