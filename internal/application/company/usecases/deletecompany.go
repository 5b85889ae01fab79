package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const MsgCompanyHasTickets = "A empresa possui chamados e não pode ser excluída."

type DeleteCompanyCommand struct {
	CompanyID uint
}

type DeleteCompanyUseCase struct {
	companyRepo   company.Repository
	equipmentRepo equipment.Repository
	ticketRepo    ticket.Repository
	logger        logger.Interface
}

func NewDeleteCompanyUseCase(
	companyRepo company.Repository,
	equipmentRepo equipment.Repository,
	ticketRepo ticket.Repository,
	log logger.Interface,
) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{
		companyRepo:   companyRepo,
		equipmentRepo: equipmentRepo,
		ticketRepo:    ticketRepo,
		logger:        log,
	}
}

// Execute removes a company and its equipment. A company with ticket
// history is kept; tickets are the audit trail.
func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, cmd DeleteCompanyCommand) error {
	if _, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID); err != nil {
		uc.logger.Errorw("failed to load company", "company_id", cmd.CompanyID, "error", err)
		return fmt.Errorf("failed to load company: %w", err)
	}

	existing, err := uc.ticketRepo.List(ctx, ticket.Filter{CompanyIDs: []uint{cmd.CompanyID}})
	if err != nil {
		uc.logger.Errorw("failed to check company tickets", "company_id", cmd.CompanyID, "error", err)
		return fmt.Errorf("failed to check company tickets: %w", err)
	}
	if len(existing) > 0 {
		return apperrors.NewConflictError(MsgCompanyHasTickets)
	}

	items, err := uc.equipmentRepo.ListByCompany(ctx, cmd.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to list equipment: %w", err)
	}
	for _, e := range items {
		if err := uc.equipmentRepo.Delete(ctx, e.ID()); err != nil {
			uc.logger.Errorw("failed to delete equipment", "equipment_id", e.ID(), "error", err)
			return fmt.Errorf("failed to delete equipment: %w", err)
		}
	}

	if err := uc.companyRepo.Delete(ctx, cmd.CompanyID); err != nil {
		uc.logger.Errorw("failed to delete company", "company_id", cmd.CompanyID, "error", err)
		return fmt.Errorf("failed to delete company: %w", err)
	}

	uc.logger.Infow("company deleted", "company_id", cmd.CompanyID)
	return nil
}
