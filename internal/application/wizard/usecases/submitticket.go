package usecases

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/notification"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/wizard"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/db"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

// Validation messages for the details step, in the order the fields are
// checked.
const (
	MsgDraftNotReady          = "Complete as etapas anteriores antes de enviar o chamado."
	MsgEquipmentDataRequired  = "Informe o fabricante e o modelo do equipamento."
	MsgDescriptionTooShort    = "A descrição deve ter pelo menos 30 caracteres."
	MsgFullAddressRequired    = "Informe o endereço completo do atendimento."
	MsgRequesterNameRequired  = "Informe o nome do solicitante."
	MsgRequesterPhoneRequired = "Informe o telefone do solicitante."
	MsgRequesterEmailRequired = "Informe o email do solicitante."
	MsgApplicationRequired    = "Informe a aplicação do equipamento (Acesso ou Ponto)."
	MsgCardTypeRequired       = "Informe a tecnologia de identificação."
)

type SubmitTicketCommand struct {
	UserID           uint
	Description      string
	FullAddress      string
	RequesterName    string
	RequesterPhone   string
	RequesterEmail   string
	PriorRemediation string
	NeedsIntegration bool
	IntegrationNotes string
	ApplicationType  string
	CardType         string
	CEP              string
	AddressNumber    string
}

type SubmitTicketResult struct {
	Ticket *ticket.Ticket
	// NotificationsSent is false when at least one of the best-effort emails
	// failed. The ticket itself was still created.
	NotificationsSent bool
}

type SubmitTicketUseCase struct {
	drafts      wizard.DraftStore
	ticketRepo  ticket.Repository
	companyRepo company.Repository
	dispatcher  *notification.Dispatcher
	txMgr       db.Transactor
	logger      logger.Interface
}

func NewSubmitTicketUseCase(
	drafts wizard.DraftStore,
	ticketRepo ticket.Repository,
	companyRepo company.Repository,
	dispatcher *notification.Dispatcher,
	txMgr db.Transactor,
	log logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		drafts:      drafts,
		ticketRepo:  ticketRepo,
		companyRepo: companyRepo,
		dispatcher:  dispatcher,
		txMgr:       txMgr,
		logger:      log,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error) {
	d, err := uc.drafts.Get(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if d == nil || !d.ReadyToSubmit() {
		return nil, apperrors.NewValidationError(MsgDraftNotReady)
	}

	if err := uc.validateCommand(cmd, d); err != nil {
		return nil, err
	}

	c, err := uc.companyRepo.GetByID(ctx, d.Company.ID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", d.Company.ID, "error", err)
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	// Companies registered without an address have it completed here, once,
	// from the address the requester declared on the details step.
	if !c.HasAddress() {
		if err := uc.completeCompanyAddress(ctx, c, cmd); err != nil {
			return nil, err
		}
	}

	appType := d.Equipment.ApplicationType
	if !d.Equipment.HasApplicationType {
		appType = cmd.ApplicationType
	}
	cardType := d.Equipment.Technology
	if !d.Equipment.HasTechnology {
		cardType = cmd.CardType
	}

	fd := ticket.FormData{
		CNPJ:                 d.Company.CNPJ,
		CompanyName:          d.Company.Name,
		CompanyAddress:       c.FullAddress(),
		FullAddress:          strings.TrimSpace(cmd.FullAddress),
		Manufacturer:         d.Equipment.Manufacturer,
		EquipmentModel:       d.Equipment.Model,
		SerialNumber:         d.Equipment.SerialNumber,
		InternalLocation:     d.Equipment.InternalLocation,
		InstallationLocation: d.Equipment.InstallationLocation,
		ApplicationType:      appType,
		CardType:             cardType,
		PriorRemediation:     strings.TrimSpace(cmd.PriorRemediation),
		NeedsIntegration:     cmd.NeedsIntegration,
		IntegrationNotes:     strings.TrimSpace(cmd.IntegrationNotes),
		RequesterName:        strings.TrimSpace(cmd.RequesterName),
		RequesterPhone:       strings.TrimSpace(cmd.RequesterPhone),
		RequesterEmail:       strings.TrimSpace(cmd.RequesterEmail),
		Description:          strings.TrimSpace(cmd.Description),
		CEP:                  utils.StripDigits(cmd.CEP),
		AddressNumber:        strings.TrimSpace(cmd.AddressNumber),
	}

	var equipmentID *uint
	if d.Equipment.ID != 0 {
		id := d.Equipment.ID
		equipmentID = &id
	}

	t, err := ticket.NewTicket(d.Company.ID, equipmentID, cmd.UserID, fd)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to create ticket", "user_id", cmd.UserID, "error", txErr)
		return nil, txErr
	}

	if err := uc.drafts.Delete(ctx, cmd.UserID); err != nil {
		// The ticket exists; a leftover draft only means the user sees a
		// stale wizard next time.
		uc.logger.Warnw("failed to clear draft after submit", "user_id", cmd.UserID, "error", err)
	}

	sent := uc.dispatcher.NotifyTicketCreated(ctx, t)

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "company_id", t.CompanyID(), "user_id", cmd.UserID, "notifications_sent", sent)
	return &SubmitTicketResult{Ticket: t, NotificationsSent: sent}, nil
}

// validateCommand checks fields in the order the form presents them, so the
// first error the user sees matches the first incomplete field: equipment
// data, then description, then address, then the contact triple.
func (uc *SubmitTicketUseCase) validateCommand(cmd SubmitTicketCommand, d *wizard.Draft) error {
	if d.Equipment.Manufacturer == "" || d.Equipment.Model == "" {
		return apperrors.NewValidationError(MsgEquipmentDataRequired)
	}
	if utf8.RuneCountInString(strings.TrimSpace(cmd.Description)) < ticket.MinDescriptionLength {
		return apperrors.NewValidationError(MsgDescriptionTooShort)
	}
	if strings.TrimSpace(cmd.FullAddress) == "" {
		return apperrors.NewValidationError(MsgFullAddressRequired)
	}
	if strings.TrimSpace(cmd.RequesterName) == "" {
		return apperrors.NewValidationError(MsgRequesterNameRequired)
	}
	if strings.TrimSpace(cmd.RequesterPhone) == "" {
		return apperrors.NewValidationError(MsgRequesterPhoneRequired)
	}
	if strings.TrimSpace(cmd.RequesterEmail) == "" {
		return apperrors.NewValidationError(MsgRequesterEmailRequired)
	}
	if !d.Equipment.HasApplicationType {
		if cmd.ApplicationType != ticket.ApplicationAccess && cmd.ApplicationType != ticket.ApplicationTimeClock {
			return apperrors.NewValidationError(MsgApplicationRequired)
		}
	}
	if !d.Equipment.HasTechnology {
		if !ticket.IsValidCardType(cmd.CardType) {
			return apperrors.NewValidationError(MsgCardTypeRequired)
		}
	}
	return nil
}

// completeCompanyAddress persists the declared service address onto a company
// registered without one. The CEP lookup itself happens earlier, as a
// pre-fill on the details step; by submission time the address is whatever
// text the requester left in the field.
func (uc *SubmitTicketUseCase) completeCompanyAddress(ctx context.Context, c *company.Company, cmd SubmitTicketCommand) error {
	if err := c.Update(c.Name(), c.CNPJ(), strings.TrimSpace(cmd.FullAddress)); err != nil {
		return fmt.Errorf("failed to update company address: %w", err)
	}
	if err := uc.companyRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to persist company address", "company_id", c.ID(), "error", err)
		return fmt.Errorf("failed to update company: %w", err)
	}
	uc.logger.Infow("company address completed from wizard", "company_id", c.ID())
	return nil
}
