// Package wizard exposes the three-step ticket creation flow.
package wizard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/wizard/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/dto"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

type Handler struct {
	getDraftUC        *usecases.GetDraftUseCase
	lookupCompanyUC   *usecases.LookupCompanyUseCase
	confirmCompanyUC  *usecases.ConfirmCompanyUseCase
	listEquipmentUC   *usecases.ListEquipmentUseCase
	selectEquipmentUC *usecases.SelectEquipmentUseCase
	submitTicketUC    *usecases.SubmitTicketUseCase
	goBackUC          *usecases.GoBackUseCase
	abandonUC         *usecases.AbandonUseCase
	lookupAddressUC   *usecases.LookupAddressUseCase
	logger            logger.Interface
}

func NewHandler(
	getDraftUC *usecases.GetDraftUseCase,
	lookupCompanyUC *usecases.LookupCompanyUseCase,
	confirmCompanyUC *usecases.ConfirmCompanyUseCase,
	listEquipmentUC *usecases.ListEquipmentUseCase,
	selectEquipmentUC *usecases.SelectEquipmentUseCase,
	submitTicketUC *usecases.SubmitTicketUseCase,
	goBackUC *usecases.GoBackUseCase,
	abandonUC *usecases.AbandonUseCase,
	lookupAddressUC *usecases.LookupAddressUseCase,
	log logger.Interface,
) *Handler {
	return &Handler{
		getDraftUC:        getDraftUC,
		lookupCompanyUC:   lookupCompanyUC,
		confirmCompanyUC:  confirmCompanyUC,
		listEquipmentUC:   listEquipmentUC,
		selectEquipmentUC: selectEquipmentUC,
		submitTicketUC:    submitTicketUC,
		goBackUC:          goBackUC,
		abandonUC:         abandonUC,
		lookupAddressUC:   lookupAddressUC,
		logger:            log,
	}
}

// GetDraft handles GET /wizard/draft
func (h *Handler) GetDraft(c *gin.Context) {
	draft, err := h.getDraftUC.Execute(c.Request.Context(), usecases.GetDraftQuery{UserID: middleware.UserID(c)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewDraftResponse(draft))
}

// LookupCompany handles POST /wizard/company/lookup
func (h *Handler) LookupCompany(c *gin.Context) {
	var req LookupCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "CNPJ é obrigatório")
		return
	}

	result, err := h.lookupCompanyUC.Execute(c.Request.Context(), usecases.LookupCompanyQuery{
		UserID: middleware.UserID(c),
		CNPJ:   req.CNPJ,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newLookupCompanyResponse(result))
}

// ConfirmCompany handles POST /wizard/company/confirm
func (h *Handler) ConfirmCompany(c *gin.Context) {
	var req ConfirmCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "empresa é obrigatória")
		return
	}

	draft, err := h.confirmCompanyUC.Execute(c.Request.Context(), usecases.ConfirmCompanyCommand{
		UserID:    middleware.UserID(c),
		CompanyID: req.CompanyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewDraftResponse(draft))
}

// ListEquipment handles GET /wizard/equipment
func (h *Handler) ListEquipment(c *gin.Context) {
	result, err := h.listEquipmentUC.Execute(c.Request.Context(), usecases.ListEquipmentQuery{UserID: middleware.UserID(c)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ListEquipmentResponse{
		Equipment:     dto.NewEquipmentListResponse(result.Equipment),
		Manufacturers: result.Manufacturers,
	})
}

// SelectEquipment handles POST /wizard/equipment
func (h *Handler) SelectEquipment(c *gin.Context) {
	var req SelectEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	draft, err := h.selectEquipmentUC.Execute(c.Request.Context(), usecases.SelectEquipmentCommand{
		UserID:                  middleware.UserID(c),
		EquipmentID:             req.EquipmentID,
		NewManufacturer:         req.NewManufacturer,
		NewModel:                req.NewModel,
		NewSerialNumber:         req.NewSerialNumber,
		NewInternalLocation:     req.NewInternalLocation,
		NewInstallationLocation: req.NewInstallationLocation,
		NewApplicationType:      req.NewApplicationType,
		NewTechnology:           req.NewTechnology,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewDraftResponse(draft))
}

// SubmitTicket handles POST /wizard/submit
func (h *Handler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "dados do chamado incompletos")
		return
	}

	result, err := h.submitTicketUC.Execute(c.Request.Context(), usecases.SubmitTicketCommand{
		UserID:           middleware.UserID(c),
		Description:      req.Description,
		FullAddress:      req.FullAddress,
		RequesterName:    req.RequesterName,
		RequesterPhone:   req.RequesterPhone,
		RequesterEmail:   req.RequesterEmail,
		PriorRemediation: req.PriorRemediation,
		NeedsIntegration: req.NeedsIntegration,
		IntegrationNotes: req.IntegrationNotes,
		ApplicationType:  req.ApplicationType,
		CardType:         req.CardType,
		CEP:              req.CEP,
		AddressNumber:    req.AddressNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := dto.NewTicketResponse(result.Ticket)
	if !result.NotificationsSent {
		utils.CreatedResponseWithWarning(c, resp, "Chamado criado com sucesso", "Não foi possível enviar todas as notificações por e-mail")
		return
	}
	utils.CreatedResponse(c, resp, "Chamado criado com sucesso")
}

// GoBack handles POST /wizard/back
func (h *Handler) GoBack(c *gin.Context) {
	draft, err := h.goBackUC.Execute(c.Request.Context(), usecases.GoBackCommand{UserID: middleware.UserID(c)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewDraftResponse(draft))
}

// Abandon handles DELETE /wizard/draft
func (h *Handler) Abandon(c *gin.Context) {
	if err := h.abandonUC.Execute(c.Request.Context(), usecases.AbandonCommand{UserID: middleware.UserID(c)}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// LookupAddress handles GET /wizard/address/:cep
func (h *Handler) LookupAddress(c *gin.Context) {
	info, err := h.lookupAddressUC.Execute(c.Request.Context(), usecases.LookupAddressQuery{CEP: c.Param("cep")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewAddressResponse(info))
}
