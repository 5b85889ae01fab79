// Package ticket exposes the ticket listing and lifecycle endpoints.
package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/ticket/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/dto"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

type Handler struct {
	listTicketsUC  *usecases.ListTicketsUseCase
	getTicketUC    *usecases.GetTicketUseCase
	getDashboardUC *usecases.GetDashboardUseCase
	addCommentUC   *usecases.AddCommentUseCase
	changeStatusUC *usecases.ChangeStatusUseCase
	closeTicketUC  *usecases.CloseTicketUseCase
	cancelTicketUC *usecases.CancelTicketUseCase
	deleteTicketUC *usecases.DeleteTicketUseCase
	logger         logger.Interface
}

func NewHandler(
	listTicketsUC *usecases.ListTicketsUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	getDashboardUC *usecases.GetDashboardUseCase,
	addCommentUC *usecases.AddCommentUseCase,
	changeStatusUC *usecases.ChangeStatusUseCase,
	closeTicketUC *usecases.CloseTicketUseCase,
	cancelTicketUC *usecases.CancelTicketUseCase,
	deleteTicketUC *usecases.DeleteTicketUseCase,
	log logger.Interface,
) *Handler {
	return &Handler{
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		getDashboardUC: getDashboardUC,
		addCommentUC:   addCommentUC,
		changeStatusUC: changeStatusUC,
		closeTicketUC:  closeTicketUC,
		cancelTicketUC: cancelTicketUC,
		deleteTicketUC: deleteTicketUC,
		logger:         log,
	}
}

// List handles GET /tickets
func (h *Handler) List(c *gin.Context) {
	query, err := parseListQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tickets, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketListResponse(tickets))
}

// Get handles GET /tickets/:id
func (h *Handler) Get(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		UserID:   middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", GetTicketResponse{
		Ticket:   dto.NewTicketResponse(result.Ticket),
		Comments: dto.NewCommentListResponse(result.Comments),
	})
}

// Dashboard handles GET /tickets/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	result, err := h.getDashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{UserID: middleware.UserID(c)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newDashboardResponse(result))
}

// AddComment handles POST /tickets/:id/comments
func (h *Handler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "conteúdo do comentário é obrigatório")
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:   ticketID,
		UserID:     middleware.UserID(c),
		Content:    req.Content,
		IsInternal: req.IsInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := AddCommentResponse{Comment: dto.NewCommentResponse(result.Comment)}
	if !result.NotificationSent {
		utils.CreatedResponseWithWarning(c, resp, "Comentário registrado", "Não foi possível enviar a notificação por e-mail")
		return
	}
	utils.CreatedResponse(c, resp, "Comentário registrado")
}

// ChangeStatus handles PATCH /tickets/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status é obrigatório")
		return
	}

	t, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID: ticketID,
		UserID:   middleware.UserID(c),
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponse(t))
}

// Close handles POST /tickets/:id/close
func (h *Handler) Close(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.closeTicketUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		TicketID: ticketID,
		UserID:   middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponse(t))
}

// Cancel handles POST /tickets/:id/cancel
func (h *Handler) Cancel(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.cancelTicketUC.Execute(c.Request.Context(), usecases.CancelTicketCommand{
		TicketID: ticketID,
		UserID:   middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponse(t))
}

// Delete handles DELETE /tickets/:id
func (h *Handler) Delete(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: ticketID,
		UserID:   middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
