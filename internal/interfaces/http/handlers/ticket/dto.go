package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/ticket/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/dto"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
)

const queryDateFormat = "2006-01-02"

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required"`
	IsInternal bool   `json:"is_internal"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddCommentResponse struct {
	Comment dto.CommentResponse `json:"comment"`
}

type GetTicketResponse struct {
	Ticket   dto.TicketResponse    `json:"ticket"`
	Comments []dto.CommentResponse `json:"comments"`
}

type DashboardResponse struct {
	CountsByStatus map[string]int64     `json:"counts_by_status"`
	Total          int64                `json:"total"`
	Recent         []dto.TicketResponse `json:"recent"`
}

func newDashboardResponse(result *usecases.DashboardResult) DashboardResponse {
	counts := make(map[string]int64, len(result.CountsByStatus))
	for status, count := range result.CountsByStatus {
		counts[status.String()] = count
	}
	return DashboardResponse{
		CountsByStatus: counts,
		Total:          result.Total,
		Recent:         dto.NewTicketListResponse(result.Recent),
	}
}

// parseListQuery reads the list filters from the query string. Dates use the
// YYYY-MM-DD form and bound the creation day inclusively.
func parseListQuery(c *gin.Context) (usecases.ListTicketsQuery, error) {
	query := usecases.ListTicketsQuery{
		UserID:   middleware.UserID(c),
		Status:   c.Query("status"),
		OnlyMine: c.Query("only_mine") == "true",
	}

	if raw := c.Query("company_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return query, apperrors.NewValidationError("empresa inválida")
		}
		query.CompanyID = uint(id)
	}

	if raw := c.Query("equipment_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return query, apperrors.NewValidationError("equipamento inválido")
		}
		query.EquipmentID = uint(id)
	}

	if raw := c.Query("date_from"); raw != "" {
		t, err := time.Parse(queryDateFormat, raw)
		if err != nil {
			return query, apperrors.NewValidationError("data inicial inválida, use AAAA-MM-DD")
		}
		query.DateFrom = &t
	}

	if raw := c.Query("date_to"); raw != "" {
		t, err := time.Parse(queryDateFormat, raw)
		if err != nil {
			return query, apperrors.NewValidationError("data final inválida, use AAAA-MM-DD")
		}
		query.DateTo = &t
	}

	return query, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("identificador de chamado inválido")
	}
	return uint(id), nil
}
