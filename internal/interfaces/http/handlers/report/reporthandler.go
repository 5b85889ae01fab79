// Package report exposes the PDF report endpoint.
package report

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/report/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

type Handler struct {
	generateReportUC *usecases.GenerateReportUseCase
	logger           logger.Interface
}

func NewHandler(generateReportUC *usecases.GenerateReportUseCase, log logger.Interface) *Handler {
	return &Handler{generateReportUC: generateReportUC, logger: log}
}

// Generate handles GET /reports/tickets. The response body is the PDF
// itself, served as an attachment.
func (h *Handler) Generate(c *gin.Context) {
	cmd := usecases.GenerateReportCommand{
		UserID:       middleware.UserID(c),
		Status:       c.Query("status"),
		Manufacturer: c.Query("manufacturer"),
		Company:      c.Query("company"),
		User:         c.Query("user"),
	}

	if v := c.Query("company_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "parâmetro company_id inválido")
			return
		}
		cmd.CompanyID = uint(id)
	}
	if v := c.Query("equipment_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "parâmetro equipment_id inválido")
			return
		}
		cmd.EquipmentID = uint(id)
	}
	if v := c.Query("created_by"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "parâmetro created_by inválido")
			return
		}
		cmd.CreatedBy = uint(id)
	}
	if v := c.Query("date_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "parâmetro date_from inválido, use AAAA-MM-DD")
			return
		}
		cmd.DateFrom = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "parâmetro date_to inválido, use AAAA-MM-DD")
			return
		}
		cmd.DateTo = &t
	}

	result, err := h.generateReportUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}
