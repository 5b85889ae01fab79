// Package company exposes the company registry endpoints used by staff.
package company

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/company/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/dto"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

type RegisterCompanyRequest struct {
	CNPJ         string `json:"cnpj" binding:"required"`
	FromRegistry bool   `json:"from_registry"`
	Name         string `json:"name"`
	FullAddress  string `json:"full_address"`
}

type UpdateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	CNPJ        string `json:"cnpj" binding:"required"`
	FullAddress string `json:"full_address"`
}

type Handler struct {
	listCompaniesUC   *usecases.ListCompaniesUseCase
	registerCompanyUC *usecases.RegisterCompanyUseCase
	updateCompanyUC   *usecases.UpdateCompanyUseCase
	deleteCompanyUC   *usecases.DeleteCompanyUseCase
	logger            logger.Interface
}

func NewHandler(
	listCompaniesUC *usecases.ListCompaniesUseCase,
	registerCompanyUC *usecases.RegisterCompanyUseCase,
	updateCompanyUC *usecases.UpdateCompanyUseCase,
	deleteCompanyUC *usecases.DeleteCompanyUseCase,
	log logger.Interface,
) *Handler {
	return &Handler{
		listCompaniesUC:   listCompaniesUC,
		registerCompanyUC: registerCompanyUC,
		updateCompanyUC:   updateCompanyUC,
		deleteCompanyUC:   deleteCompanyUC,
		logger:            log,
	}
}

// List handles GET /companies
func (h *Handler) List(c *gin.Context) {
	companies, err := h.listCompaniesUC.Execute(c.Request.Context(), usecases.ListCompaniesQuery{UserID: middleware.UserID(c)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewCompanyListResponse(companies))
}

// Register handles POST /companies
func (h *Handler) Register(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "CNPJ é obrigatório")
		return
	}

	created, err := h.registerCompanyUC.Execute(c.Request.Context(), usecases.RegisterCompanyCommand{
		CNPJ:         req.CNPJ,
		FromRegistry: req.FromRegistry,
		Name:         req.Name,
		FullAddress:  req.FullAddress,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewCompanyResponse(created), "Empresa cadastrada com sucesso")
}

// Update handles PUT /companies/:id
func (h *Handler) Update(c *gin.Context) {
	companyID, err := parseCompanyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "nome e CNPJ são obrigatórios")
		return
	}

	updated, err := h.updateCompanyUC.Execute(c.Request.Context(), usecases.UpdateCompanyCommand{
		CompanyID:   companyID,
		Name:        req.Name,
		CNPJ:        req.CNPJ,
		FullAddress: req.FullAddress,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewCompanyResponse(updated))
}

// Delete handles DELETE /companies/:id
func (h *Handler) Delete(c *gin.Context) {
	companyID, err := parseCompanyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCompanyUC.Execute(c.Request.Context(), usecases.DeleteCompanyCommand{CompanyID: companyID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseCompanyID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("identificador de empresa inválido")
	}
	return uint(id), nil
}
