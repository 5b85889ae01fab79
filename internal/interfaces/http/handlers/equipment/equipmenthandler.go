// Package equipment exposes the equipment catalogue endpoints.
package equipment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/equipment/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/dto"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

type CreateEquipmentRequest struct {
	CompanyID            uint   `json:"company_id" binding:"required"`
	Manufacturer         string `json:"manufacturer" binding:"required"`
	Model                string `json:"model" binding:"required"`
	SerialNumber         string `json:"serial_number"`
	InternalLocation     string `json:"internal_location"`
	InstallationLocation string `json:"installation_location"`
	ApplicationType      string `json:"application_type"`
	Technology           string `json:"technology"`
}

type UpdateEquipmentRequest struct {
	Manufacturer         string `json:"manufacturer" binding:"required"`
	Model                string `json:"model" binding:"required"`
	SerialNumber         string `json:"serial_number"`
	InternalLocation     string `json:"internal_location"`
	InstallationLocation string `json:"installation_location"`
	ApplicationType      string `json:"application_type"`
	Technology           string `json:"technology"`
}

type Handler struct {
	listEquipmentUC   *usecases.ListEquipmentUseCase
	createEquipmentUC *usecases.CreateEquipmentUseCase
	updateEquipmentUC *usecases.UpdateEquipmentUseCase
	deleteEquipmentUC *usecases.DeleteEquipmentUseCase
	logger            logger.Interface
}

func NewHandler(
	listEquipmentUC *usecases.ListEquipmentUseCase,
	createEquipmentUC *usecases.CreateEquipmentUseCase,
	updateEquipmentUC *usecases.UpdateEquipmentUseCase,
	deleteEquipmentUC *usecases.DeleteEquipmentUseCase,
	log logger.Interface,
) *Handler {
	return &Handler{
		listEquipmentUC:   listEquipmentUC,
		createEquipmentUC: createEquipmentUC,
		updateEquipmentUC: updateEquipmentUC,
		deleteEquipmentUC: deleteEquipmentUC,
		logger:            log,
	}
}

// List handles GET /equipment
func (h *Handler) List(c *gin.Context) {
	query := usecases.ListEquipmentQuery{UserID: middleware.UserID(c)}

	if raw := c.Query("company_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError("empresa inválida"))
			return
		}
		query.CompanyID = uint(id)
	}

	equipments, err := h.listEquipmentUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewEquipmentListResponse(equipments))
}

// Create handles POST /equipment
func (h *Handler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "empresa, fabricante e modelo são obrigatórios")
		return
	}

	created, err := h.createEquipmentUC.Execute(c.Request.Context(), usecases.CreateEquipmentCommand{
		CompanyID:            req.CompanyID,
		Manufacturer:         req.Manufacturer,
		Model:                req.Model,
		SerialNumber:         req.SerialNumber,
		InternalLocation:     req.InternalLocation,
		InstallationLocation: req.InstallationLocation,
		ApplicationType:      req.ApplicationType,
		Technology:           req.Technology,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewEquipmentResponse(created), "Equipamento cadastrado com sucesso")
}

// Update handles PUT /equipment/:id
func (h *Handler) Update(c *gin.Context) {
	equipmentID, err := parseEquipmentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "fabricante e modelo são obrigatórios")
		return
	}

	updated, err := h.updateEquipmentUC.Execute(c.Request.Context(), usecases.UpdateEquipmentCommand{
		EquipmentID:          equipmentID,
		Manufacturer:         req.Manufacturer,
		Model:                req.Model,
		SerialNumber:         req.SerialNumber,
		InternalLocation:     req.InternalLocation,
		InstallationLocation: req.InstallationLocation,
		ApplicationType:      req.ApplicationType,
		Technology:           req.Technology,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewEquipmentResponse(updated))
}

// Delete handles DELETE /equipment/:id
func (h *Handler) Delete(c *gin.Context) {
	equipmentID, err := parseEquipmentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteEquipmentUC.Execute(c.Request.Context(), usecases.DeleteEquipmentCommand{EquipmentID: equipmentID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseEquipmentID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("identificador de equipamento inválido")
	}
	return uint(id), nil
}
