// Package user exposes the account management endpoints.
package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/user/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/dto"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

type CreateUserRequest struct {
	FullName             string `json:"full_name" binding:"required"`
	Email                string `json:"email" binding:"required"`
	Phone                string `json:"phone"`
	Role                 string `json:"role" binding:"required"`
	CompanyID            uint   `json:"company_id"`
	AdditionalCompanyIDs []uint `json:"additional_company_ids"`
	ProvisionalPassword  string `json:"provisional_password" binding:"required"`
}

type UpdateUserRequest struct {
	FullName             string `json:"full_name" binding:"required"`
	Phone                string `json:"phone"`
	Role                 string `json:"role" binding:"required"`
	CompanyID            uint   `json:"company_id"`
	AdditionalCompanyIDs []uint `json:"additional_company_ids"`
	ForcePasswordChange  bool   `json:"force_password_change"`
}

type UpdateContactRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

type CreateUserResponse struct {
	Profile dto.ProfileResponse `json:"profile"`
}

type Handler struct {
	listUsersUC     *usecases.ListUsersUseCase
	createUserUC    *usecases.CreateUserUseCase
	updateUserUC    *usecases.UpdateUserUseCase
	updateContactUC *usecases.UpdateContactUseCase
	deleteUserUC    *usecases.DeleteUserUseCase
	logger          logger.Interface
}

func NewHandler(
	listUsersUC *usecases.ListUsersUseCase,
	createUserUC *usecases.CreateUserUseCase,
	updateUserUC *usecases.UpdateUserUseCase,
	updateContactUC *usecases.UpdateContactUseCase,
	deleteUserUC *usecases.DeleteUserUseCase,
	log logger.Interface,
) *Handler {
	return &Handler{
		listUsersUC:     listUsersUC,
		createUserUC:    createUserUC,
		updateUserUC:    updateUserUC,
		updateContactUC: updateContactUC,
		deleteUserUC:    deleteUserUC,
		logger:          log,
	}
}

// List handles GET /users
func (h *Handler) List(c *gin.Context) {
	profiles, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{Role: c.Query("role")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewProfileListResponse(profiles))
}

// Create handles POST /users
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "nome, e-mail, perfil e senha provisória são obrigatórios")
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		FullName:             req.FullName,
		Email:                req.Email,
		Phone:                req.Phone,
		Role:                 req.Role,
		CompanyID:            req.CompanyID,
		AdditionalCompanyIDs: req.AdditionalCompanyIDs,
		ProvisionalPassword:  req.ProvisionalPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := CreateUserResponse{Profile: dto.NewProfileResponse(result.Profile)}
	if !result.InviteSent {
		utils.CreatedResponseWithWarning(c, resp, "Usuário criado com sucesso", "Não foi possível enviar o convite por e-mail")
		return
	}
	utils.CreatedResponse(c, resp, "Usuário criado com sucesso")
}

// Update handles PUT /users/:id
func (h *Handler) Update(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "nome e perfil são obrigatórios")
		return
	}

	profile, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:               userID,
		FullName:             req.FullName,
		Phone:                req.Phone,
		Role:                 req.Role,
		CompanyID:            req.CompanyID,
		AdditionalCompanyIDs: req.AdditionalCompanyIDs,
		ForcePasswordChange:  req.ForcePasswordChange,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewProfileResponse(profile))
}

// UpdateContact handles PUT /users/me
func (h *Handler) UpdateContact(c *gin.Context) {
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "nome é obrigatório")
		return
	}

	profile, err := h.updateContactUC.Execute(c.Request.Context(), usecases.UpdateContactCommand{
		UserID:   middleware.UserID(c),
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewProfileResponse(profile))
}

// Delete handles DELETE /users/:id
func (h *Handler) Delete(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:      userID,
		RequestedBy: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseUserID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("identificador de usuário inválido")
	}
	return uint(id), nil
}
