// Package session exposes the authentication endpoints.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/session/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/dto"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

type Handler struct {
	signInUC         *usecases.SignInUseCase
	signOutUC        *usecases.SignOutUseCase
	changePasswordUC *usecases.ChangePasswordUseCase
	refreshProfileUC *usecases.RefreshProfileUseCase
	logger           logger.Interface
}

func NewHandler(
	signInUC *usecases.SignInUseCase,
	signOutUC *usecases.SignOutUseCase,
	changePasswordUC *usecases.ChangePasswordUseCase,
	refreshProfileUC *usecases.RefreshProfileUseCase,
	log logger.Interface,
) *Handler {
	return &Handler{
		signInUC:         signInUC,
		signOutUC:        signOutUC,
		changePasswordUC: changePasswordUC,
		refreshProfileUC: refreshProfileUC,
		logger:           log,
	}
}

// SignIn handles POST /auth/signin
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid sign in request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "e-mail e senha são obrigatórios")
		return
	}

	result, err := h.signInUC.Execute(c.Request.Context(), usecases.SignInCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newSignInResponse(result))
}

// SignOut handles POST /auth/signout
func (h *Handler) SignOut(c *gin.Context) {
	err := h.signOutUC.Execute(c.Request.Context(), usecases.SignOutCommand{
		SessionID: middleware.SessionID(c),
		UserID:    middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ChangePassword handles POST /auth/password
func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "senha atual e nova senha são obrigatórias")
		return
	}

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          middleware.UserID(c),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RefreshProfile handles GET /auth/profile
func (h *Handler) RefreshProfile(c *gin.Context) {
	profile, err := h.refreshProfileUC.Execute(c.Request.Context(), usecases.RefreshProfileQuery{
		UserID:    middleware.UserID(c),
		SessionID: middleware.SessionID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewProfileResponse(profile))
}
