// Package setting exposes the portal branding endpoints.
package setting

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/setting/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

type UpdateSettingsRequest struct {
	PortalName   *string `json:"portal_name"`
	PrimaryColor *string `json:"primary_color"`
}

type BrandingResponse struct {
	PortalName   string `json:"portal_name"`
	LogoURL      string `json:"logo_url"`
	PrimaryColor string `json:"primary_color"`
}

type UploadLogoResponse struct {
	LogoURL string `json:"logo_url"`
}

type Handler struct {
	getSettingsUC    *usecases.GetSettingsUseCase
	updateSettingsUC *usecases.UpdateSettingsUseCase
	uploadLogoUC     *usecases.UploadLogoUseCase
	logger           logger.Interface
}

func NewHandler(
	getSettingsUC *usecases.GetSettingsUseCase,
	updateSettingsUC *usecases.UpdateSettingsUseCase,
	uploadLogoUC *usecases.UploadLogoUseCase,
	log logger.Interface,
) *Handler {
	return &Handler{
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		uploadLogoUC:     uploadLogoUC,
		logger:           log,
	}
}

// GetBranding handles GET /settings/branding. The endpoint is public so the
// login page can render the portal name and colors before authentication.
func (h *Handler) GetBranding(c *gin.Context) {
	branding, err := h.getSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", BrandingResponse{
		PortalName:   branding.PortalName,
		LogoURL:      branding.LogoURL,
		PrimaryColor: branding.PrimaryColor,
	})
}

// Update handles PUT /settings
func (h *Handler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdateSettingsCommand{
		PortalName:   req.PortalName,
		PrimaryColor: req.PrimaryColor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Configurações atualizadas com sucesso", nil)
}

// UploadLogo handles POST /settings/logo (multipart form, field "logo").
func (h *Handler) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "arquivo de logotipo é obrigatório")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded logo", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "não foi possível ler o arquivo enviado")
		return
	}
	defer file.Close()

	url, err := h.uploadLogoUC.Execute(c.Request.Context(), usecases.UploadLogoCommand{
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logotipo atualizado com sucesso", UploadLogoResponse{LogoURL: url})
}
