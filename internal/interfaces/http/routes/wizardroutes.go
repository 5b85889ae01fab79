package routes

import (
	"github.com/gin-gonic/gin"

	wizardHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/wizard"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
)

// WizardRouteConfig holds dependencies for the ticket wizard routes.
type WizardRouteConfig struct {
	Handler        *wizardHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupWizardRoutes configures the ticket opening wizard routes.
func SetupWizardRoutes(engine *gin.Engine, cfg *WizardRouteConfig) {
	wizard := engine.Group("/wizard")
	wizard.Use(cfg.AuthMiddleware.RequireAuth())
	{
		wizard.GET("/draft", cfg.Handler.GetDraft)
		wizard.DELETE("/draft", cfg.Handler.Abandon)
		wizard.POST("/back", cfg.Handler.GoBack)

		wizard.POST("/company/lookup", cfg.Handler.LookupCompany)
		wizard.POST("/company/confirm", cfg.Handler.ConfirmCompany)

		wizard.GET("/equipment", cfg.Handler.ListEquipment)
		wizard.POST("/equipment", cfg.Handler.SelectEquipment)

		wizard.GET("/address/:cep", cfg.Handler.LookupAddress)

		wizard.POST("/submit", cfg.Handler.SubmitTicket)
	}
}
