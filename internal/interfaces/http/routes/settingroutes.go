package routes

import (
	"github.com/gin-gonic/gin"

	settingHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/setting"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
)

// SettingRouteConfig holds dependencies for portal setting routes.
type SettingRouteConfig struct {
	Handler        *settingHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupSettingRoutes configures branding and portal setting routes. The
// branding endpoint is public so the login screen can be themed before
// authentication; changing settings requires the admin role.
func SetupSettingRoutes(engine *gin.Engine, cfg *SettingRouteConfig) {
	settings := engine.Group("/settings")
	{
		settings.GET("/branding", cfg.Handler.GetBranding)

		settings.PUT("", cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin(), cfg.Handler.Update)
		settings.POST("/logo", cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin(), cfg.Handler.UploadLogo)
	}
}
