package routes

import (
	"github.com/gin-gonic/gin"

	reportHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/report"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
)

// ReportRouteConfig holds dependencies for report routes.
type ReportRouteConfig struct {
	Handler        *reportHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupReportRoutes configures report generation routes.
func SetupReportRoutes(engine *gin.Engine, cfg *ReportRouteConfig) {
	reports := engine.Group("/reports")
	reports.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireStaff())
	{
		reports.GET("/tickets", cfg.Handler.Generate)
	}
}
