package routes

import (
	"github.com/gin-gonic/gin"

	companyHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
)

// CompanyRouteConfig holds dependencies for company routes.
type CompanyRouteConfig struct {
	Handler        *companyHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCompanyRoutes configures company registry routes. Listing is open to
// any authenticated user (the use case scopes clients to their linked
// companies); registry management is restricted to staff.
func SetupCompanyRoutes(engine *gin.Engine, cfg *CompanyRouteConfig) {
	companies := engine.Group("/companies")
	companies.Use(cfg.AuthMiddleware.RequireAuth())
	{
		companies.GET("", cfg.Handler.List)

		companies.POST("", cfg.AuthMiddleware.RequireStaff(), cfg.Handler.Register)
		companies.PUT("/:id", cfg.AuthMiddleware.RequireStaff(), cfg.Handler.Update)
		companies.DELETE("/:id", cfg.AuthMiddleware.RequireAdmin(), cfg.Handler.Delete)
	}
}
