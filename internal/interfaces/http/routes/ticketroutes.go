package routes

import (
	"github.com/gin-gonic/gin"

	ticketHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	Handler        *ticketHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket listing and lifecycle routes.
// Role checks beyond authentication live in the use cases, which also
// scope client visibility to their linked companies.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Register specific paths before parameterized paths to avoid
		// route conflicts.
		tickets.GET("/dashboard", cfg.Handler.Dashboard)

		tickets.GET("", cfg.Handler.List)
		tickets.GET("/:id", cfg.Handler.Get)
		tickets.POST("/:id/comments", cfg.Handler.AddComment)
		tickets.PATCH("/:id/status", cfg.Handler.ChangeStatus)
		tickets.POST("/:id/close", cfg.Handler.Close)
		tickets.POST("/:id/cancel", cfg.Handler.Cancel)
		tickets.DELETE("/:id", cfg.AuthMiddleware.RequireAdmin(), cfg.Handler.Delete)
	}
}
