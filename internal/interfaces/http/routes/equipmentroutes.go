package routes

import (
	"github.com/gin-gonic/gin"

	equipmentHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
)

// EquipmentRouteConfig holds dependencies for equipment routes.
type EquipmentRouteConfig struct {
	Handler        *equipmentHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupEquipmentRoutes configures equipment registry routes.
func SetupEquipmentRoutes(engine *gin.Engine, cfg *EquipmentRouteConfig) {
	equipment := engine.Group("/equipment")
	equipment.Use(cfg.AuthMiddleware.RequireAuth())
	{
		equipment.GET("", cfg.Handler.List)

		equipment.POST("", cfg.AuthMiddleware.RequireStaff(), cfg.Handler.Create)
		equipment.PUT("/:id", cfg.AuthMiddleware.RequireStaff(), cfg.Handler.Update)
		equipment.DELETE("/:id", cfg.AuthMiddleware.RequireStaff(), cfg.Handler.Delete)
	}
}
