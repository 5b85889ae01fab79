package routes

import (
	"github.com/gin-gonic/gin"

	userHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	Handler        *userHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user management routes. Account administration
// requires the admin role; /users/me is available to any authenticated user.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Register /me before the parameterized :id routes.
		users.PUT("/me", cfg.Handler.UpdateContact)

		users.GET("", cfg.AuthMiddleware.RequireAdmin(), cfg.Handler.List)
		users.POST("", cfg.AuthMiddleware.RequireAdmin(), cfg.Handler.Create)
		users.PUT("/:id", cfg.AuthMiddleware.RequireAdmin(), cfg.Handler.Update)
		users.DELETE("/:id", cfg.AuthMiddleware.RequireAdmin(), cfg.Handler.Delete)
	}
}
