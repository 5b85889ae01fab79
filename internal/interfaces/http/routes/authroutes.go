package routes

import (
	"github.com/gin-gonic/gin"

	sessionHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/session"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	Handler        *sessionHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/signin", cfg.Handler.SignIn)

		auth.POST("/signout", cfg.AuthMiddleware.RequireAuth(), cfg.Handler.SignOut)
		auth.POST("/password", cfg.AuthMiddleware.RequireAuth(), cfg.Handler.ChangePassword)
		auth.GET("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.Handler.RefreshProfile)
	}
}
