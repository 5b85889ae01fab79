package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/routes"
)

// setupRoutes configures all HTTP routes.
func (c *Container) setupRoutes() {
	c.engine.Use(gin.Recovery())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.Metrics())

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	c.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		Handler:        c.hdlrs.sessionHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupWizardRoutes(c.engine, &routes.WizardRouteConfig{
		Handler:        c.hdlrs.wizardHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		Handler:        c.hdlrs.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupCompanyRoutes(c.engine, &routes.CompanyRouteConfig{
		Handler:        c.hdlrs.companyHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupEquipmentRoutes(c.engine, &routes.EquipmentRouteConfig{
		Handler:        c.hdlrs.equipmentHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		Handler:        c.hdlrs.userHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupSettingRoutes(c.engine, &routes.SettingRouteConfig{
		Handler:        c.hdlrs.settingHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupReportRoutes(c.engine, &routes.ReportRouteConfig{
		Handler:        c.hdlrs.reportHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
