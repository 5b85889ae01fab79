package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	applookup "github.com/LucasFelipeJesus/portal-chamados/internal/application/lookup"
	"github.com/LucasFelipeJesus/portal-chamados/internal/application/notification"
	appreport "github.com/LucasFelipeJesus/portal-chamados/internal/application/report"
	"github.com/LucasFelipeJesus/portal-chamados/internal/application/session"
	settingUsecases "github.com/LucasFelipeJesus/portal-chamados/internal/application/setting/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/wizard"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/auth"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/cache"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/config"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/email"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/lookup"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/pdf"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/storage"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/middleware"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/db"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases and handlers
// together and exposes the configured gin engine.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware

	// Session infrastructure
	sessionStore session.Store
	hub          *session.Hub
	idleWatcher  *session.IdleWatcher

	// Auth services
	jwtSvc *auth.JWTService
	hasher *auth.BcryptPasswordHasher

	// Wizard and notification infrastructure
	draftStore    wizard.DraftStore
	mailer        notification.Mailer
	dispatcher    *notification.Dispatcher
	companyClient applookup.CompanyClient
	addressClient applookup.AddressClient

	// Storage, rendering and transactions
	logoStorage settingUsecases.LogoStorage
	pdfRenderer appreport.Renderer
	txMgr       db.Transactor
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(ctx context.Context, database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.dispatcher = notification.NewDispatcher(c.mailer, c.repos.userRepo, c.repos.settingRepo, c.log)
	c.initUseCases()
	c.initHandlers()

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.sessionStore, c.idleWatcher, c.log)

	c.setupRoutes()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	c.sessionStore = cache.NewRedisSessionStore(c.redis)
	c.draftStore = cache.NewRedisDraftStore(c.redis)

	c.hub = session.NewHub()
	c.idleWatcher = session.NewIdleWatcher(c.sessionStore, c.hub, c.cfg.Auth.Session.IdleTimeout(), c.log)

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)

	c.mailer = email.NewSMTPMailer(&c.cfg.Email)
	c.companyClient = lookup.NewBrasilAPIClient(&c.cfg.Lookup, c.log)
	c.addressClient = lookup.NewViaCEPClient(&c.cfg.Lookup, c.log)

	logoStorage, err := storage.NewS3LogoStorage(ctx, &c.cfg.Storage)
	if err != nil {
		return err
	}
	c.logoStorage = logoStorage

	c.pdfRenderer = pdf.NewRenderer()
	c.txMgr = db.NewTransactionManager(c.db)

	return nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Hub returns the session event hub.
func (c *Container) Hub() *session.Hub {
	return c.hub
}
