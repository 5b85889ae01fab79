package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/session"
	"github.com/LucasFelipeJesus/portal-chamados/internal/application/session/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

const (
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
	ContextKeyUserRole  = "user_role"
)

type AuthMiddleware struct {
	jwtService   usecases.JWTService
	sessionStore session.Store
	idleWatcher  *session.IdleWatcher
	logger       logger.Interface
}

func NewAuthMiddleware(jwtService usecases.JWTService, store session.Store, watcher *session.IdleWatcher, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtService,
		sessionStore: store,
		idleWatcher:  watcher,
		logger:       log,
	}
}

// RequireAuth validates the bearer token and the server-side session behind
// it. Every authenticated request counts as activity for the idle timer.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Validate(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		sess, err := m.sessionStore.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			m.logger.Errorw("failed to load session", "session_id", claims.SessionID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to validate session")
			c.Abort()
			return
		}
		if sess == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "session expired")
			c.Abort()
			return
		}

		m.idleWatcher.Touch(claims.SessionID)

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeySessionID, claims.SessionID)
		c.Set(ContextKeyUserRole, claims.Role.String())

		c.Next()
	}
}

// RequireStaff allows only technicians and administrators through.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := user.Role(c.GetString(ContextKeyUserRole))
		if !role.IsStaff() {
			utils.ErrorResponse(c, http.StatusForbidden, "acesso restrito à equipe de suporte")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin allows only administrators through.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := user.Role(c.GetString(ContextKeyUserRole))
		if !role.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "acesso restrito a administradores")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID reads the authenticated user ID from the request context.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(ContextKeyUserID)
	userID, _ := id.(uint)
	return userID
}

// SessionID reads the authenticated session ID from the request context.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
