package usecases

import (
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
)

// TokenClaims is the verified content of an access token.
type TokenClaims struct {
	UserID    uint
	SessionID string
	Role      user.Role
}

type JWTService interface {
	Generate(userID uint, sessionID string, role user.Role) (token string, expiresIn int64, err error)
	Validate(token string) (*TokenClaims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}
