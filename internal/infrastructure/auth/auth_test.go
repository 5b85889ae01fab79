package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
)

func TestJWTService(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	t.Run("generate and validate round trip", func(t *testing.T) {
		token, expiresIn, err := svc.Generate(42, "sess-1", user.RoleTechnician)
		require.NoError(t, err)
		assert.Equal(t, int64(3600), expiresIn)

		claims, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "sess-1", claims.SessionID)
		assert.Equal(t, user.RoleTechnician, claims.Role)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewJWTService("other-secret", 60)
		token, _, err := other.Generate(42, "sess-1", user.RoleClient)
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := NewJWTService("test-secret", -1)
		token, _, err := expired.Generate(42, "sess-1", user.RoleClient)
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.Validate("not-a-token")
		assert.Error(t, err)
	})
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("senhaSegura123")
	require.NoError(t, err)
	assert.NotEqual(t, "senhaSegura123", hash)

	assert.NoError(t, hasher.Verify(hash, "senhaSegura123"))
	assert.Error(t, hasher.Verify(hash, "senhaErrada"))
	assert.Error(t, hasher.Verify("not-a-hash", "senhaSegura123"))
}
