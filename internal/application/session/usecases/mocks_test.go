package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/session"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

func nopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testProfile(t *testing.T, id uint, role user.Role) *user.Profile {
	t.Helper()
	p, err := user.NewProfile("Maria Silva", "maria@acme.com.br", "(11) 99999-0000", role, 7, "hash:correta")
	require.NoError(t, err)
	require.NoError(t, p.SetID(id))
	p.ConfirmEmail()
	return p
}

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, p *user.Profile) error
	UpdateFunc     func(ctx context.Context, p *user.Profile) error
	DeleteFunc     func(ctx context.Context, profileID uint) error
	GetByIDFunc    func(ctx context.Context, profileID uint) (*user.Profile, error)
	GetByIDsFunc   func(ctx context.Context, profileIDs []uint) ([]*user.Profile, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.Profile, error)
	ListByRoleFunc func(ctx context.Context, role user.Role) ([]*user.Profile, error)
	ListFunc       func(ctx context.Context) ([]*user.Profile, error)
}

func (m *mockUserRepository) Save(ctx context.Context, p *user.Profile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, p *user.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, profileID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, profileID)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, profileID uint) (*user.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, profileID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, profileIDs []uint) ([]*user.Profile, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, profileIDs)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.Profile, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.Profile, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.Profile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockSessionStore struct {
	SaveFunc   func(ctx context.Context, s *session.Session, ttl time.Duration) error
	GetFunc    func(ctx context.Context, id string) (*session.Session, error)
	TouchFunc  func(ctx context.Context, id string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *mockSessionStore) Save(ctx context.Context, s *session.Session, ttl time.Duration) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s, ttl)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionStore) Touch(ctx context.Context, id string, ttl time.Duration) error {
	if m.TouchFunc != nil {
		return m.TouchFunc(ctx, id, ttl)
	}
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// fakeHasher compares against hashes of the form "hash:<password>".
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hash:" + password, nil
}

func (fakeHasher) Verify(hash, password string) error {
	if hash != "hash:"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

type fakeJWTService struct {
	GenerateFunc func(userID uint, sessionID string, role user.Role) (string, int64, error)
}

func (f *fakeJWTService) Generate(userID uint, sessionID string, role user.Role) (string, int64, error) {
	if f.GenerateFunc != nil {
		return f.GenerateFunc(userID, sessionID, role)
	}
	return "token", 3600, nil
}

func (f *fakeJWTService) Validate(token string) (*TokenClaims, error) {
	return nil, fmt.Errorf("not implemented")
}
