package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

func nopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testProfile(t *testing.T, id uint, role user.Role, companyID uint) *user.Profile {
	t.Helper()
	p, err := user.NewProfile("João Souza", "joao@example.com", "(11) 98888-0000", role, companyID, "hash")
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
	return nil, user.ErrUserNotFound
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

type mockHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(hash, password string) error {
	return nil
}

type mockMailer struct {
	SendFunc func(ctx context.Context, to []string, subject, htmlBody string) error
	sent     []sentMail
}

type sentMail struct {
	to      []string
	subject string
	body    string
}

func (m *mockMailer) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, htmlBody)
	}
	return nil
}
