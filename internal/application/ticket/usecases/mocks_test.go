package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/setting"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
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

func testTicket(id, companyID, createdBy uint, status ticket.Status) *ticket.Ticket {
	now := time.Now().UTC()
	fd := ticket.FormData{
		CNPJ:           "12.345.678/0001-95",
		CompanyName:    "Acme Ltda",
		EquipmentModel: "Model X",
		RequesterName:  "Maria Silva",
		RequesterPhone: "(11) 99999-0000",
		RequesterEmail: "maria@acme.com.br",
		Description:    "O leitor de proximidade parou de responder após a queda de energia.",
	}
	var closedAt *time.Time
	if status == ticket.StatusClosed {
		closedAt = &now
	}
	return ticket.ReconstructTicket(id, companyID, nil, createdBy, status, fd, closedAt, now, now)
}

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc          func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
	CountByStatusFunc func(ctx context.Context, filter ticket.Filter) (map[ticket.Status]int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, filter ticket.Filter) (map[ticket.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, filter)
	}
	return map[ticket.Status]int64{}, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, c *ticket.Comment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID, includeInternal)
	}
	return nil, nil
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

type mockSettingRepository struct {
	GetFunc func(ctx context.Context, key string) (*setting.Setting, error)
}

func (m *mockSettingRepository) Get(ctx context.Context, key string) (*setting.Setting, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockSettingRepository) GetAll(ctx context.Context) ([]*setting.Setting, error) {
	return nil, nil
}

func (m *mockSettingRepository) Upsert(ctx context.Context, s *setting.Setting) error {
	return nil
}
