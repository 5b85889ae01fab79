package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/report"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

func nopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type stubTicketRepository struct {
	ticket.Repository

	tickets []*ticket.Ticket
	err     error
}

func (s *stubTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tickets, nil
}

type stubCompanyRepository struct {
	company.Repository

	companies map[uint]*company.Company
}

func (s *stubCompanyRepository) GetByID(ctx context.Context, id uint) (*company.Company, error) {
	if c, ok := s.companies[id]; ok {
		return c, nil
	}
	return nil, apperrors.NewNotFoundError("empresa não encontrada")
}

func (s *stubCompanyRepository) GetByIDs(ctx context.Context, ids []uint) ([]*company.Company, error) {
	out := make([]*company.Company, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.companies[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

type stubUserRepository struct {
	user.Repository

	users map[uint]*user.Profile
}

func (s *stubUserRepository) GetByID(ctx context.Context, id uint) (*user.Profile, error) {
	if p, ok := s.users[id]; ok {
		return p, nil
	}
	return nil, user.ErrUserNotFound
}

func (s *stubUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.Profile, error) {
	out := make([]*user.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.users[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeRenderer struct {
	data report.Data
}

func (f *fakeRenderer) Render(d report.Data) ([]byte, error) {
	f.data = d
	return []byte("%PDF-1.4 fake"), nil
}

func makeProfile(t *testing.T, id uint, name string, role user.Role) *user.Profile {
	t.Helper()
	p, err := user.NewProfile(name, "user@example.com", "", role, 7, "hash")
	require.NoError(t, err)
	require.NoError(t, p.SetID(id))
	return p
}

func makeCompany(t *testing.T, id uint, name string) *company.Company {
	t.Helper()
	c, err := company.NewCompany(name, "12345678000195", "Rua A, 10")
	require.NoError(t, err)
	require.NoError(t, c.SetID(id))
	return c
}

func makeTicket(id, companyID, createdBy uint, status ticket.Status) *ticket.Ticket {
	now := time.Now().UTC()
	fd := ticket.FormData{
		CNPJ:           "12.345.678/0001-95",
		CompanyName:    "Nome Antigo Ltda",
		Manufacturer:   "ControliD",
		EquipmentModel: "Model X",
		RequesterName:  "Maria Silva",
	}
	var closedAt *time.Time
	if status == ticket.StatusClosed {
		closedAt = &now
	}
	return ticket.ReconstructTicket(id, companyID, nil, createdBy, status, fd, closedAt, now, now)
}

func TestGenerateReport_ClientForbidden(t *testing.T) {
	client := makeProfile(t, 1, "Maria Silva", user.RoleClient)
	uc := NewGenerateReportUseCase(&stubTicketRepository{}, &stubCompanyRepository{}, &stubUserRepository{
		users: map[uint]*user.Profile{1: client},
	}, &fakeRenderer{}, nopLogger())

	_, err := uc.Execute(context.Background(), GenerateReportCommand{UserID: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.Contains(t, err.Error(), MsgReportForbidden)
}

func TestGenerateReport_AssemblesData(t *testing.T) {
	admin := makeProfile(t, 3, "Ana Costa", user.RoleAdmin)
	creator := makeProfile(t, 1, "Maria Silva", user.RoleClient)
	acme := makeCompany(t, 7, "Acme Ltda")

	renderer := &fakeRenderer{}
	uc := NewGenerateReportUseCase(&stubTicketRepository{
		tickets: []*ticket.Ticket{
			makeTicket(101, 7, 1, ticket.StatusOpen),
			makeTicket(102, 7, 1, ticket.StatusClosed),
			makeTicket(103, 9, 1, ticket.StatusOpen),
		},
	}, &stubCompanyRepository{
		companies: map[uint]*company.Company{7: acme},
	}, &stubUserRepository{
		users: map[uint]*user.Profile{1: creator, 3: admin},
	}, renderer, nopLogger())

	res, err := uc.Execute(context.Background(), GenerateReportCommand{UserID: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, res.PDF)
	assert.Contains(t, res.Filename, "relatorio-chamados-")
	assert.Contains(t, res.Filename, ".pdf")

	data := renderer.data
	assert.Equal(t, 3, data.TotalTickets)
	assert.Equal(t, 2, data.DistinctCompanies)
	assert.Equal(t, 1, data.DistinctUsers)
	assert.Equal(t, 2, data.CountsByStatus["Aberto"])
	assert.Equal(t, 1, data.CountsByStatus["Fechado"])
	assert.Equal(t, []string{"Sem filtros (todos os chamados)"}, data.FilterSummary)

	require.Len(t, data.Rows, 3)
	// Current registry name wins over the denormalized snapshot.
	assert.Equal(t, "Acme Ltda", data.Rows[0].CompanyName)
	assert.Equal(t, "Maria Silva", data.Rows[0].CreatorName)
	// Company 9 is gone from the registry, so the snapshot remains.
	assert.Equal(t, "Nome Antigo Ltda", data.Rows[2].CompanyName)
	assert.NotNil(t, data.Rows[1].ClosedAt)
}

func TestGenerateReport_FilterSummary(t *testing.T) {
	admin := makeProfile(t, 3, "Ana Costa", user.RoleAdmin)
	creator := makeProfile(t, 1, "Maria Silva", user.RoleClient)
	acme := makeCompany(t, 7, "Acme Ltda")
	from := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	renderer := &fakeRenderer{}
	uc := NewGenerateReportUseCase(&stubTicketRepository{}, &stubCompanyRepository{
		companies: map[uint]*company.Company{7: acme},
	}, &stubUserRepository{
		users: map[uint]*user.Profile{1: creator, 3: admin},
	}, renderer, nopLogger())

	_, err := uc.Execute(context.Background(), GenerateReportCommand{
		UserID:    3,
		Status:    "aberto",
		CompanyID: 7,
		CreatedBy: 1,
		DateFrom:  &from,
	})
	require.NoError(t, err)

	summary := renderer.data.FilterSummary
	assert.Contains(t, summary, "Status: Aberto")
	assert.Contains(t, summary, "Empresa: Acme Ltda")
	assert.Contains(t, summary, "Aberto por: Maria Silva")
	require.Len(t, summary, 4)
	assert.Contains(t, summary[3], "De: ")
}

func TestGenerateReport_TextFilters(t *testing.T) {
	admin := makeProfile(t, 3, "Ana Costa", user.RoleAdmin)
	creator := makeProfile(t, 1, "Maria Silva", user.RoleClient)
	acme := makeCompany(t, 7, "Acme Ltda")

	tickets := []*ticket.Ticket{
		makeTicket(101, 7, 1, ticket.StatusOpen),
		makeTicket(102, 9, 1, ticket.StatusOpen),
	}
	newUC := func(renderer *fakeRenderer) *GenerateReportUseCase {
		return NewGenerateReportUseCase(&stubTicketRepository{tickets: tickets}, &stubCompanyRepository{
			companies: map[uint]*company.Company{7: acme},
		}, &stubUserRepository{
			users: map[uint]*user.Profile{1: creator, 3: admin},
		}, renderer, nopLogger())
	}

	t.Run("manufacturer substring is case-insensitive", func(t *testing.T) {
		renderer := &fakeRenderer{}
		_, err := newUC(renderer).Execute(context.Background(), GenerateReportCommand{UserID: 3, Manufacturer: "controlid"})
		require.NoError(t, err)
		assert.Equal(t, 2, renderer.data.TotalTickets)

		renderer = &fakeRenderer{}
		_, err = newUC(renderer).Execute(context.Background(), GenerateReportCommand{UserID: 3, Manufacturer: "dimep"})
		require.NoError(t, err)
		assert.Zero(t, renderer.data.TotalTickets)
		assert.Contains(t, renderer.data.FilterSummary, "Fabricante contém: dimep")
	})

	t.Run("company matches current name over the snapshot", func(t *testing.T) {
		renderer := &fakeRenderer{}
		_, err := newUC(renderer).Execute(context.Background(), GenerateReportCommand{UserID: 3, Company: "acme"})
		require.NoError(t, err)
		require.Len(t, renderer.data.Rows, 1)
		assert.Equal(t, uint(101), renderer.data.Rows[0].TicketID)
	})

	t.Run("company matches the CNPJ digits", func(t *testing.T) {
		renderer := &fakeRenderer{}
		_, err := newUC(renderer).Execute(context.Background(), GenerateReportCommand{UserID: 3, Company: "12.345.678"})
		require.NoError(t, err)
		assert.Equal(t, 2, renderer.data.TotalTickets)
	})

	t.Run("user matches name or email", func(t *testing.T) {
		renderer := &fakeRenderer{}
		_, err := newUC(renderer).Execute(context.Background(), GenerateReportCommand{UserID: 3, User: "maria"})
		require.NoError(t, err)
		assert.Equal(t, 2, renderer.data.TotalTickets)

		renderer = &fakeRenderer{}
		_, err = newUC(renderer).Execute(context.Background(), GenerateReportCommand{UserID: 3, User: "user@example.com"})
		require.NoError(t, err)
		assert.Equal(t, 2, renderer.data.TotalTickets)

		renderer = &fakeRenderer{}
		_, err = newUC(renderer).Execute(context.Background(), GenerateReportCommand{UserID: 3, User: "joão"})
		require.NoError(t, err)
		assert.Zero(t, renderer.data.TotalTickets)
	})
}

func TestGenerateReport_TimeoutSurfacesAsRetryable(t *testing.T) {
	admin := makeProfile(t, 3, "Ana Costa", user.RoleAdmin)
	uc := NewGenerateReportUseCase(&stubTicketRepository{err: context.DeadlineExceeded}, &stubCompanyRepository{}, &stubUserRepository{
		users: map[uint]*user.Profile{3: admin},
	}, &fakeRenderer{}, nopLogger())

	_, err := uc.Execute(context.Background(), GenerateReportCommand{UserID: 3})
	require.Error(t, err)
	assert.True(t, apperrors.IsTimeoutError(err))
	assert.Contains(t, err.Error(), MsgReportTimeout)
}
