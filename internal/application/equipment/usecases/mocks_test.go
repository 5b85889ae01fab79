package usecases

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

func nopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testEquipment(t *testing.T, id uint, companyID uint) *equipment.Equipment {
	t.Helper()
	e, err := equipment.NewEquipment(companyID, "ControliD", "iDAccess Pro Prox", "SN-001", "Recepção", "Portaria principal", equipment.ApplicationAccess, "Biometria")
	require.NoError(t, err)
	require.NoError(t, e.SetID(id))
	return e
}

func testProfile(t *testing.T, id uint, role user.Role, companyID uint) *user.Profile {
	t.Helper()
	p, err := user.NewProfile("João Souza", "joao@example.com", "(11) 98888-0000", role, companyID, "hash")
	require.NoError(t, err)
	require.NoError(t, p.SetID(id))
	return p
}

type mockEquipmentRepository struct {
	SaveFunc            func(ctx context.Context, e *equipment.Equipment) error
	UpdateFunc          func(ctx context.Context, e *equipment.Equipment) error
	DeleteFunc          func(ctx context.Context, id uint) error
	GetByIDFunc         func(ctx context.Context, id uint) (*equipment.Equipment, error)
	ListByCompanyFunc   func(ctx context.Context, companyID uint) ([]*equipment.Equipment, error)
	ListByCompaniesFunc func(ctx context.Context, companyIDs []uint) ([]*equipment.Equipment, error)
}

func (m *mockEquipmentRepository) Save(ctx context.Context, e *equipment.Equipment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEquipmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("equipment not found")
}

func (m *mockEquipmentRepository) ListByCompany(ctx context.Context, companyID uint) ([]*equipment.Equipment, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) ListByCompanies(ctx context.Context, companyIDs []uint) ([]*equipment.Equipment, error) {
	if m.ListByCompaniesFunc != nil {
		return m.ListByCompaniesFunc(ctx, companyIDs)
	}
	return nil, nil
}

type mockCompanyRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*company.Company, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *company.Company) error   { return nil }
func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error { return nil }
func (m *mockCompanyRepository) Delete(ctx context.Context, id uint) error            { return nil }

func (m *mockCompanyRepository) GetByID(ctx context.Context, id uint) (*company.Company, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("company not found")
}

func (m *mockCompanyRepository) GetByIDs(ctx context.Context, ids []uint) ([]*company.Company, error) {
	return nil, nil
}

func (m *mockCompanyRepository) GetByCNPJ(ctx context.Context, cnpjDigits string) (*company.Company, error) {
	return nil, nil
}

func (m *mockCompanyRepository) List(ctx context.Context) ([]*company.Company, error) {
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.Profile, error)
}

func (m *mockUserRepository) Save(ctx context.Context, p *user.Profile) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, p *user.Profile) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error         { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.Profile, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.Profile, error) {
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.Profile, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.Profile, error) {
	return nil, nil
}

type mockTicketRepository struct {
	ListFunc func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error          { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, filter ticket.Filter) (map[ticket.Status]int64, error) {
	return map[ticket.Status]int64{}, nil
}
