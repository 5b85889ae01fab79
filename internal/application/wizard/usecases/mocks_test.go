package usecases

import (
	"context"
	"io"
	"log/slog"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/lookup"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/setting"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/wizard"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

func nopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// memDraftStore is an in-memory DraftStore; the wizard flow tests walk real
// drafts through it.
type memDraftStore struct {
	drafts map[uint]*wizard.Draft
	getErr error
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{drafts: make(map[uint]*wizard.Draft)}
}

func (m *memDraftStore) Get(ctx context.Context, userID uint) (*wizard.Draft, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.drafts[userID], nil
}

func (m *memDraftStore) Save(ctx context.Context, d *wizard.Draft) error {
	m.drafts[d.UserID] = d
	return nil
}

func (m *memDraftStore) Delete(ctx context.Context, userID uint) error {
	delete(m.drafts, userID)
	return nil
}

type mockCompanyRepository struct {
	SaveFunc      func(ctx context.Context, c *company.Company) error
	UpdateFunc    func(ctx context.Context, c *company.Company) error
	DeleteFunc    func(ctx context.Context, companyID uint) error
	GetByIDFunc   func(ctx context.Context, companyID uint) (*company.Company, error)
	GetByIDsFunc  func(ctx context.Context, companyIDs []uint) ([]*company.Company, error)
	GetByCNPJFunc func(ctx context.Context, cnpjDigits string) (*company.Company, error)
	ListFunc      func(ctx context.Context) ([]*company.Company, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Delete(ctx context.Context, companyID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, companyID)
	}
	return nil
}

func (m *mockCompanyRepository) GetByID(ctx context.Context, companyID uint) (*company.Company, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockCompanyRepository) GetByIDs(ctx context.Context, companyIDs []uint) ([]*company.Company, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, companyIDs)
	}
	return nil, nil
}

func (m *mockCompanyRepository) GetByCNPJ(ctx context.Context, cnpjDigits string) (*company.Company, error) {
	if m.GetByCNPJFunc != nil {
		return m.GetByCNPJFunc(ctx, cnpjDigits)
	}
	return nil, nil
}

func (m *mockCompanyRepository) List(ctx context.Context) ([]*company.Company, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
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

type mockEquipmentRepository struct {
	SaveFunc            func(ctx context.Context, e *equipment.Equipment) error
	UpdateFunc          func(ctx context.Context, e *equipment.Equipment) error
	DeleteFunc          func(ctx context.Context, equipmentID uint) error
	GetByIDFunc         func(ctx context.Context, equipmentID uint) (*equipment.Equipment, error)
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

func (m *mockEquipmentRepository) Delete(ctx context.Context, equipmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, equipmentID)
	}
	return nil
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, equipmentID uint) (*equipment.Equipment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, equipmentID)
	}
	return nil, nil
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

type mockCompanyClient struct {
	FetchCompanyFunc func(ctx context.Context, cnpjDigits string) (*lookup.CompanyInfo, error)
}

func (m *mockCompanyClient) FetchCompany(ctx context.Context, cnpjDigits string) (*lookup.CompanyInfo, error) {
	if m.FetchCompanyFunc != nil {
		return m.FetchCompanyFunc(ctx, cnpjDigits)
	}
	return nil, lookup.ErrNotFound
}

type mockAddressClient struct {
	FetchAddressFunc func(ctx context.Context, cep string) (*lookup.AddressInfo, error)
}

func (m *mockAddressClient) FetchAddress(ctx context.Context, cep string) (*lookup.AddressInfo, error) {
	if m.FetchAddressFunc != nil {
		return m.FetchAddressFunc(ctx, cep)
	}
	return nil, lookup.ErrNotFound
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

// fakeTransactor runs the function directly, without a database.
type fakeTransactor struct{}

func (fakeTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
