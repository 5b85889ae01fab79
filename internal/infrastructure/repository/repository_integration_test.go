package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/setting"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/models"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.CompanyModel{},
		&models.EquipmentModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.SettingModel{},
	)
	require.NoError(t, err)

	return db
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validFormData() ticket.FormData {
	return ticket.FormData{
		CNPJ:           "12.345.678/0001-95",
		CompanyName:    "Acme Ltda",
		EquipmentModel: "Model X",
		FullAddress:    "Rua X, 10, Bairro, City - ST",
		RequesterName:  "Maria Silva",
		RequesterPhone: "(11) 99999-0000",
		RequesterEmail: "maria@acme.com.br",
		Description:    "O coletor de ponto parou de registrar as marcações desde ontem.",
	}
}

func createTestTicket(t *testing.T, companyID, createdBy uint) *ticket.Ticket {
	tk, err := ticket.NewTicket(companyID, nil, createdBy, validFormData())
	require.NoError(t, err)
	return tk
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	t.Run("save and reload profile", func(t *testing.T) {
		p, err := user.NewProfile("Maria Silva", "maria@acme.com.br", "(11) 99999-0000", user.RoleClient, 7, "hash")
		require.NoError(t, err)
		require.NoError(t, p.UpdateByAdmin("Maria Silva", "(11) 99999-0000", user.RoleClient, 7, []uint{9, 12}, false))

		require.NoError(t, repo.Save(ctx, p))
		assert.NotZero(t, p.ID())

		found, err := repo.GetByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, "maria@acme.com.br", found.Email())
		assert.Equal(t, user.RoleClient, found.Role())
		assert.Equal(t, uint(7), found.CompanyID())
		assert.Equal(t, []uint{9, 12}, found.AdditionalCompanyIDs())
	})

	t.Run("duplicate email surfaces as duplicate error", func(t *testing.T) {
		p, err := user.NewProfile("Outra Maria", "maria@acme.com.br", "", user.RoleClient, 7, "hash")
		require.NoError(t, err)

		err = repo.Save(ctx, p)
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})

	t.Run("get by email normalizes case and spacing", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "  MARIA@acme.com.br ")
		require.NoError(t, err)
		assert.Equal(t, "maria@acme.com.br", found.Email())
	})

	t.Run("unknown email returns ErrUserNotFound", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "ninguem@acme.com.br")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("update persists changed fields", func(t *testing.T) {
		p, err := user.NewProfile("Carlos Souza", "carlos@acme.com.br", "", user.RoleTechnician, 0, "hash")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))

		require.NoError(t, p.UpdateContact("Carlos A. Souza", "(11) 98888-1111"))
		require.NoError(t, repo.Update(ctx, p))

		found, err := repo.GetByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, "Carlos A. Souza", found.FullName())
		assert.Equal(t, "(11) 98888-1111", found.Phone())
	})

	t.Run("list by role", func(t *testing.T) {
		techs, err := repo.ListByRole(ctx, user.RoleTechnician)
		require.NoError(t, err)
		require.Len(t, techs, 1)
		assert.Equal(t, "carlos@acme.com.br", techs[0].Email())
	})
}

func TestCompanyRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db, testLogger())
	ctx := context.Background()

	t.Run("save and find by CNPJ digits", func(t *testing.T) {
		c, err := company.NewCompany("Acme Ltda", "12.345.678/0001-95", "Rua A, 10 - São Paulo/SP")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))

		found, err := repo.GetByCNPJ(ctx, "12345678000195")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Acme Ltda", found.Name())
		assert.Equal(t, "12.345.678/0001-95", found.CNPJ())
	})

	t.Run("unknown CNPJ returns nil without error", func(t *testing.T) {
		found, err := repo.GetByCNPJ(ctx, "99999999000199")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicate CNPJ surfaces as duplicate error", func(t *testing.T) {
		c, err := company.NewCompany("Acme Filial", "12345678000195", "")
		require.NoError(t, err)

		err = repo.Save(ctx, c)
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})

	t.Run("update address", func(t *testing.T) {
		found, err := repo.GetByCNPJ(ctx, "12345678000195")
		require.NoError(t, err)
		require.NotNil(t, found)

		require.NoError(t, found.Update(found.Name(), found.CNPJ(), "Avenida Paulista, 1578 - São Paulo/SP"))
		require.NoError(t, repo.Update(ctx, found))

		again, err := repo.GetByID(ctx, found.ID())
		require.NoError(t, err)
		assert.Equal(t, "Avenida Paulista, 1578 - São Paulo/SP", again.FullAddress())
	})
}

func TestEquipmentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEquipmentRepository(db, testLogger())
	ctx := context.Background()

	seed := func(companyID uint, model string) *equipment.Equipment {
		e, err := equipment.NewEquipment(companyID, "Control iD", model, "SN-1", "", "", equipment.ApplicationAccess, "Proximidade")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, e))
		return e
	}

	seed(7, "iDFlex")
	seed(7, "iDAccess")
	seed(9, "iDClass")

	t.Run("list by company", func(t *testing.T) {
		list, err := repo.ListByCompany(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("nil company list is unrestricted", func(t *testing.T) {
		list, err := repo.ListByCompanies(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("empty company list matches nothing", func(t *testing.T) {
		list, err := repo.ListByCompanies(ctx, []uint{})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("get by id keeps application type", func(t *testing.T) {
		e := seed(9, "iDFace")
		found, err := repo.GetByID(ctx, e.ID())
		require.NoError(t, err)
		assert.Equal(t, equipment.ApplicationAccess, found.ApplicationType())
	})
}

func TestTicketRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, testLogger())
	ctx := context.Background()

	t.Run("save assigns id and reloads form data", func(t *testing.T) {
		tk := createTestTicket(t, 7, 3)
		require.NoError(t, repo.Save(ctx, tk))
		assert.NotZero(t, tk.ID())

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, ticket.StatusOpen, found.Status())
		assert.Equal(t, "Acme Ltda", found.FormData().CompanyName)
		assert.Equal(t, "Maria Silva", found.FormData().RequesterName)
	})

	t.Run("unknown id reads as not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("update persists status and closed time", func(t *testing.T) {
		tk := createTestTicket(t, 7, 3)
		require.NoError(t, repo.Save(ctx, tk))

		require.NoError(t, tk.ChangeStatus(ticket.StatusInService))
		require.NoError(t, tk.Close())
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, ticket.StatusClosed, found.Status())
		require.NotNil(t, found.ClosedAt())
	})

	t.Run("list filters conjunctively", func(t *testing.T) {
		other := createTestTicket(t, 9, 5)
		require.NoError(t, repo.Save(ctx, other))

		status := ticket.StatusOpen
		list, err := repo.List(ctx, ticket.Filter{Status: &status, CompanyIDs: []uint{7}})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, uint(7), list[0].CompanyID())
	})

	t.Run("date bounds include the creation day", func(t *testing.T) {
		from := time.Now().Add(-time.Hour)
		to := time.Now().Add(time.Hour)
		list, err := repo.List(ctx, ticket.Filter{DateFrom: &from, DateTo: &to})
		require.NoError(t, err)
		assert.Len(t, list, 3)

		past := time.Now().Add(-2 * time.Hour)
		list, err = repo.List(ctx, ticket.Filter{DateTo: &past})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("count by status", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx, ticket.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts[ticket.StatusOpen])
		assert.Equal(t, int64(1), counts[ticket.StatusClosed])
	})
}

func TestCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	tickets := NewTicketRepository(db, testLogger())
	repo := NewCommentRepository(db, testLogger())
	ctx := context.Background()

	tk := createTestTicket(t, 7, 3)
	require.NoError(t, tickets.Save(ctx, tk))

	public, err := ticket.NewComment(tk.ID(), 3, "Maria Silva", "cliente", "Alguma novidade?", false)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, public))
	assert.NotZero(t, public.ID())

	internal, err := ticket.NewComment(tk.ID(), 8, "Carlos Souza", "tecnico", "Verificar firmware antes da visita.", true)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, internal))

	t.Run("clients do not see internal notes", func(t *testing.T) {
		list, err := repo.ListByTicket(ctx, tk.ID(), false)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Alguma novidade?", list[0].Content())
	})

	t.Run("staff see the full thread in order", func(t *testing.T) {
		list, err := repo.ListByTicket(ctx, tk.ID(), true)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Alguma novidade?", list[0].Content())
		assert.True(t, list[1].IsInternal())
	})
}

func TestSettingRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingRepository(db, testLogger())
	ctx := context.Background()

	t.Run("absent key returns nil without error", func(t *testing.T) {
		s, err := repo.Get(ctx, setting.KeyPortalName)
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("upsert inserts then overwrites", func(t *testing.T) {
		s, err := setting.NewSetting(setting.KeyPortalName, "Suporte TI")
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, s))

		s2, err := setting.NewSetting(setting.KeyPortalName, "Central de Chamados")
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, s2))

		found, err := repo.Get(ctx, setting.KeyPortalName)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Central de Chamados", found.Value())

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
