package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/biztime"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
)

func clientWithCompanies(t *testing.T, id, primary uint, additional []uint) *user.Profile {
	t.Helper()
	p := testProfile(t, id, user.RoleClient, primary)
	if additional != nil {
		require.NoError(t, p.UpdateByAdmin(p.FullName(), p.Phone(), user.RoleClient, primary, additional, false))
	}
	return p
}

func TestListTickets_ClientScopedToAllowedCompanies(t *testing.T) {
	client := clientWithCompanies(t, 1, 7, []uint{9})

	var gotFilter ticket.Filter
	uc := NewListTicketsUseCase(&mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
			gotFilter = filter
			return []*ticket.Ticket{testTicket(101, 7, 1, ticket.StatusOpen)}, nil
		},
	}, &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) { return client, nil },
	}, nopLogger())

	tickets, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
	assert.Equal(t, []uint{7, 9}, gotFilter.CompanyIDs)
}

func TestListTickets_ClientWithoutCompaniesGetsEmptyList(t *testing.T) {
	client := testProfile(t, 1, user.RoleClient, 0)

	uc := NewListTicketsUseCase(&mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
			t.Fatal("repository must not be queried")
			return nil, nil
		},
	}, &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) { return client, nil },
	}, nopLogger())

	tickets, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 1})
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestListTickets_ClientFilteringForeignCompanyGetsEmptyList(t *testing.T) {
	client := clientWithCompanies(t, 1, 7, nil)

	uc := NewListTicketsUseCase(&mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
			t.Fatal("repository must not be queried")
			return nil, nil
		},
	}, &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) { return client, nil },
	}, nopLogger())

	tickets, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 1, CompanyID: 9})
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestListTickets_StaffFilterPassthrough(t *testing.T) {
	admin := testProfile(t, 3, user.RoleAdmin, 0)
	from := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	to := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)

	var gotFilter ticket.Filter
	uc := NewListTicketsUseCase(&mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
			gotFilter = filter
			return nil, nil
		},
	}, &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) { return admin, nil },
	}, nopLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		UserID:      3,
		Status:      "aberto",
		CompanyID:   7,
		EquipmentID: 31,
		OnlyMine:    true,
		DateFrom:    &from,
		DateTo:      &to,
	})
	require.NoError(t, err)

	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, ticket.StatusOpen, *gotFilter.Status)
	assert.Equal(t, []uint{7}, gotFilter.CompanyIDs)
	require.NotNil(t, gotFilter.EquipmentID)
	assert.Equal(t, uint(31), *gotFilter.EquipmentID)
	require.NotNil(t, gotFilter.CreatedBy)
	assert.Equal(t, uint(3), *gotFilter.CreatedBy)

	// Date bounds widen to whole business days.
	require.NotNil(t, gotFilter.DateFrom)
	assert.Equal(t, biztime.StartOfDay(from), *gotFilter.DateFrom)
	require.NotNil(t, gotFilter.DateTo)
	assert.Equal(t, biztime.EndOfDay(to), *gotFilter.DateTo)
}

func TestListTickets_UnknownStatusRejected(t *testing.T) {
	admin := testProfile(t, 3, user.RoleAdmin, 0)

	uc := NewListTicketsUseCase(&mockTicketRepository{}, &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) { return admin, nil },
	}, nopLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 3, Status: "pendente"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestListTickets_TimeoutSurfacesAsRetryable(t *testing.T) {
	admin := testProfile(t, 3, user.RoleAdmin, 0)

	uc := NewListTicketsUseCase(&mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
			return nil, context.DeadlineExceeded
		},
	}, &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) { return admin, nil },
	}, nopLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 3})
	require.Error(t, err)
	assert.True(t, apperrors.IsTimeoutError(err))
	assert.Contains(t, err.Error(), MsgListTimeout)
}
