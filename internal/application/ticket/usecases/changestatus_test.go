package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
)

func TestChangeStatus_ClientForbidden(t *testing.T) {
	client := testProfile(t, 1, user.RoleClient, 7)

	uc := NewChangeStatusUseCase(&mockTicketRepository{}, &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) { return client, nil },
	}, nopLogger())

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 101, UserID: 1, Status: "em_atendimento"})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.Contains(t, err.Error(), MsgStatusChangeForbidden)
}

func TestChangeStatus_UnknownStatus(t *testing.T) {
	uc := NewChangeStatusUseCase(&mockTicketRepository{}, &mockUserRepository{}, nopLogger())

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 101, UserID: 2, Status: "resolvido"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestChangeStatus_TechnicianMovesTicket(t *testing.T) {
	tech := testProfile(t, 2, user.RoleTechnician, 0)
	tk := testTicket(101, 7, 1, ticket.StatusOpen)

	updated := false
	uc := NewChangeStatusUseCase(&mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = true
			return nil
		},
	}, &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) { return tech, nil },
	}, nopLogger())

	res, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 101, UserID: 2, Status: "em_atendimento"})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, ticket.StatusInService, res.Status())
	assert.Nil(t, res.ClosedAt())
}

func TestChangeStatus_ClosingStampsClosedAt(t *testing.T) {
	admin := testProfile(t, 3, user.RoleAdmin, 0)
	tk := testTicket(101, 7, 1, ticket.StatusInService)

	uc := NewChangeStatusUseCase(&mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}, &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) { return admin, nil },
	}, nopLogger())

	res, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 101, UserID: 3, Status: "fechado"})
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusClosed, res.Status())
	assert.NotNil(t, res.ClosedAt())
}

func TestChangeStatus_InvalidTransition(t *testing.T) {
	admin := testProfile(t, 3, user.RoleAdmin, 0)
	tk := testTicket(101, 7, 1, ticket.StatusClosed)

	uc := NewChangeStatusUseCase(&mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}, &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) { return admin, nil },
	}, nopLogger())

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 101, UserID: 3, Status: "em_atendimento"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
