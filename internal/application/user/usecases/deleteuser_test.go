package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
)

func TestDeleteUser_Success(t *testing.T) {
	profile := testProfile(t, 7, user.RoleClient, 4)
	var deletedID uint
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) { return profile, nil },
		DeleteFunc:  func(ctx context.Context, id uint) error { deletedID = id; return nil },
	}
	uc := NewDeleteUserUseCase(repo, nopLogger())

	err := uc.Execute(context.Background(), DeleteUserCommand{UserID: 7, RequestedBy: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(7), deletedID)
}

func TestDeleteUser_SelfDeletion(t *testing.T) {
	uc := NewDeleteUserUseCase(&mockUserRepository{}, nopLogger())

	err := uc.Execute(context.Background(), DeleteUserCommand{UserID: 1, RequestedBy: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), MsgCannotDeleteSelf)
}

func TestDeleteUser_NotFound(t *testing.T) {
	uc := NewDeleteUserUseCase(&mockUserRepository{}, nopLogger())

	err := uc.Execute(context.Background(), DeleteUserCommand{UserID: 99, RequestedBy: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestListUsers_All(t *testing.T) {
	repo := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*user.Profile, error) {
			return []*user.Profile{
				testProfile(t, 1, user.RoleAdmin, 0),
				testProfile(t, 2, user.RoleClient, 4),
			}, nil
		},
	}
	uc := NewListUsersUseCase(repo, nopLogger())

	list, err := uc.Execute(context.Background(), ListUsersQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListUsers_ByRole(t *testing.T) {
	var requested user.Role
	repo := &mockUserRepository{
		ListByRoleFunc: func(ctx context.Context, role user.Role) ([]*user.Profile, error) {
			requested = role
			return []*user.Profile{testProfile(t, 3, user.RoleTechnician, 0)}, nil
		},
	}
	uc := NewListUsersUseCase(repo, nopLogger())

	list, err := uc.Execute(context.Background(), ListUsersQuery{Role: "tecnico"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, user.RoleTechnician, requested)
}

func TestListUsers_InvalidRole(t *testing.T) {
	uc := NewListUsersUseCase(&mockUserRepository{}, nopLogger())

	_, err := uc.Execute(context.Background(), ListUsersQuery{Role: "gerente"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
