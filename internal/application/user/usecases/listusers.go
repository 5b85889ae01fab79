package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type ListUsersQuery struct {
	Role string
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: log}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]*user.Profile, error) {
	if query.Role != "" {
		role := user.Role(query.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("perfil inválido: %s", query.Role))
		}
		list, err := uc.userRepo.ListByRole(ctx, role)
		if err != nil {
			uc.logger.Errorw("failed to list users", "role", query.Role, "error", err)
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return list, nil
	}

	list, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return list, nil
}
