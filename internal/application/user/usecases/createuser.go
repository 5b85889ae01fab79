package usecases

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/notification"
	sessionuc "github.com/LucasFelipeJesus/portal-chamados/internal/application/session/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

const (
	MsgEmailTaken = "Já existe um usuário com este email."
)

// CreateUserCommand registers an account with a provisional password. The
// user is forced to change it on first sign-in.
type CreateUserCommand struct {
	FullName             string
	Email                string
	Phone                string
	Role                 string
	CompanyID            uint
	AdditionalCompanyIDs []uint
	ProvisionalPassword  string
}

type CreateUserResult struct {
	Profile *user.Profile
	// InviteSent is false when the invite email failed; the account was
	// still created.
	InviteSent bool
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   sessionuc.PasswordHasher
	mailer   notification.Mailer
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher sessionuc.PasswordHasher, mailer notification.Mailer, log logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo, hasher: hasher, mailer: mailer, logger: log}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	role := user.Role(cmd.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("perfil inválido: %s", cmd.Role))
	}

	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		uc.logger.Errorw("failed to check existing email", "error", err)
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(MsgEmailTaken)
	}

	hash, err := uc.hasher.Hash(cmd.ProvisionalPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash provisional password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile, err := user.NewProfile(cmd.FullName, cmd.Email, cmd.Phone, role, cmd.CompanyID, hash)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if len(cmd.AdditionalCompanyIDs) > 0 {
		if err := profile.UpdateByAdmin(profile.FullName(), profile.Phone(), role, cmd.CompanyID, cmd.AdditionalCompanyIDs, true); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Save(ctx, profile); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError(MsgEmailTaken)
		}
		uc.logger.Errorw("failed to save profile", "error", err)
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	sent := true
	body := fmt.Sprintf(
		"<p>Olá %s,</p><p>Sua conta no portal de chamados foi criada.</p><p>Senha provisória: <strong>%s</strong></p><p>Você deverá trocá-la no primeiro acesso.</p>",
		html.EscapeString(profile.FullName()), html.EscapeString(cmd.ProvisionalPassword))
	if err := uc.mailer.Send(ctx, []string{profile.Email()}, "Sua conta foi criada", body); err != nil {
		uc.logger.Warnw("failed to send invite email", "user_id", profile.ID(), "error", err)
		sent = false
	}

	uc.logger.Infow("user created", "user_id", profile.ID(), "role", role.String())
	return &CreateUserResult{Profile: profile, InviteSent: sent}, nil
}
