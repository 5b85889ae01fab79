package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/session"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/config"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// Friendly sign-in messages shown to the user in place of raw provider
// errors.
const (
	MsgInvalidCredentials = "Email ou senha incorretos"
	MsgEmailNotConfirmed  = "Email não confirmado. Verifique sua caixa de entrada."
)

type SignInCommand struct {
	Email    string
	Password string
}

type SignInResult struct {
	Profile             *user.Profile
	SessionID           string
	AccessToken         string
	ExpiresIn           int64
	ForcePasswordChange bool
}

type SignInUseCase struct {
	userRepo    user.Repository
	hasher      PasswordHasher
	jwtService  JWTService
	store       session.Store
	hub         *session.Hub
	idleWatcher *session.IdleWatcher
	cfg         config.SessionConfig
	logger      logger.Interface
}

func NewSignInUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	jwtService JWTService,
	store session.Store,
	hub *session.Hub,
	idleWatcher *session.IdleWatcher,
	cfg config.SessionConfig,
	log logger.Interface,
) *SignInUseCase {
	return &SignInUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		store:       store,
		hub:         hub,
		idleWatcher: idleWatcher,
		cfg:         cfg,
		logger:      log,
	}
}

func (uc *SignInUseCase) Execute(ctx context.Context, cmd SignInCommand) (*SignInResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, apperrors.NewUnauthorizedError(MsgInvalidCredentials)
	}

	profile, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same message as a wrong password so the response never reveals
			// whether the email exists.
			return nil, apperrors.NewUnauthorizedError(MsgInvalidCredentials)
		}
		uc.logger.Errorw("failed to load profile by email", "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := uc.hasher.Verify(profile.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("sign-in rejected", "user_id", profile.ID())
		return nil, apperrors.NewUnauthorizedError(MsgInvalidCredentials)
	}

	if !profile.EmailConfirmed() {
		return nil, apperrors.NewUnauthorizedError(MsgEmailNotConfirmed)
	}

	sess := &session.Session{
		ID:         uuid.NewString(),
		UserID:     profile.ID(),
		CreatedAt:  time.Now(),
		LastSeenAt: time.Now(),
	}
	if err := uc.store.Save(ctx, sess, uc.cfg.IdleTimeout()); err != nil {
		uc.logger.Errorw("failed to persist session", "user_id", profile.ID(), "error", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, expiresIn, err := uc.jwtService.Generate(profile.ID(), sess.ID, profile.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", profile.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.idleWatcher.Watch(sess.ID, profile.ID())
	uc.hub.Publish(session.Event{Type: session.EventSignedIn, UserID: profile.ID(), SessionID: sess.ID})

	uc.logger.Infow("user signed in", "user_id", profile.ID(), "role", profile.Role().String())
	return &SignInResult{
		Profile:             profile,
		SessionID:           sess.ID,
		AccessToken:         token,
		ExpiresIn:           expiresIn,
		ForcePasswordChange: profile.ForcePasswordChange(),
	}, nil
}
