package usecases

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/setting"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// maxLogoSize caps logo uploads at 2 MiB.
const maxLogoSize = 2 << 20

var allowedLogoTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
}

const (
	MsgLogoTooLarge    = "O logotipo deve ter no máximo 2 MB."
	MsgLogoInvalidType = "Formato de imagem não suportado. Use PNG, JPG, SVG ou WebP."
)

// LogoStorage stores the uploaded logo and returns its public URL.
type LogoStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}

type UploadLogoCommand struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadLogoUseCase struct {
	settingRepo setting.Repository
	storage     LogoStorage
	logger      logger.Interface
}

func NewUploadLogoUseCase(settingRepo setting.Repository, storage LogoStorage, log logger.Interface) *UploadLogoUseCase {
	return &UploadLogoUseCase{settingRepo: settingRepo, storage: storage, logger: log}
}

// Execute stores the new logo and points the logo_url setting at it. The
// URL is returned for immediate display.
func (uc *UploadLogoUseCase) Execute(ctx context.Context, cmd UploadLogoCommand) (string, error) {
	ext, ok := allowedLogoTypes[cmd.ContentType]
	if !ok {
		return "", apperrors.NewValidationError(MsgLogoInvalidType)
	}
	if cmd.Size <= 0 || cmd.Size > maxLogoSize {
		return "", apperrors.NewValidationError(MsgLogoTooLarge)
	}

	previous, err := uc.settingRepo.Get(ctx, setting.KeyLogoURL)
	if err != nil {
		uc.logger.Errorw("failed to load current logo setting", "error", err)
		return "", fmt.Errorf("failed to load current logo setting: %w", err)
	}

	key := "branding/logo" + ext
	url, err := uc.storage.Upload(ctx, key, cmd.ContentType, cmd.Body, cmd.Size)
	if err != nil {
		uc.logger.Errorw("failed to upload logo", "error", err)
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	s, err := setting.NewSetting(setting.KeyLogoURL, url)
	if err != nil {
		return "", apperrors.NewValidationError(err.Error())
	}
	if err := uc.settingRepo.Upsert(ctx, s); err != nil {
		uc.logger.Errorw("failed to save logo setting", "error", err)
		return "", fmt.Errorf("failed to save logo setting: %w", err)
	}

	// A different image type leaves the old object behind under its own
	// extension. Removal is best effort; the new logo is already live.
	if oldKey, ok := logoKeyFromURL(previous); ok && oldKey != key {
		if err := uc.storage.Delete(ctx, oldKey); err != nil {
			uc.logger.Warnw("failed to delete previous logo", "key", oldKey, "error", err)
		}
	}

	uc.logger.Infow("logo updated", "url", url)
	return url, nil
}

func logoKeyFromURL(s *setting.Setting) (string, bool) {
	if s == nil || s.Value() == "" {
		return "", false
	}
	url := s.Value()
	idx := strings.Index(url, "branding/logo")
	if idx < 0 {
		return "", false
	}
	return url[idx:], true
}
