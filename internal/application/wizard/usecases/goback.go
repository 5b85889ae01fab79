package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/wizard"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type GoBackCommand struct {
	UserID uint
}

type GoBackUseCase struct {
	drafts wizard.DraftStore
	logger logger.Interface
}

func NewGoBackUseCase(drafts wizard.DraftStore, log logger.Interface) *GoBackUseCase {
	return &GoBackUseCase{drafts: drafts, logger: log}
}

// Execute moves the draft one step back, discarding what the later step had
// collected. Without a draft this is a no-op returning a fresh one.
func (uc *GoBackUseCase) Execute(ctx context.Context, cmd GoBackCommand) (*wizard.Draft, error) {
	d, err := uc.drafts.Get(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if d == nil {
		d = wizard.NewDraft(cmd.UserID)
	} else {
		d.Back()
	}

	if err := uc.drafts.Save(ctx, d); err != nil {
		uc.logger.Errorw("failed to save draft", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}
