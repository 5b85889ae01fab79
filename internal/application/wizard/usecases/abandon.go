package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/wizard"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type AbandonCommand struct {
	UserID uint
}

type AbandonUseCase struct {
	drafts wizard.DraftStore
	logger logger.Interface
}

func NewAbandonUseCase(drafts wizard.DraftStore, log logger.Interface) *AbandonUseCase {
	return &AbandonUseCase{drafts: drafts, logger: log}
}

// Execute discards the caller's draft entirely. The next wizard visit
// starts over at company lookup.
func (uc *AbandonUseCase) Execute(ctx context.Context, cmd AbandonCommand) error {
	if err := uc.drafts.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete draft", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	uc.logger.Infow("wizard abandoned", "user_id", cmd.UserID)
	return nil
}
