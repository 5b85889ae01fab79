package usecases

import (
	"context"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/wizard"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

type GetDraftQuery struct {
	UserID uint
}

type GetDraftUseCase struct {
	drafts wizard.DraftStore
	logger logger.Interface
}

func NewGetDraftUseCase(drafts wizard.DraftStore, log logger.Interface) *GetDraftUseCase {
	return &GetDraftUseCase{drafts: drafts, logger: log}
}

// Execute returns the caller's in-progress draft, starting a fresh one at
// the company lookup step when none exists.
func (uc *GetDraftUseCase) Execute(ctx context.Context, query GetDraftQuery) (*wizard.Draft, error) {
	d, err := uc.drafts.Get(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load wizard draft", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if d != nil {
		return d, nil
	}

	d = wizard.NewDraft(query.UserID)
	if err := uc.drafts.Save(ctx, d); err != nil {
		uc.logger.Errorw("failed to save wizard draft", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}
