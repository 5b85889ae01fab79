package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/setting"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/mappers"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/models"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/db"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// SettingRepository implements setting.Repository backed by gorm.
type SettingRepository struct {
	db     *gorm.DB
	mapper mappers.SettingMapper
	logger logger.Interface
}

// NewSettingRepository creates a new setting repository.
func NewSettingRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &SettingRepository{
		db:     db,
		mapper: mappers.NewSettingMapper(),
		logger: logger,
	}
}

// Get returns nil without error when the key is absent, so callers fall back
// to their defaults.
func (r *SettingRepository) Get(ctx context.Context, key string) (*setting.Setting, error) {
	var model models.SettingModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Where("`key` = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find setting: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *SettingRepository) GetAll(ctx context.Context) ([]*setting.Setting, error) {
	var modelList []models.SettingModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Order("`key` ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	settings := make([]*setting.Setting, 0, len(modelList))
	for i := range modelList {
		settings = append(settings, r.mapper.ToDomain(&modelList[i]))
	}
	return settings, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, s *setting.Setting) error {
	model := r.mapper.ToModel(s)

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert setting", "key", model.Key, "error", err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}
