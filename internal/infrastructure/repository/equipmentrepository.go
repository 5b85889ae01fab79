package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/mappers"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/models"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/db"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// EquipmentRepository implements equipment.Repository backed by gorm.
type EquipmentRepository struct {
	db     *gorm.DB
	mapper mappers.EquipmentMapper
	logger logger.Interface
}

// NewEquipmentRepository creates a new equipment repository.
func NewEquipmentRepository(db *gorm.DB, logger logger.Interface) equipment.Repository {
	return &EquipmentRepository{
		db:     db,
		mapper: mappers.NewEquipmentMapper(),
		logger: logger,
	}
}

func (r *EquipmentRepository) Save(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create equipment", "company_id", model.CompanyID, "error", err)
		return fmt.Errorf("failed to create equipment: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set equipment ID: %w", err)
	}
	return nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Model(&models.EquipmentModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"company_id":            model.CompanyID,
		"manufacturer":          model.Manufacturer,
		"model":                 model.Model,
		"serial_number":         model.SerialNumber,
		"internal_location":     model.InternalLocation,
		"installation_location": model.InstallationLocation,
		"application_type":      model.ApplicationType,
		"technology":            model.Technology,
		"updated_at":            model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update equipment", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("equipamento não encontrado")
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, equipmentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Delete(&models.EquipmentModel{}, equipmentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("equipamento não encontrado")
	}
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, equipmentID uint) (*equipment.Equipment, error) {
	var model models.EquipmentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).First(&model, equipmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("equipamento não encontrado")
		}
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EquipmentRepository) ListByCompany(ctx context.Context, companyID uint) ([]*equipment.Equipment, error) {
	return r.ListByCompanies(ctx, []uint{companyID})
}

// ListByCompanies lists equipment of the given companies. A nil slice means
// no company restriction.
func (r *EquipmentRepository) ListByCompanies(ctx context.Context, companyIDs []uint) ([]*equipment.Equipment, error) {
	var modelList []models.EquipmentModel

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.WithContext(ctx).Order("model ASC")
	if companyIDs != nil {
		query = query.Where("company_id IN ?", companyIDs)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	equipments := make([]*equipment.Equipment, 0, len(modelList))
	for i := range modelList {
		e, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map equipment %d: %w", modelList[i].ID, err)
		}
		equipments = append(equipments, e)
	}
	return equipments, nil
}
