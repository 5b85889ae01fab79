package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/mappers"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/models"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/db"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// CompanyRepository implements company.Repository backed by gorm.
type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
	logger logger.Interface
}

// NewCompanyRepository creates a new company repository.
func NewCompanyRepository(db *gorm.DB, logger logger.Interface) company.Repository {
	return &CompanyRepository{
		db:     db,
		mapper: mappers.NewCompanyMapper(),
		logger: logger,
	}
}

func (r *CompanyRepository) Save(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create company", "cnpj", model.CNPJDigits, "error", err)
		return fmt.Errorf("failed to create company: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set company ID: %w", err)
	}
	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Model(&models.CompanyModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":         model.Name,
		"cnpj":         model.CNPJ,
		"cnpj_digits":  model.CNPJDigits,
		"full_address": model.FullAddress,
		"updated_at":   model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update company", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("empresa não encontrada")
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, companyID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Delete(&models.CompanyModel{}, companyID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("empresa não encontrada")
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, companyID uint) (*company.Company, error) {
	var model models.CompanyModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).First(&model, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("empresa não encontrada")
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyRepository) GetByIDs(ctx context.Context, companyIDs []uint) ([]*company.Company, error) {
	if len(companyIDs) == 0 {
		return []*company.Company{}, nil
	}

	var modelList []models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Where("id IN ?", companyIDs).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to find companies: %w", err)
	}

	return r.toDomainList(modelList)
}

// GetByCNPJ matches on the stripped 14-digit form and returns nil without
// error when no row matches, so callers can branch on absence.
func (r *CompanyRepository) GetByCNPJ(ctx context.Context, cnpjDigits string) (*company.Company, error) {
	var model models.CompanyModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Where("cnpj_digits = ?", cnpjDigits).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company by CNPJ: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyRepository) List(ctx context.Context) ([]*company.Company, error) {
	var modelList []models.CompanyModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *CompanyRepository) toDomainList(modelList []models.CompanyModel) ([]*company.Company, error) {
	companies := make([]*company.Company, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map company %d: %w", modelList[i].ID, err)
		}
		companies = append(companies, c)
	}
	return companies, nil
}
