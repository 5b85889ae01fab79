package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/mappers"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/models"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/db"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// UserRepository implements user.Repository backed by gorm.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Save(ctx context.Context, p *user.Profile) error {
	model := r.mapper.ToModel(p)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, p *user.Profile) error {
	model := r.mapper.ToModel(p)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"full_name":              model.FullName,
		"email":                  model.Email,
		"phone":                  model.Phone,
		"role":                   model.Role,
		"company_id":             model.CompanyID,
		"additional_company_ids": model.AdditionalCompanyIDs,
		"password_hash":          model.PasswordHash,
		"force_password_change":  model.ForcePasswordChange,
		"email_confirmed":        model.EmailConfirmed,
		"updated_at":             model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, profileID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Delete(&models.UserModel{}, profileID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, profileID uint) (*user.Profile, error) {
	var model models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).First(&model, profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByIDs(ctx context.Context, profileIDs []uint) ([]*user.Profile, error) {
	if len(profileIDs) == 0 {
		return []*user.Profile{}, nil
	}

	var modelList []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Where("id IN ?", profileIDs).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.Profile, error) {
	var model models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.Profile, error) {
	var modelList []models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Where("role = ?", role.String()).Order("full_name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *UserRepository) List(ctx context.Context) ([]*user.Profile, error) {
	var modelList []models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Order("full_name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *UserRepository) toDomainList(modelList []models.UserModel) ([]*user.Profile, error) {
	profiles := make([]*user.Profile, 0, len(modelList))
	for i := range modelList {
		p, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map user %d: %w", modelList[i].ID, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
