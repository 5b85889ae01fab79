package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between Profile domain entities and persistence models.
type UserMapper interface {
	ToModel(p *user.Profile) *models.UserModel
	ToDomain(model *models.UserModel) (*user.Profile, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(p *user.Profile) *models.UserModel {
	model := &models.UserModel{
		ID:                  p.ID(),
		FullName:            p.FullName(),
		Email:               p.Email(),
		Phone:               p.Phone(),
		Role:                p.Role().String(),
		CompanyID:           p.CompanyID(),
		PasswordHash:        p.PasswordHash(),
		ForcePasswordChange: p.ForcePasswordChange(),
		EmailConfirmed:      p.EmailConfirmed(),
		CreatedAt:           p.CreatedAt().UnixMilli(),
		UpdatedAt:           p.UpdatedAt().UnixMilli(),
	}

	if ids := p.AdditionalCompanyIDs(); len(ids) > 0 {
		idsJSON, _ := json.Marshal(ids)
		model.AdditionalCompanyIDs = datatypes.JSON(idsJSON)
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.Profile, error) {
	var additionalIDs []uint
	if len(model.AdditionalCompanyIDs) > 0 {
		if err := json.Unmarshal(model.AdditionalCompanyIDs, &additionalIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal additional company IDs: %w", err)
		}
	}

	return user.ReconstructProfile(
		model.ID,
		model.FullName,
		model.Email,
		model.Phone,
		user.Role(model.Role),
		model.CompanyID,
		additionalIDs,
		model.ForcePasswordChange,
		model.PasswordHash,
		model.EmailConfirmed,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
