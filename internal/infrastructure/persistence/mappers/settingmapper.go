package mappers

import (
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/setting"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/models"
)

// SettingMapper handles the conversion between Setting domain entities and persistence models.
type SettingMapper interface {
	ToModel(s *setting.Setting) *models.SettingModel
	ToDomain(model *models.SettingModel) *setting.Setting
}

type SettingMapperImpl struct{}

func NewSettingMapper() SettingMapper {
	return &SettingMapperImpl{}
}

func (m *SettingMapperImpl) ToModel(s *setting.Setting) *models.SettingModel {
	return &models.SettingModel{
		Key:       s.Key(),
		Value:     s.Value(),
		UpdatedAt: s.UpdatedAt().UnixMilli(),
	}
}

func (m *SettingMapperImpl) ToDomain(model *models.SettingModel) *setting.Setting {
	return setting.ReconstructSetting(model.Key, model.Value, time.UnixMilli(model.UpdatedAt))
}
