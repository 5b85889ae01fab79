package mappers

import (
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/models"
)

// EquipmentMapper handles the conversion between Equipment domain entities and persistence models.
type EquipmentMapper interface {
	ToModel(e *equipment.Equipment) *models.EquipmentModel
	ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error)
}

type EquipmentMapperImpl struct{}

func NewEquipmentMapper() EquipmentMapper {
	return &EquipmentMapperImpl{}
}

func (m *EquipmentMapperImpl) ToModel(e *equipment.Equipment) *models.EquipmentModel {
	return &models.EquipmentModel{
		ID:                   e.ID(),
		CompanyID:            e.CompanyID(),
		Manufacturer:         e.Manufacturer(),
		Model:                e.Model(),
		SerialNumber:         e.SerialNumber(),
		InternalLocation:     e.InternalLocation(),
		InstallationLocation: e.InstallationLocation(),
		ApplicationType:      e.ApplicationType().String(),
		Technology:           e.Technology(),
		CreatedAt:            e.CreatedAt().UnixMilli(),
		UpdatedAt:            e.UpdatedAt().UnixMilli(),
	}
}

func (m *EquipmentMapperImpl) ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error) {
	return equipment.ReconstructEquipment(
		model.ID,
		model.CompanyID,
		model.Manufacturer,
		model.Model,
		model.SerialNumber,
		model.InternalLocation,
		model.InstallationLocation,
		equipment.ApplicationType(model.ApplicationType),
		model.Technology,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
