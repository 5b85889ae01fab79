package models

type EquipmentModel struct {
	ID                   uint   `gorm:"primaryKey"`
	CompanyID            uint   `gorm:"index;not null"`
	Manufacturer         string `gorm:"size:100;not null"`
	Model                string `gorm:"size:100;not null"`
	SerialNumber         string `gorm:"size:100"`
	InternalLocation     string `gorm:"size:200"`
	InstallationLocation string `gorm:"size:200"`
	ApplicationType      string `gorm:"size:50"`
	Technology           string `gorm:"size:50"`
	CreatedAt            int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt            int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (EquipmentModel) TableName() string {
	return "equipment"
}
