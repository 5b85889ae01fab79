package models

type SettingModel struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex;size:100;not null"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SettingModel) TableName() string {
	return "settings"
}
