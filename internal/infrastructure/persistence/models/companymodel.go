package models

type CompanyModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	CNPJ        string `gorm:"size:18;not null"`
	CNPJDigits  string `gorm:"uniqueIndex;size:14;not null"`
	FullAddress string `gorm:"size:500"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CompanyModel) TableName() string {
	return "companies"
}
