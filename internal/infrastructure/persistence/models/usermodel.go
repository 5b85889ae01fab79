package models

import "gorm.io/datatypes"

type UserModel struct {
	ID                   uint   `gorm:"primaryKey"`
	FullName             string `gorm:"size:200;not null"`
	Email                string `gorm:"uniqueIndex;size:255;not null"`
	Phone                string `gorm:"size:30"`
	Role                 string `gorm:"size:20;not null;index"`
	CompanyID            uint   `gorm:"index"`
	AdditionalCompanyIDs datatypes.JSON
	PasswordHash         string `gorm:"size:255;not null"`
	ForcePasswordChange  bool   `gorm:"not null;default:false"`
	EmailConfirmed       bool   `gorm:"not null;default:false"`
	CreatedAt            int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt            int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
