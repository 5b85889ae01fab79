package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	CompanyID   uint   `gorm:"index;not null"`
	EquipmentID *uint  `gorm:"index"`
	CreatedBy   uint   `gorm:"index;not null"`
	Status      string `gorm:"size:30;index;not null"`
	FormData    datatypes.JSON
	ClosedAt    *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"index;not null"`
	AuthorID   uint   `gorm:"not null"`
	AuthorName string `gorm:"size:200;not null"`
	AuthorRole string `gorm:"size:20;not null"`
	Content    string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
