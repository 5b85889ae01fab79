package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		CompanyID:   t.CompanyID(),
		EquipmentID: t.EquipmentID(),
		CreatedBy:   t.CreatedBy(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}

	formJSON, _ := json.Marshal(t.FormData())
	model.FormData = datatypes.JSON(formJSON)

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var formData ticket.FormData
	if len(model.FormData) > 0 {
		if err := json.Unmarshal(model.FormData, &formData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal form data: %w", err)
		}
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		closed := time.UnixMilli(*model.ClosedAt)
		closedAt = &closed
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.CompanyID,
		model.EquipmentID,
		model.CreatedBy,
		ticket.Status(model.Status),
		formData,
		closedAt,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	), nil
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		AuthorName: c.AuthorName(),
		AuthorRole: c.AuthorRole(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.AuthorName,
		model.AuthorRole,
		model.Content,
		model.IsInternal,
		time.UnixMilli(model.CreatedAt),
	), nil
}
