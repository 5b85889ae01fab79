package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/mappers"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/persistence/models"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/db"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// TicketRepository implements ticket.Repository backed by gorm.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

// NewTicketRepository creates a new ticket repository.
func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "company_id", model.CompanyID, "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	t.SetID(model.ID)
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Model(&models.TicketModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"status":     model.Status,
		"form_data":  model.FormData,
		"closed_at":  model.ClosedAt,
		"updated_at": model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("chamado não encontrado")
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("chamado não encontrado")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("chamado não encontrado")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	var modelList []models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	query := applyTicketFilter(tx.WithContext(ctx), filter)
	if err := query.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map ticket %d: %w", modelList[i].ID, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, filter ticket.Filter) (map[ticket.Status]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount

	tx := db.GetTxFromContext(ctx, r.db)
	query := applyTicketFilter(tx.WithContext(ctx).Model(&models.TicketModel{}), filter)
	if err := query.Select("status, COUNT(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	counts := make(map[ticket.Status]int64, len(rows))
	for _, row := range rows {
		counts[ticket.Status(row.Status)] = row.Count
	}
	return counts, nil
}

// applyTicketFilter combines the set filter fields conjunctively. Date bounds
// compare against the stored millisecond timestamps.
func applyTicketFilter(query *gorm.DB, filter ticket.Filter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if len(filter.CompanyIDs) > 0 {
		query = query.Where("company_id IN ?", filter.CompanyIDs)
	}
	if filter.EquipmentID != nil {
		query = query.Where("equipment_id = ?", *filter.EquipmentID)
	}
	if filter.CreatedBy != nil {
		query = query.Where("created_by = ?", *filter.CreatedBy)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", filter.DateFrom.UnixMilli())
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", filter.DateTo.UnixMilli())
	}
	return query
}

// CommentRepository implements ticket.CommentRepository backed by gorm.
type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB, logger logger.Interface) ticket.CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create comment", "ticket_id", model.TicketID, "error", err)
		return fmt.Errorf("failed to create comment: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
	var modelList []models.CommentModel

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.WithContext(ctx).Where("ticket_id = ?", ticketID)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}
	if err := query.Order("created_at ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.CommentToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map comment %d: %w", modelList[i].ID, err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}
