package ticket

import (
	"context"
	"time"
)

// Filter narrows ticket listings. All set fields combine conjunctively.
// DateFrom and DateTo are inclusive day bounds on the creation time.
type Filter struct {
	Status      *Status
	CompanyIDs  []uint
	EquipmentID *uint
	CreatedBy   *uint
	DateFrom    *time.Time
	DateTo      *time.Time
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
	CountByStatus(ctx context.Context, filter Filter) (map[Status]int64, error)
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*Comment, error)
}
