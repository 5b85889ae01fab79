package ticket

import (
	"fmt"
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/biztime"
)

// Ticket is a support request opened against a company's equipment. The
// company and equipment fields are denormalized copies taken at creation
// time; FormData carries the complete wizard payload.
type Ticket struct {
	id          uint
	companyID   uint
	equipmentID *uint
	createdBy   uint
	status      Status
	formData    FormData
	closedAt    *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates an open ticket from a validated wizard payload.
// equipmentID is nil when the wizard registered a model that is not yet a
// catalogued equipment record.
func NewTicket(companyID uint, equipmentID *uint, createdBy uint, formData FormData) (*Ticket, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator user ID is required")
	}
	if err := formData.Validate(); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	return &Ticket{
		companyID:   companyID,
		equipmentID: equipmentID,
		createdBy:   createdBy,
		status:      StatusOpen,
		formData:    formData,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence without validation.
func ReconstructTicket(
	id uint,
	companyID uint,
	equipmentID *uint,
	createdBy uint,
	status Status,
	formData FormData,
	closedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:          id,
		companyID:   companyID,
		equipmentID: equipmentID,
		createdBy:   createdBy,
		status:      status,
		formData:    formData,
		closedAt:    closedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) CompanyID() uint      { return t.companyID }
func (t *Ticket) EquipmentID() *uint   { return t.equipmentID }
func (t *Ticket) CreatedBy() uint      { return t.createdBy }
func (t *Ticket) Status() Status       { return t.status }
func (t *Ticket) FormData() FormData   { return t.formData }
func (t *Ticket) ClosedAt() *time.Time { return t.closedAt }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

// SetID assigns the persistence-generated identifier.
func (t *Ticket) SetID(id uint) {
	t.id = id
}

// ChangeStatus moves the ticket to a new status, keeping the closure
// timestamp consistent: closedAt is set exactly when entering fechado and
// cleared on any other status.
func (t *Ticket) ChangeStatus(target Status) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid ticket status: %s", target)
	}
	if t.status == target {
		return nil
	}
	if !t.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition ticket from %s to %s", t.status, target)
	}
	t.status = target
	if target == StatusClosed {
		now := biztime.NowUTC()
		t.closedAt = &now
	} else {
		t.closedAt = nil
	}
	t.updatedAt = biztime.NowUTC()
	return nil
}

// Close marks the ticket fechado and stamps the closure time.
func (t *Ticket) Close() error {
	return t.ChangeStatus(StatusClosed)
}

// Cancel marks the ticket cancelado.
func (t *Ticket) Cancel() error {
	return t.ChangeStatus(StatusCancelled)
}

// IsOwnedBy reports whether the given user opened this ticket.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.createdBy == userID
}

// Subject returns the short line used in listings and notifications:
// equipment model plus company name.
func (t *Ticket) Subject() string {
	return fmt.Sprintf("%s - %s", t.formData.EquipmentModel, t.formData.CompanyName)
}
