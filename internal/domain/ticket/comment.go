package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/biztime"
)

// Comment is an append-only note on a ticket. Internal comments are visible
// to staff only and never trigger client notifications.
type Comment struct {
	id         uint
	ticketID   uint
	authorID   uint
	authorName string
	authorRole string
	content    string
	internal   bool
	createdAt  time.Time
}

func NewComment(ticketID, authorID uint, authorName, authorRole, content string, internal bool) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is required")
	}
	return &Comment{
		ticketID:   ticketID,
		authorID:   authorID,
		authorName: authorName,
		authorRole: authorRole,
		content:    content,
		internal:   internal,
		createdAt:  biztime.NowUTC(),
	}, nil
}

// ReconstructComment rebuilds a comment from persistence without validation.
func ReconstructComment(id, ticketID, authorID uint, authorName, authorRole, content string, internal bool, createdAt time.Time) *Comment {
	return &Comment{
		id:         id,
		ticketID:   ticketID,
		authorID:   authorID,
		authorName: authorName,
		authorRole: authorRole,
		content:    content,
		internal:   internal,
		createdAt:  createdAt,
	}
}

func (c *Comment) ID() uint           { return c.id }
func (c *Comment) TicketID() uint     { return c.ticketID }
func (c *Comment) AuthorID() uint     { return c.authorID }
func (c *Comment) AuthorName() string { return c.authorName }
func (c *Comment) AuthorRole() string { return c.authorRole }
func (c *Comment) Content() string    { return c.content }
func (c *Comment) IsInternal() bool   { return c.internal }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) {
	c.id = id
}
