// Package notification sends ticket lifecycle emails. Delivery is strictly
// best effort: a failed send is logged and reported back as a warning, it
// never fails the operation that triggered it.
package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/setting"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// Mailer delivers a single email message.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

type Dispatcher struct {
	mailer      Mailer
	userRepo    user.Repository
	settingRepo setting.Repository
	sanitizer   *bluemonday.Policy
	logger      logger.Interface
}

func NewDispatcher(mailer Mailer, userRepo user.Repository, settingRepo setting.Repository, log logger.Interface) *Dispatcher {
	return &Dispatcher{
		mailer:      mailer,
		userRepo:    userRepo,
		settingRepo: settingRepo,
		sanitizer:   bluemonday.UGCPolicy(),
		logger:      log,
	}
}

// NotifyTicketCreated sends three independent messages: a confirmation to
// the client who opened the ticket, a copy to the on-site contact declared
// on the form, and an alert batched to every admin. Each send fails on its
// own; the return value is false when at least one message could not be
// delivered.
func (d *Dispatcher) NotifyTicketCreated(ctx context.Context, t *ticket.Ticket) bool {
	portalName := d.portalName(ctx)
	fd := t.FormData()

	ok := true
	subject := fmt.Sprintf("[%s] Chamado #%d aberto: %s", portalName, t.ID(), t.Subject())

	creator, err := d.userRepo.GetByID(ctx, t.CreatedBy())
	if err != nil || creator == nil {
		d.logger.Warnw("failed to load ticket creator", "ticket_id", t.ID(), "user_id", t.CreatedBy(), "error", err)
		ok = false
	} else {
		body := d.ticketBody(portalName, t,
			fmt.Sprintf("Olá %s, recebemos seu chamado e ele já está na fila de atendimento.", html.EscapeString(creator.FullName())))
		if err := d.mailer.Send(ctx, []string{creator.Email()}, subject, body); err != nil {
			d.logger.Warnw("failed to send client confirmation", "ticket_id", t.ID(), "error", err)
			ok = false
		}
	}

	contactBody := d.ticketBody(portalName, t,
		fmt.Sprintf("Olá %s, você foi indicado como contato para o atendimento deste chamado.", html.EscapeString(fd.RequesterName)))
	if err := d.mailer.Send(ctx, []string{fd.RequesterEmail}, subject, contactBody); err != nil {
		d.logger.Warnw("failed to send contact copy", "ticket_id", t.ID(), "error", err)
		ok = false
	}

	adminBody := d.ticketBody(portalName, t, "Um novo chamado foi aberto e aguarda atendimento.")
	admins, err := d.roleEmails(ctx, user.RoleAdmin)
	if err != nil {
		d.logger.Warnw("failed to load admin recipients", "ticket_id", t.ID(), "error", err)
		return false
	}
	if len(admins) > 0 {
		if err := d.mailer.Send(ctx, admins, subject, adminBody); err != nil {
			d.logger.Warnw("failed to send admin alert", "ticket_id", t.ID(), "error", err)
			ok = false
		}
	}

	return ok
}

// NotifyCommentAdded notifies the counterpart of the comment author: staff
// comments go to the ticket creator, client comments go to the admins. The
// author never receives their own comment, and internal comments are never
// sent to the client side.
func (d *Dispatcher) NotifyCommentAdded(ctx context.Context, t *ticket.Ticket, c *ticket.Comment) bool {
	portalName := d.portalName(ctx)
	authorRole := user.Role(c.AuthorRole())

	var recipients []string
	if authorRole.IsStaff() {
		if c.IsInternal() {
			// Internal notes stay inside the team.
			return true
		}
		creator, err := d.userRepo.GetByID(ctx, t.CreatedBy())
		if err != nil {
			d.logger.Warnw("failed to load ticket creator", "ticket_id", t.ID(), "error", err)
			return false
		}
		if creator.ID() == c.AuthorID() {
			return true
		}
		recipients = []string{creator.Email()}
	} else {
		emails, err := d.roleEmails(ctx, user.RoleAdmin)
		if err != nil {
			d.logger.Warnw("failed to load admin recipients", "ticket_id", t.ID(), "error", err)
			return false
		}
		recipients = emails
	}
	if len(recipients) == 0 {
		return true
	}

	subject := fmt.Sprintf("[%s] Nova resposta no chamado #%d", portalName, t.ID())
	body := fmt.Sprintf(
		"<h2>%s</h2><p><strong>%s</strong> escreveu:</p><blockquote>%s</blockquote><p>Chamado: %s</p>",
		html.EscapeString(subject),
		html.EscapeString(c.AuthorName()),
		d.sanitizer.Sanitize(c.Content()),
		html.EscapeString(t.Subject()),
	)

	if err := d.mailer.Send(ctx, recipients, subject, body); err != nil {
		d.logger.Warnw("failed to send comment notification", "ticket_id", t.ID(), "comment_id", c.ID(), "error", err)
		return false
	}
	return true
}

func (d *Dispatcher) portalName(ctx context.Context) string {
	s, err := d.settingRepo.Get(ctx, setting.KeyPortalName)
	if err != nil || s == nil || strings.TrimSpace(s.Value()) == "" {
		return setting.DefaultPortalName
	}
	return s.Value()
}

func (d *Dispatcher) roleEmails(ctx context.Context, role user.Role) ([]string, error) {
	profiles, err := d.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p.Email() != "" {
			emails = append(emails, p.Email())
		}
	}
	return emails, nil
}

func (d *Dispatcher) ticketBody(portalName string, t *ticket.Ticket, lead string) string {
	fd := t.FormData()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h2>%s</h2>", html.EscapeString(portalName)))
	b.WriteString(fmt.Sprintf("<p>%s</p>", lead))
	b.WriteString("<ul>")
	b.WriteString(fmt.Sprintf("<li><strong>Empresa:</strong> %s (%s)</li>", html.EscapeString(fd.CompanyName), html.EscapeString(fd.CNPJ)))
	b.WriteString(fmt.Sprintf("<li><strong>Equipamento:</strong> %s</li>", html.EscapeString(fd.EquipmentModel)))
	if fd.SerialNumber != "" {
		b.WriteString(fmt.Sprintf("<li><strong>Número de série:</strong> %s</li>", html.EscapeString(fd.SerialNumber)))
	}
	b.WriteString(fmt.Sprintf("<li><strong>Solicitante:</strong> %s (%s)</li>", html.EscapeString(fd.RequesterName), html.EscapeString(fd.RequesterPhone)))
	b.WriteString("</ul>")
	b.WriteString(fmt.Sprintf("<p><strong>Descrição:</strong></p><p>%s</p>", html.EscapeString(fd.Description)))
	return b.String()
}
