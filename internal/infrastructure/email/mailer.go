// Package email delivers the portal's notification messages over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/notification"
	sharedConfig "github.com/LucasFelipeJesus/portal-chamados/internal/shared/config"
)

// SMTPMailer implements notification.Mailer with gomail.
type SMTPMailer struct {
	config *sharedConfig.EmailConfig
	dialer *gomail.Dialer
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg *sharedConfig.EmailConfig) notification.Mailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return &SMTPMailer{
		config: cfg,
		dialer: dialer,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.config.FromAddress, m.config.FromName)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	// gomail dials synchronously and has no context support; run the send
	// in a goroutine so a cancelled context stops the wait.
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
