// Package smtp sends the expiring-sales digest through a store-and-forward
// mail relay.
package smtp

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/ZachChoo/grocery-inventory/pkg/config"
)

// DefaultSendTimeout bounds one SMTP transaction so a hung relay cannot
// block the scheduler indefinitely.
const DefaultSendTimeout = 30 * time.Second

// Mailer is the SMTP adapter for the notification dispatcher port.
// gomail dials, authenticates (STARTTLS on 587), sends and closes the
// connection on every path, success or failure.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
}

// NewMailer builds the mail adapter from SMTP configuration.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.FromEmail,
		timeout: DefaultSendTimeout,
	}
}

// Send transmits one multipart message (plain body plus optional HTML
// alternative) to all recipients. The error return carries the failure
// reason; the caller decides the best-effort policy.
func (m *Mailer) Send(ctx context.Context, to []string, subject, plain, html string) error {
	if len(to) == 0 {
		return fmt.Errorf("smtp: no recipients")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plain)
	if html != "" {
		msg.AddAlternative("text/html", html)
	}

	// DialAndSend blocks without a deadline, so run it aside and bound the
	// wait. On timeout the abandoned transaction dies with its TCP connection.
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send: %w", ctx.Err())
	case <-time.After(m.timeout):
		return fmt.Errorf("smtp send: timed out after %s", m.timeout)
	}
}
