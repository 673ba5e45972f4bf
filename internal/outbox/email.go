package outbox

import (
	"context"
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// EmailDispatcher delivers email events over SMTP. With DryRun set (the
// default configuration) nothing is dialed and the event is only logged,
// so the demo dataset never reaches a real mailbox. Non-email kinds fall
// through to the log.
type EmailDispatcher struct {
	dialer *gomail.Dialer
	from   string
	dryRun bool
}

func NewEmailDispatcher(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string, dryRun bool) *EmailDispatcher {
	return &EmailDispatcher{
		dialer: gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:   fromEmail,
		dryRun: dryRun,
	}
}

func (d *EmailDispatcher) Dispatch(_ context.Context, e Event) error {
	if e.Kind != KindEmail || d.dryRun {
		log.Printf("outbox: %s to %q: %s (dry run)", e.Kind, e.To, e.Subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", d.from)
	m.SetHeader("To", e.To)
	m.SetHeader("Subject", e.Subject)
	m.SetBody("text/html", e.Body)

	if err := d.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
