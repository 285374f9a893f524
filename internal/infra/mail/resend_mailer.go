// Package mail provides the Resend-backed implementation of the Mailer
// domain service.
package mail

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v3"

	"accounts/config"
	"accounts/internal/domain/service"
)

// resendMailer sends transactional mail through the Resend API.
type resendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer constructs the mailer from config. The mailer is an
// optional collaborator: when no API key is configured it returns nil and
// the use case skips sending.
func NewResendMailer(cfg *config.Config) service.Mailer {
	if cfg.Mailer == nil || cfg.Mailer.APIKey == "" {
		return nil
	}

	return &resendMailer{
		client: resend.NewClient(cfg.Mailer.APIKey),
		from:   cfg.Mailer.From,
	}
}

// SendWelcome sends the welcome email for a freshly created account.
func (m *resendMailer) SendWelcome(to string, name string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: "Welcome",
		Html:    fmt.Sprintf("<p>Hi %s, your account has been created.</p>", name),
	}

	if _, err := m.client.Emails.Send(params); err != nil {
		return errors.Wrap(err, "failed to send welcome email")
	}

	return nil
}
