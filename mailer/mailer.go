// Package mailer delivers password-reset links. Everything past the
// one-method interface is an external collaborator.
package mailer

import (
	"fmt"

	"cafe-directory-api/config"

	gomail "github.com/wneessen/go-mail"
)

// Mailer sends a password-reset link to a recipient.
type Mailer interface {
	SendPasswordReset(recipient, link string) error
}

// Default is the mailer handlers use; tests swap in a recording fake.
var Default Mailer = SMTPMailer{}

// SMTPMailer delivers mail through the configured SMTP relay.
type SMTPMailer struct{}

func (SMTPMailer) SendPasswordReset(recipient, link string) error {
	msg := gomail.NewMsg()
	if err := msg.From(config.SMTPUsername); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject("Password reset request")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"To reset your password, please follow the link below.\n\n%s\n\nIf you didn't request a password reset, please ignore this message.\n", link))

	opts := []gomail.Option{
		gomail.WithPort(config.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(config.SMTPUsername),
		gomail.WithPassword(config.SMTPPassword),
	}
	if config.SMTPUseTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}

	client, err := gomail.NewClient(config.SMTPHost, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSend(msg)
}
