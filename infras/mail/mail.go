package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"fmt"
	"riviera/config"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type mailerImpl struct {
	client   *mail.Client
	from     string
	fromName string
}

func New(config *config.Config) Mailer {
	client, err := mail.NewClient(
		config.Mail.Host,
		mail.WithPort(config.Mail.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(config.Mail.Username),
		mail.WithPassword(config.Mail.Password),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize SMTP client")
	}

	return &mailerImpl{
		client:   client,
		from:     config.Mail.From,
		fromName: config.Mail.FromName,
	}
}

func (m *mailerImpl) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.client == nil {
		return fmt.Errorf("smtp client is not configured")
	}

	msg := mail.NewMsg()

	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return fmt.Errorf("failed to set mail sender: %w", err)
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set mail recipient: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
