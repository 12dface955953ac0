package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/dtroode/authgate/internal/model"
)

var _ model.Notifier = (*SMTP)(nil)

// sender is satisfied by *mail.Client.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPConfig holds the outgoing mail server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTP sends codes by email.
type SMTP struct {
	client sender
	from   string
}

// NewSMTP creates an SMTP notifier. STARTTLS is mandatory and PLAIN auth
// is used when a username is set.
func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &SMTP{client: client, from: cfg.From}, nil
}

func (s *SMTP) SendCode(ctx context.Context, email, code string) error {
	msg, err := LoginCodeMessage(code)
	if err != nil {
		return err
	}
	return s.send(ctx, email, msg)
}

func (s *SMTP) SendResetCode(ctx context.Context, email, code string) error {
	msg, err := ResetCodeMessage(code)
	if err != nil {
		return err
	}
	return s.send(ctx, email, msg)
}

func (s *SMTP) send(ctx context.Context, to string, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
