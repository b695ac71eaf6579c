package mail

import (
	"context"
	"fmt"

	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
	gomail "github.com/wneessen/go-mail"
)

// SMTPSender delivers contact messages over SMTP with STARTTLS.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

func NewSMTPSender(host string, port int, username, password, from, to string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg domain.ContactMessage) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(s.to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	m.Subject("Our Blog message")
	m.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Dear Our Blog,\n\nyou have received a mail from %s %s!\n\n%s",
		msg.Name, msg.Email, msg.Message,
	))

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
