package mail

import (
	"context"
	"log"

	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
)

// DiscardSender accepts contact messages without delivering them. It is
// used when no SMTP server is configured.
type DiscardSender struct{}

func NewDiscardSender() *DiscardSender {
	return &DiscardSender{}
}

func (s *DiscardSender) Send(ctx context.Context, msg domain.ContactMessage) error {
	log.Printf("mail delivery disabled, discarding contact message from %s <%s>", msg.Name, msg.Email)
	return nil
}
