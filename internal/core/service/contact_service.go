package service

import (
	"context"
	"fmt"

	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
)

// Sender delivers a contact message. Implementations live in
// internal/infrastructure/mail; a discarding implementation is used when
// no SMTP server is configured.
type Sender interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}

type ContactService struct {
	sender Sender
}

func NewContactService(sender Sender) *ContactService {
	return &ContactService{sender: sender}
}

// Submit hands a validated contact message to the configured sender.
// Delivery failures surface as domain.ErrDelivery.
func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDelivery, err)
	}
	return nil
}
