package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
)

type stubSender struct {
	sent []domain.ContactMessage
	err  error
}

func (s *stubSender) Send(ctx context.Context, msg domain.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func TestContactSubmit(t *testing.T) {
	sender := &stubSender{}
	contact := NewContactService(sender)

	msg := domain.ContactMessage{Name: "Alice", Email: "a@x.com", Message: "Hi there"}
	if err := contact.Submit(context.Background(), msg); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(sender.sent) != 1 || sender.sent[0] != msg {
		t.Errorf("sender received %+v, want %+v", sender.sent, msg)
	}
}

func TestContactSubmitDeliveryFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("smtp is down")}
	contact := NewContactService(sender)

	err := contact.Submit(context.Background(), domain.ContactMessage{Name: "Alice"})
	if !errors.Is(err, domain.ErrDelivery) {
		t.Errorf("err = %v, want ErrDelivery", err)
	}
}
