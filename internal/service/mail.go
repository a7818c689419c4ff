package service

import (
	"context"
	"fmt"

	"github.com/doarbem/donation-api/internal/mail"
)

// MailService exposes ad-hoc email sending to admins. Messages go through
// the outbound queue like every other email.
type MailService struct {
	queue mail.Queue
}

func NewMailService(queue mail.Queue) *MailService {
	return &MailService{queue: queue}
}

func (s *MailService) Send(ctx context.Context, to, subject, body string) (string, error) {
	msg := mail.NewMessage(to, subject, body)
	if err := s.queue.Enqueue(ctx, msg); err != nil {
		return "", fmt.Errorf("s.queue.Enqueue -> %w", err)
	}

	return msg.ID, nil
}
