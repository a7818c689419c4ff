package mail

import (
	"context"

	"github.com/google/uuid"
)

// Message is one outbound email job.
type Message struct {
	ID       string `json:"id"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Attempts int    `json:"attempts"`
}

func NewMessage(to, subject, body string) Message {
	return Message{
		ID:      uuid.NewString(),
		To:      to,
		Subject: subject,
		Body:    body,
	}
}

// Queue is the outbound mail port used by services. Delivery, retries and
// backoff are the worker's concern.
type Queue interface {
	Enqueue(ctx context.Context, msg Message) error
}

// Sender performs the actual delivery.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
