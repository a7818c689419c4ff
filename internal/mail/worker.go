package mail

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

const dequeueWait = 2 * time.Second

// Worker drains the queue in a single goroutine. Failed deliveries are
// retried up to MaxAttempts with exponential backoff starting at
// BackoffDelay; exhausted jobs are dropped with an error log.
type Worker struct {
	queue        *RedisQueue
	sender       Sender
	maxAttempts  int
	backoffDelay time.Duration
	logger       *zap.Logger

	done chan struct{}
}

func NewWorker(queue *RedisQueue, sender Sender, maxAttempts int, backoffDelay time.Duration, logger *zap.Logger) *Worker {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if backoffDelay <= 0 {
		backoffDelay = time.Second
	}

	return &Worker{
		queue:        queue,
		sender:       sender,
		maxAttempts:  maxAttempts,
		backoffDelay: backoffDelay,
		logger:       logger,
		done:         make(chan struct{}),
	}
}

// Run blocks until ctx is canceled.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := w.queue.Dequeue(ctx, dequeueWait)
		if err != nil {
			if errors.Is(err, ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}

			w.logger.Error("mail worker dequeue failed", zap.Error(err))
			continue
		}

		w.deliver(ctx, msg)
	}
}

// Wait blocks until the worker loop has exited.
func (w *Worker) Wait() {
	<-w.done
}

func (w *Worker) deliver(ctx context.Context, msg Message) {
	for msg.Attempts < w.maxAttempts {
		msg.Attempts++

		err := w.sender.Send(ctx, msg)
		if err == nil {
			w.logger.Info("mail delivered",
				zap.String("id", msg.ID),
				zap.String("to", msg.To),
				zap.Int("attempts", msg.Attempts),
			)
			return
		}

		if ctx.Err() != nil {
			return
		}

		w.logger.Warn("mail delivery failed",
			zap.String("id", msg.ID),
			zap.String("to", msg.To),
			zap.Int("attempt", msg.Attempts),
			zap.Error(err),
		)

		if msg.Attempts >= w.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.Backoff(msg.Attempts)):
		}
	}

	w.logger.Error("mail dropped after max attempts",
		zap.String("id", msg.ID),
		zap.String("to", msg.To),
		zap.Int("attempts", msg.Attempts),
	)
}

// Backoff returns the delay before the next attempt: delay * 2^(attempt-1).
func (w *Worker) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	return w.backoffDelay << (attempt - 1)
}
