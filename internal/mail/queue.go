package mail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrQueueEmpty is returned by Dequeue when no job arrived within the wait
// window.
var ErrQueueEmpty = errors.New("mail queue empty")

// RedisQueue stores jobs as JSON on a redis list. LPUSH/BRPOP gives FIFO
// delivery to a single worker.
type RedisQueue struct {
	rdb *redis.Client
	key string
}

func NewRedisQueue(rdb *redis.Client, key string) *RedisQueue {
	if key == "" {
		key = "mail:outbound"
	}

	return &RedisQueue{
		rdb: rdb,
		key: key,
	}
}

func (q *RedisQueue) Enqueue(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal mail message -> %w", err)
	}

	if err := q.rdb.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("rdb.LPush -> %w", err)
	}

	return nil
}

// Dequeue blocks up to wait for the next job.
func (q *RedisQueue) Dequeue(ctx context.Context, wait time.Duration) (Message, error) {
	result, err := q.rdb.BRPop(ctx, wait, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Message{}, ErrQueueEmpty
		}

		return Message{}, fmt.Errorf("rdb.BRPop -> %w", err)
	}

	// BRPop returns [key, value].
	var msg Message
	if err := json.Unmarshal([]byte(result[1]), &msg); err != nil {
		return Message{}, fmt.Errorf("unmarshal mail message -> %w", err)
	}

	return msg, nil
}
