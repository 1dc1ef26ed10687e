package queue

import (
	"context"
	"time"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueOrderSync    = "order-sync"
	QueueOrderSyncDLQ = QueueOrderSync + dlqSuffix

	dlqSuffix = "-dlq"
)

// DLQ returns the dead letter queue paired with queueName.
func DLQ(queueName string) string {
	return queueName + dlqSuffix
}

// RetryDelay is the backoff before the given retry: 1s, 2s, 4s and so on.
func RetryDelay(base time.Duration, retryCount int) time.Duration {
	if base <= 0 {
		base = time.Second
	}
	return base << retryCount
}
