package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	headerRetryCount    = "x-retry-count"
	headerOriginalQueue = "x-original-queue"
	headerError         = "x-error"
)

type RabbitMQBroker struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	url        string
	maxRetries int
	retryDelay time.Duration
	mu         sync.RWMutex
}

type Config struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
	// Queues are declared together with their dead letter queues.
	// Defaults to the order sync queue.
	Queues []string
}

func NewRabbitMQBroker(cfg Config) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.Qos(cfg.PrefetchCount, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	broker := &RabbitMQBroker{
		conn:       conn,
		channel:    channel,
		url:        cfg.URL,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}

	queues := cfg.Queues
	if len(queues) == 0 {
		queues = []string{QueueOrderSync}
	}

	for _, queueName := range queues {
		for _, name := range []string{queueName, DLQ(queueName)} {
			if err := broker.declareQueue(name); err != nil {
				broker.Close()
				return nil, err
			}
		}
	}

	return broker, nil
}

func (b *RabbitMQBroker) declareQueue(queueName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return nil
}

func (b *RabbitMQBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	return b.publish(ctx, queueName, amqp.Publishing{
		ContentType: "application/json",
		Body:        message,
	})
}

func (b *RabbitMQBroker) publish(ctx context.Context, queueName string, msg amqp.Publishing) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	msg.DeliveryMode = amqp.Persistent
	msg.Timestamp = time.Now()

	err := b.channel.PublishWithContext(
		ctx,
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (b *RabbitMQBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	b.mu.RLock()
	msgs, err := b.channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	b.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				b.handleMessage(ctx, msg, handler, queueName)
			}
		}
	}()

	return nil
}

// handleMessage acks every delivery. A failed message is republished with an
// incremented retry header until maxRetries, then parked on the DLQ.
func (b *RabbitMQBroker) handleMessage(ctx context.Context, msg amqp.Delivery, handler MessageHandler, queueName string) {
	defer msg.Ack(false)

	err := handler(ctx, msg.Body)
	if err == nil {
		return
	}

	retries := retryCount(msg.Headers)
	if retries < b.maxRetries {
		select {
		case <-ctx.Done():
			return
		case <-time.After(RetryDelay(b.retryDelay, retries)):
		}

		_ = b.publish(ctx, queueName, amqp.Publishing{
			ContentType: msg.ContentType,
			Body:        msg.Body,
			Headers:     amqp.Table{headerRetryCount: int32(retries + 1)},
		})
		return
	}

	_ = b.publish(ctx, DLQ(queueName), amqp.Publishing{
		ContentType: msg.ContentType,
		Body:        msg.Body,
		Headers: amqp.Table{
			headerOriginalQueue: queueName,
			headerRetryCount:    int32(retries),
			headerError:         err.Error(),
		},
	})
}

func retryCount(headers amqp.Table) int {
	switch count := headers[headerRetryCount].(type) {
	case int32:
		return int(count)
	case int64:
		return int(count)
	case int:
		return count
	}
	return 0
}

func (b *RabbitMQBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
