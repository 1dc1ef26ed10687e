package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/Beka01247/forno-storefront/internal/queue"
)

type memoryOrderRepo struct {
	mu     sync.Mutex
	orders map[string]domain.Order
	err    error
}

func newMemoryOrderRepo() *memoryOrderRepo {
	return &memoryOrderRepo{orders: make(map[string]domain.Order)}
}

func (r *memoryOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	if _, ok := r.orders[order.ID]; ok {
		return domain.ErrDuplicateOrder
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *memoryOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &order, nil
}

// collidingRepo reports the first collisions creates as duplicates.
type collidingRepo struct {
	*memoryOrderRepo
	collisions int
	tried      []string
}

func (r *collidingRepo) Create(ctx context.Context, order *domain.Order) error {
	r.tried = append(r.tried, order.ID)
	if len(r.tried) <= r.collisions {
		return domain.ErrDuplicateOrder
	}
	return r.memoryOrderRepo.Create(ctx, order)
}

type recordingBroker struct {
	mu        sync.Mutex
	published map[string][][]byte
	err       error
}

func newRecordingBroker() *recordingBroker {
	return &recordingBroker{published: make(map[string][][]byte)}
}

func (b *recordingBroker) Publish(_ context.Context, queueName string, message []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err != nil {
		return b.err
	}
	b.published[queueName] = append(b.published[queueName], message)
	return nil
}

func (b *recordingBroker) Subscribe(context.Context, string, queue.MessageHandler) error {
	return errors.New("not supported")
}

func (b *recordingBroker) Close() error {
	return nil
}

func (b *recordingBroker) events(queueName string) []domain.OrderPlacedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []domain.OrderPlacedEvent
	for _, msg := range b.published[queueName] {
		var event domain.OrderPlacedEvent
		if err := json.Unmarshal(msg, &event); err == nil {
			out = append(out, event)
		}
	}
	return out
}
