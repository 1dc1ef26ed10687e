package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/Beka01247/forno-storefront/internal/queue"
	"go.uber.org/zap"
)

type OrderSyncer interface {
	ProcessOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error
}

type OrderSyncWorker struct {
	syncer OrderSyncer
	broker queue.Broker
	logger *zap.SugaredLogger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewOrderSyncWorker(
	syncer OrderSyncer,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderSyncWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &OrderSyncWorker{
		syncer: syncer,
		broker: broker,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (w *OrderSyncWorker) Start() error {
	w.logger.Info("starting order sync worker")

	return w.broker.Subscribe(w.ctx, queue.QueueOrderSync, w.handleMessage)
}

func (w *OrderSyncWorker) Stop() {
	w.logger.Info("stopping order sync worker")
	w.cancel()
}

func (w *OrderSyncWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderPlacedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing order event", "order_id", event.Order.ID, "event_type", event.EventType)

	if err := w.syncer.ProcessOrderPlaced(ctx, event); err != nil {
		w.logger.Errorw("failed to sync order", "order_id", event.Order.ID, "error", err)
		return err
	}

	return nil
}
