package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/Beka01247/forno-storefront/internal/queue"
	"github.com/Beka01247/forno-storefront/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	orderIDSuffixLen = 12
	maxIDAttempts    = 3
)

// OrderService accepts checked-out orders. It persists each order and then
// announces it on the order sync queue when a broker is configured.
type OrderService struct {
	orderRepo repo.OrderRepository
	broker    queue.Broker
	logger    *zap.SugaredLogger
	now       func() time.Time
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		broker:    broker,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *OrderService) Accept(ctx context.Context, order domain.Order) (domain.OrderConfirmation, error) {
	if strings.TrimSpace(order.Items) == "" {
		return domain.OrderConfirmation{}, domain.NewValidationError("items", domain.ErrEmptyCart.Error())
	}
	if order.Total < 0 {
		return domain.OrderConfirmation{}, domain.NewValidationError("total", "must not be negative")
	}

	now := s.now()
	generated := order.ID == ""
	if generated {
		order.ID = NewOrderID(now)
	}
	order.Status = domain.OrderStatusPending
	order.CreatedAt = now

	for attempt := 1; ; attempt++ {
		err := s.orderRepo.Create(ctx, &order)
		if err == nil {
			break
		}
		// a generated id that collides is replaced, a caller supplied one is not
		if generated && errors.Is(err, domain.ErrDuplicateOrder) && attempt < maxIDAttempts {
			s.logger.Warnw("order id collision, retrying", "order_id", order.ID, "attempt", attempt)
			order.ID = NewOrderID(now)
			continue
		}
		s.logger.Errorw("failed to store order", "order_id", order.ID, "error", err)
		return domain.OrderConfirmation{}, fmt.Errorf("failed to store order: %w", err)
	}

	s.logger.Infow("order accepted", "order_id", order.ID, "total", order.Total, "delivery_type", order.DeliveryType)

	// the order is already stored, publishing is best effort
	s.publishPlaced(ctx, order)

	return domain.OrderConfirmation{Success: true, OrderID: order.ID}, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *OrderService) publishPlaced(ctx context.Context, order domain.Order) {
	if s.broker == nil {
		return
	}

	event := domain.OrderPlacedEvent{
		EventType: domain.EventOrderPlaced,
		Order:     order,
		Timestamp: s.now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal order event", "order_id", order.ID, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderSync, eventBytes); err != nil {
		s.logger.Errorw("failed to publish order event", "order_id", order.ID, "error", err)
	}
}

// NewOrderID is the base36 unix time followed by 48 random bits, for
// example "T3K9ZQ-4F2A1C9B07DE".
func NewOrderID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:orderIDSuffixLen]
	return strings.ToUpper(strconv.FormatInt(now.Unix(), 36) + "-" + suffix)
}
