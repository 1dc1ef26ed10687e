package service

import (
	"context"
	"fmt"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"go.uber.org/zap"
)

type SheetWriter interface {
	EnsureHeaders(ctx context.Context) (bool, error)
	AppendOrder(ctx context.Context, order *domain.Order) error
}

// SheetSyncService mirrors stored orders into the orders spreadsheet.
type SheetSyncService struct {
	sheet  SheetWriter
	logger *zap.SugaredLogger
}

func NewSheetSyncService(sheet SheetWriter, logger *zap.SugaredLogger) *SheetSyncService {
	return &SheetSyncService{
		sheet:  sheet,
		logger: logger,
	}
}

func (s *SheetSyncService) InitializeSheet(ctx context.Context) (bool, error) {
	written, err := s.sheet.EnsureHeaders(ctx)
	if err != nil {
		s.logger.Errorw("failed to initialize sheet headers", "error", err)
		return false, fmt.Errorf("failed to initialize sheet: %w", err)
	}

	if written {
		s.logger.Info("sheet headers initialized")
	} else {
		s.logger.Info("sheet headers already exist")
	}

	return written, nil
}

func (s *SheetSyncService) ProcessOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error {
	if event.EventType != domain.EventOrderPlaced {
		s.logger.Warnw("ignoring unknown event", "event_type", event.EventType)
		return nil
	}
	if event.Order.ID == "" {
		return fmt.Errorf("order event without order id")
	}

	if err := s.sheet.AppendOrder(ctx, &event.Order); err != nil {
		return fmt.Errorf("failed to sync order %s: %w", event.Order.ID, err)
	}

	s.logger.Infow("order synced to sheet", "order_id", event.Order.ID)

	return nil
}
