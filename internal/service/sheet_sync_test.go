package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSheet struct {
	hasHeaders bool
	rows       []domain.Order
	err        error
}

func (s *fakeSheet) EnsureHeaders(context.Context) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if s.hasHeaders {
		return false, nil
	}
	s.hasHeaders = true
	return true, nil
}

func (s *fakeSheet) AppendOrder(_ context.Context, order *domain.Order) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, *order)
	return nil
}

func TestSheetSync_InitializeSheet(t *testing.T) {
	sheet := &fakeSheet{}
	svc := NewSheetSyncService(sheet, zap.NewNop().Sugar())

	written, err := svc.InitializeSheet(context.Background())
	require.NoError(t, err)
	assert.True(t, written)

	written, err = svc.InitializeSheet(context.Background())
	require.NoError(t, err)
	assert.False(t, written)

	sheet.err = errors.New("quota exceeded")
	_, err = svc.InitializeSheet(context.Background())
	assert.Error(t, err)
}

func TestSheetSync_ProcessOrderPlaced(t *testing.T) {
	sheet := &fakeSheet{}
	svc := NewSheetSyncService(sheet, zap.NewNop().Sugar())
	ctx := context.Background()

	order := sampleOrder()
	order.ID = "S44WE8-ABC123"

	require.NoError(t, svc.ProcessOrderPlaced(ctx, domain.OrderPlacedEvent{EventType: domain.EventOrderPlaced, Order: order}))
	require.Len(t, sheet.rows, 1)
	assert.Equal(t, order.ID, sheet.rows[0].ID)

	require.NoError(t, svc.ProcessOrderPlaced(ctx, domain.OrderPlacedEvent{EventType: "order.cancelled", Order: order}))
	assert.Len(t, sheet.rows, 1)

	assert.Error(t, svc.ProcessOrderPlaced(ctx, domain.OrderPlacedEvent{EventType: domain.EventOrderPlaced}))

	sheet.err = errors.New("quota exceeded")
	assert.Error(t, svc.ProcessOrderPlaced(ctx, domain.OrderPlacedEvent{EventType: domain.EventOrderPlaced, Order: order}))
}
