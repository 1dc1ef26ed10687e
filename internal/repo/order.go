package repo

import (
	"context"

	"github.com/Beka01247/forno-storefront/internal/domain"
)

// OrderRepository is the durable store behind order acceptance. GetByID
// returns domain.ErrOrderNotFound for unknown ids.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
