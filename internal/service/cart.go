package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Beka01247/forno-storefront/internal/cart"
	"github.com/Beka01247/forno-storefront/internal/checkout"
	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Catalog interface {
	Lookup(id domain.ProductID) (domain.Product, error)
}

// CartService keeps one cart per session id. Every call loads the session,
// applies a single cart operation and saves it back.
type CartService struct {
	store    cart.Store
	catalog  Catalog
	pricer   cart.Pricer
	checkout *checkout.Adapter
	logger   *zap.SugaredLogger
}

func NewCartService(
	store cart.Store,
	catalog Catalog,
	pricer cart.Pricer,
	checkout *checkout.Adapter,
	logger *zap.SugaredLogger,
) *CartService {
	return &CartService{
		store:    store,
		catalog:  catalog,
		pricer:   pricer,
		checkout: checkout,
		logger:   logger,
	}
}

func (s *CartService) Create(ctx context.Context) (string, *cart.Cart, error) {
	sessionID := uuid.NewString()
	if err := s.store.Save(ctx, sessionID, nil); err != nil {
		return "", nil, fmt.Errorf("failed to create cart: %w", err)
	}

	s.logger.Infow("cart created", "cart_id", sessionID)

	return sessionID, cart.New(s.pricer), nil
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return cart.Restore(s.pricer, items)
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, productID domain.ProductID, quantity int, opts domain.Options) (*cart.Cart, domain.LineItem, error) {
	product, err := s.catalog.Lookup(productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.LineItem{}, domain.NewValidationErrorf("product_id", "unknown product %d", productID)
		}
		return nil, domain.LineItem{}, err
	}

	var item domain.LineItem
	c, err := s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		item, err = c.Add(product, quantity, opts)
		return err
	})
	if err != nil {
		return nil, domain.LineItem{}, err
	}

	return c, item, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (*cart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		return c.SetQuantity(index, quantity)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, index int) (*cart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		return c.Remove(index)
	})
}

func (s *CartService) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.store.Load(ctx, sessionID); err != nil {
		return err
	}
	return s.store.Delete(ctx, sessionID)
}

// Checkout builds and submits the order for the session. The cart is cleared
// only after the order was accepted; on any error it is left as it was.
func (s *CartService) Checkout(ctx context.Context, sessionID string, form checkout.Form) (domain.Order, domain.OrderConfirmation, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return domain.Order{}, domain.OrderConfirmation{}, err
	}

	order, err := s.checkout.BuildOrder(form, c)
	if err != nil {
		return domain.Order{}, domain.OrderConfirmation{}, err
	}

	confirmation, err := s.checkout.Submit(ctx, order)
	if err != nil {
		return order, domain.OrderConfirmation{}, err
	}
	order.ID = confirmation.OrderID

	c.Clear()
	if err := s.store.Save(ctx, sessionID, c.Items()); err != nil {
		s.logger.Errorw("failed to clear cart after checkout", "cart_id", sessionID, "order_id", order.ID, "error", err)
	}

	return order, confirmation, nil
}

func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(c *cart.Cart) error) (*cart.Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, sessionID, c.Items()); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return c, nil
}
