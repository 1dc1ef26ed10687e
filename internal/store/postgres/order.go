package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if order.ID == "" {
		return errors.New("order id is required")
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	query := `INSERT INTO orders (id, customer_name, phone, address, delivery_type, payment_method,
	              notes, items, line_count, subtotal, delivery_fee, total, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		order.ID,
		order.CustomerName,
		order.Phone,
		order.Address,
		string(order.DeliveryType),
		string(order.PaymentMethod),
		order.Notes,
		order.Items,
		order.LineCount,
		int64(order.Subtotal),
		int64(order.DeliveryFee),
		int64(order.Total),
		string(order.Status),
		order.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateOrder
		}
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `SELECT id, customer_name, phone, address, delivery_type, payment_method, notes,
	                 items, line_count, subtotal, delivery_fee, total, status, created_at
	          FROM orders WHERE id = $1`

	var (
		order                               domain.Order
		deliveryType, paymentMethod, status string
		subtotal, deliveryFee, total        int64
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerName,
		&order.Phone,
		&order.Address,
		&deliveryType,
		&paymentMethod,
		&order.Notes,
		&order.Items,
		&order.LineCount,
		&subtotal,
		&deliveryFee,
		&total,
		&status,
		&order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query order by id: %w", err)
	}

	order.DeliveryType = domain.DeliveryType(deliveryType)
	order.PaymentMethod = domain.PaymentMethod(paymentMethod)
	order.Status = domain.OrderStatus(status)
	order.Subtotal = domain.Money(subtotal)
	order.DeliveryFee = domain.Money(deliveryFee)
	order.Total = domain.Money(total)

	return &order, nil
}
