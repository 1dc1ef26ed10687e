package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"google.golang.org/api/sheets/v4"
)

const (
	ordersRange = "Pedidos!A:K"
	headerRange = "Pedidos!A1:K1"

	dateLayout = "2/1/2006"
	timeLayout = "15:04:05"
)

var orderHeaders = []interface{}{
	"ID de Pedido",
	"Fecha",
	"Hora",
	"Nombre Cliente",
	"Teléfono",
	"Dirección",
	"Tipo de Entrega",
	"Forma de Pago",
	"Detalles del Pedido",
	"Total",
	"Estado del Pedido",
}

var deliveryLabels = map[domain.DeliveryType]string{
	domain.DeliveryTypeDelivery: "Domicilio",
	domain.DeliveryTypePickup:   "Recoger",
	domain.DeliveryTypeDineIn:   "Comer Aquí",
}

// DeliveryLabel is the sheet wording for a delivery type.
func DeliveryLabel(dt domain.DeliveryType) string {
	if label, ok := deliveryLabels[dt]; ok {
		return label
	}
	return string(dt)
}

func deliveryTypeFromLabel(label string) domain.DeliveryType {
	for dt, l := range deliveryLabels {
		if l == label {
			return dt
		}
	}
	return domain.DeliveryType(label)
}

// EnsureHeaders writes the header row when the orders sheet has none. It
// reports whether the row was written.
func (c *Client) EnsureHeaders(ctx context.Context) (bool, error) {
	values, err := c.get(ctx, headerRange)
	if err != nil {
		return false, err
	}
	if len(values) > 0 {
		return false, nil
	}

	err = c.write(func() error {
		_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, headerRange, &sheets.ValueRange{
			Values: [][]interface{}{orderHeaders},
		}).ValueInputOption(valueInputRaw).Context(ctx).Do()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to write sheet headers: %w", err)
	}

	return true, nil
}

func (c *Client) AppendOrder(ctx context.Context, order *domain.Order) error {
	row := OrderRow(order, c.location)

	err := c.write(func() error {
		_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, ordersRange, &sheets.ValueRange{
			Values: [][]interface{}{row},
		}).ValueInputOption(valueInputRaw).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to append order %s: %w", order.ID, err)
	}

	return nil
}

// FindOrder scans the orders sheet for the row with the given id.
func (c *Client) FindOrder(ctx context.Context, id string) (*domain.Order, error) {
	values, err := c.get(ctx, ordersRange)
	if err != nil {
		return nil, err
	}

	// skip header
	for i := 1; i < len(values); i++ {
		row := values[i]
		if len(row) == 0 || cell(row, 0) != id {
			continue
		}
		return orderFromRow(row, c.location)
	}

	return nil, domain.ErrOrderNotFound
}

// OrderRow renders an order as one row of the orders sheet.
func OrderRow(order *domain.Order, loc *time.Location) []interface{} {
	created := order.CreatedAt.In(loc)
	return []interface{}{
		order.ID,
		created.Format(dateLayout),
		created.Format(timeLayout),
		order.CustomerName,
		order.Phone,
		order.Address,
		DeliveryLabel(order.DeliveryType),
		string(order.PaymentMethod),
		order.Items,
		int64(order.Total),
		string(order.Status),
	}
}

// orderFromRow reads back what the sheet keeps. Subtotal and fee are not
// stored, so only the total is restored.
func orderFromRow(row []interface{}, loc *time.Location) (*domain.Order, error) {
	total, err := strconv.ParseInt(strings.TrimSpace(cell(row, 9)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid total in order row %s: %w", cell(row, 0), err)
	}

	order := &domain.Order{
		ID:            cell(row, 0),
		CustomerName:  cell(row, 3),
		Phone:         cell(row, 4),
		Address:       cell(row, 5),
		DeliveryType:  deliveryTypeFromLabel(cell(row, 6)),
		PaymentMethod: domain.PaymentMethod(cell(row, 7)),
		Items:         cell(row, 8),
		Total:         domain.Money(total),
		Status:        domain.OrderStatus(cell(row, 10)),
	}

	if created, err := time.ParseInLocation(dateLayout+" "+timeLayout, cell(row, 1)+" "+cell(row, 2), loc); err == nil {
		order.CreatedAt = created
	}

	return order, nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	// json numbers decode as float64; %v would print large totals in exponent form
	if f, ok := row[i].(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", row[i])
}

// OrderRepository stores orders directly in the sheet.
type OrderRepository struct {
	client *Client
}

func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{client: client}
}

// Create appends the order unless a row with the same id already exists.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		return errors.New("order id is required")
	}

	_, err := r.client.FindOrder(ctx, order.ID)
	switch {
	case err == nil:
		return domain.ErrDuplicateOrder
	case !errors.Is(err, domain.ErrOrderNotFound):
		return err
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	return r.client.AppendOrder(ctx, order)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return r.client.FindOrder(ctx, id)
}
