package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"go.uber.org/zap"
)

const (
	DefaultDeliveryFee domain.Money = 3000
	DefaultPhonePrefix              = "+57"
)

// Acceptor is the order acceptance collaborator. Each call either fully
// succeeds or fully fails before returning.
type Acceptor interface {
	Accept(ctx context.Context, order domain.Order) (domain.OrderConfirmation, error)
}

// Lines is the read side of a cart.
type Lines interface {
	Items() []domain.LineItem
	Subtotal() domain.Money
}

type Config struct {
	// DeliveryFee is charged only on delivery orders.
	DeliveryFee domain.Money
	PhonePrefix string
}

type Adapter struct {
	acceptor    Acceptor
	deliveryFee domain.Money
	phonePrefix string
	logger      *zap.SugaredLogger
}

func NewAdapter(acceptor Acceptor, cfg Config, logger *zap.SugaredLogger) *Adapter {
	return &Adapter{
		acceptor:    acceptor,
		deliveryFee: cfg.DeliveryFee,
		phonePrefix: cfg.PhonePrefix,
		logger:      logger,
	}
}

func (a *Adapter) Validate(form Form) error {
	return Validate(form)
}

func (a *Adapter) DeliveryFee(deliveryType domain.DeliveryType) domain.Money {
	if deliveryType == domain.DeliveryTypeDelivery {
		return a.deliveryFee
	}
	return 0
}

// GrandTotal adds the delivery surcharge for delivery orders.
func (a *Adapter) GrandTotal(subtotal domain.Money, deliveryType domain.DeliveryType) domain.Money {
	return subtotal + a.DeliveryFee(deliveryType)
}

// BuildOrder validates the form and projects the cart into an order. The cart
// is only read.
func (a *Adapter) BuildOrder(form Form, lines Lines) (domain.Order, error) {
	items := lines.Items()
	if len(items) == 0 {
		if err := Validate(form); err != nil {
			return domain.Order{}, err
		}
		return domain.Order{}, domain.NewValidationError("items", domain.ErrEmptyCart.Error())
	}

	return a.project(form, Describe(items), len(items), lines.Subtotal())
}

// BuildRawOrder projects an already described item list, as sent by clients
// that keep their cart locally. The description is opaque, so the line count
// comes from the client; zero means unknown.
func (a *Adapter) BuildRawOrder(form Form, items string, lineCount int, subtotal domain.Money) (domain.Order, error) {
	items = strings.TrimSpace(items)
	if items == "" {
		if err := Validate(form); err != nil {
			return domain.Order{}, err
		}
		return domain.Order{}, domain.NewValidationError("items", domain.ErrEmptyCart.Error())
	}
	if subtotal < 0 {
		return domain.Order{}, domain.NewValidationError("subtotal", "must not be negative")
	}

	if lineCount < 0 {
		return domain.Order{}, domain.NewValidationError("line_count", "must not be negative")
	}

	return a.project(form, items, lineCount, subtotal)
}

func (a *Adapter) project(form Form, items string, lineCount int, subtotal domain.Money) (domain.Order, error) {
	form = form.normalized()
	if err := validateNormalized(form); err != nil {
		return domain.Order{}, err
	}

	address := form.Address
	if form.DeliveryType != domain.DeliveryTypeDelivery {
		address = ""
	}

	return domain.Order{
		CustomerName:  form.CustomerName,
		Phone:         a.normalizePhone(form.Phone),
		Address:       address,
		DeliveryType:  form.DeliveryType,
		PaymentMethod: form.PaymentMethod,
		Notes:         form.Notes,
		Items:         items,
		LineCount:     lineCount,
		Subtotal:      subtotal,
		DeliveryFee:   a.DeliveryFee(form.DeliveryType),
		Total:         a.GrandTotal(subtotal, form.DeliveryType),
	}, nil
}

// Submit hands the order to the collaborator. It never touches a cart; the
// caller clears its cart after a successful submission.
func (a *Adapter) Submit(ctx context.Context, order domain.Order) (domain.OrderConfirmation, error) {
	confirmation, err := a.acceptor.Accept(ctx, order)
	if err != nil {
		a.logger.Warnw("order submission failed", "customer", order.CustomerName, "total", order.Total, "error", err)
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return domain.OrderConfirmation{}, err
		}
		return domain.OrderConfirmation{}, &domain.SubmissionError{Err: err}
	}
	if !confirmation.Success || confirmation.OrderID == "" {
		a.logger.Warnw("order submission rejected", "customer", order.CustomerName)
		return domain.OrderConfirmation{}, &domain.SubmissionError{Err: errors.New("order was not accepted")}
	}

	a.logger.Infow("order submitted", "order_id", confirmation.OrderID, "total", order.Total, "delivery_type", order.DeliveryType)

	return confirmation, nil
}

func (a *Adapter) normalizePhone(phone string) string {
	if a.phonePrefix == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	return a.phonePrefix + phone
}

// Describe renders the human readable item list stored with an order.
func Describe(items []domain.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		s := fmt.Sprintf("%dx %s", item.Quantity, item.Label)
		if base := baseOf(item); base != "" {
			s += fmt.Sprintf(" [Base: %s]", base)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func baseOf(item domain.LineItem) domain.BaseType {
	switch promo := item.Options.Promotion.(type) {
	case domain.TwoForOnePersonal:
		return promo.Base
	case domain.LargeHalfOff:
		return promo.Base
	}
	if item.Product.Category.IsPizza() {
		return item.Options.Base
	}
	return ""
}
