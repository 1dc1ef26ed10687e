package cart

import (
	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/Beka01247/forno-storefront/internal/pricing"
)

// MaxQuantity caps a single line so extended prices stay far from overflow.
const MaxQuantity = 999

// Pricer prices a selection.
type Pricer interface {
	Price(product domain.Product, opts domain.Options) (pricing.Quote, error)
}

// Cart is an ordered list of line items owned by a single caller. It is not
// safe for concurrent use.
type Cart struct {
	pricer   Pricer
	items    []domain.LineItem
	subtotal domain.Money
	count    int
}

func New(pricer Pricer) *Cart {
	return &Cart{pricer: pricer}
}

// Restore rebuilds a cart from previously priced items without repricing.
func Restore(pricer Pricer, items []domain.LineItem) (*Cart, error) {
	c := New(pricer)
	for i, item := range items {
		if item.Quantity <= 0 || item.Quantity > MaxQuantity {
			return nil, domain.NewValidationErrorf("items", "item %d has quantity %d outside 1..%d", i, item.Quantity, MaxQuantity)
		}
		c.append(item.Clone())
	}
	return c, nil
}

// Add prices the selection and appends it as a new line. Identical selections
// are never merged.
func (c *Cart) Add(product domain.Product, quantity int, opts domain.Options) (domain.LineItem, error) {
	if quantity < 1 {
		return domain.LineItem{}, domain.NewValidationError("quantity", "quantity must be at least 1")
	}
	if quantity > MaxQuantity {
		return domain.LineItem{}, tooMany(quantity)
	}

	snapshot := opts.Clone()
	quote, err := c.pricer.Price(product, snapshot)
	if err != nil {
		return domain.LineItem{}, err
	}

	item := domain.LineItem{
		Product:   product,
		Quantity:  quantity,
		Options:   snapshot,
		UnitPrice: quote.UnitPrice,
		Label:     quote.Label,
	}
	c.append(item)

	return item.Clone(), nil
}

func (c *Cart) Remove(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	removed := c.items[index]
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.subtotal -= removed.Extended()
	c.count -= removed.Quantity
	return nil
}

// SetQuantity changes a line's quantity; zero or less removes the line.
func (c *Cart) SetQuantity(index, quantity int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	if quantity <= 0 {
		return c.Remove(index)
	}
	if quantity > MaxQuantity {
		return tooMany(quantity)
	}

	item := &c.items[index]
	c.subtotal += item.UnitPrice * domain.Money(quantity-item.Quantity)
	c.count += quantity - item.Quantity
	item.Quantity = quantity
	return nil
}

func (c *Cart) Clear() {
	c.items = nil
	c.subtotal = 0
	c.count = 0
}

func (c *Cart) Subtotal() domain.Money {
	return c.subtotal
}

// ItemCount is the sum of quantities.
func (c *Cart) ItemCount() int {
	return c.count
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the line items.
func (c *Cart) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(c.items))
	for i, item := range c.items {
		out[i] = item.Clone()
	}
	return out
}

func (c *Cart) Item(index int) (domain.LineItem, error) {
	if err := c.checkIndex(index); err != nil {
		return domain.LineItem{}, err
	}
	return c.items[index].Clone(), nil
}

func (c *Cart) append(item domain.LineItem) {
	c.items = append(c.items, item)
	c.subtotal += item.Extended()
	c.count += item.Quantity
}

func (c *Cart) checkIndex(index int) error {
	if index < 0 || index >= len(c.items) {
		return &domain.IndexError{Index: index, Len: len(c.items)}
	}
	return nil
}

func tooMany(quantity int) error {
	return domain.NewValidationErrorf("quantity", "quantity %d exceeds the maximum of %d", quantity, MaxQuantity)
}
