package pricing

import (
	"errors"
	"fmt"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Catalog is the product lookup the engine needs.
type Catalog interface {
	Lookup(id domain.ProductID) (domain.Product, error)
}

// Quote is a priced selection.
type Quote struct {
	UnitPrice domain.Money `json:"unit_price"`
	Label     string       `json:"label"`
}

// Engine derives unit prices. It holds no mutable state.
type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Price computes the unit price of product under opts.
func (e *Engine) Price(product domain.Product, opts domain.Options) (Quote, error) {
	if product.Category == domain.CategoryPromotion {
		return e.pricePromotion(product, opts)
	}
	if opts.Promotion != nil {
		return Quote{}, domain.NewValidationErrorf("promotion", "%s is not a promotion", product.Name)
	}

	switch {
	case product.IsHalfAndHalf():
		if !opts.Base.Valid() {
			return Quote{}, invalidBase(opts.Base)
		}
		if opts.Split == nil {
			return Quote{}, domain.NewValidationError("split", "half-and-half requires two pizzas")
		}
		first, second, err := e.resolveSplit(*opts.Split)
		if err != nil {
			return Quote{}, err
		}
		price, err := SplitPrice(first, second, opts.Size)
		if err != nil {
			return Quote{}, err
		}
		return Quote{
			UnitPrice: price,
			Label:     fmt.Sprintf("Half %s + Half %s (%s)", first.Name, second.Name, opts.Size),
		}, nil

	case product.Category.IsPizza():
		if !opts.Base.Valid() {
			return Quote{}, invalidBase(opts.Base)
		}
		if opts.Split != nil {
			return Quote{}, domain.NewValidationErrorf("split", "%s cannot be split, choose the half-and-half pizza", product.Name)
		}
		price, err := PizzaPrice(product, opts.Size)
		if err != nil {
			return Quote{}, err
		}
		return Quote{
			UnitPrice: price,
			Label:     fmt.Sprintf("%s (%s)", product.Name, opts.Size),
		}, nil

	default:
		// size and base do not change the price here but must still be known values
		if opts.Size != "" && !opts.Size.Valid() {
			return Quote{}, domain.NewValidationErrorf("size", "unknown size %q", opts.Size)
		}
		if !opts.Base.Valid() {
			return Quote{}, invalidBase(opts.Base)
		}
		if opts.Split != nil {
			return Quote{}, domain.NewValidationErrorf("split", "%s cannot be split", product.Name)
		}
		return Quote{UnitPrice: product.BasePrice, Label: product.Name}, nil
	}
}

// resolveSplit checks that both halves are distinct real pizzas.
func (e *Engine) resolveSplit(split domain.SplitComposition) (domain.Product, domain.Product, error) {
	if split.First == split.Second {
		return domain.Product{}, domain.Product{}, domain.NewValidationError("split", "the two halves must be different pizzas")
	}
	first, err := e.lookupPizza("split.first", split.First)
	if err != nil {
		return domain.Product{}, domain.Product{}, err
	}
	second, err := e.lookupPizza("split.second", split.Second)
	if err != nil {
		return domain.Product{}, domain.Product{}, err
	}
	return first, second, nil
}

func (e *Engine) lookupPizza(field string, id domain.ProductID) (domain.Product, error) {
	p, err := e.lookup(field, id)
	if err != nil {
		return domain.Product{}, err
	}
	if !p.IsPizza() {
		return domain.Product{}, domain.NewValidationErrorf(field, "%s is not a pizza", p.Name)
	}
	return p, nil
}

func (e *Engine) lookupCategory(field string, id domain.ProductID, category domain.Category) (domain.Product, error) {
	p, err := e.lookup(field, id)
	if err != nil {
		return domain.Product{}, err
	}
	if p.Category != category {
		return domain.Product{}, domain.NewValidationErrorf(field, "%s is not a %s", p.Name, category)
	}
	return p, nil
}

func (e *Engine) lookup(field string, id domain.ProductID) (domain.Product, error) {
	p, err := e.catalog.Lookup(id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.Product{}, domain.NewValidationErrorf(field, "product %d is not in the catalog", id)
		}
		return domain.Product{}, err
	}
	return p, nil
}

func invalidBase(b domain.BaseType) error {
	return domain.NewValidationErrorf("base", "unknown base type %q", b)
}

// SizeMultiplier returns the price factor of a pizza size.
func SizeMultiplier(size domain.Size) (decimal.Decimal, error) {
	switch size {
	case domain.SizePersonal:
		return decimal.NewFromInt(1), nil
	case domain.SizeMedium:
		return decimal.New(13, -1), nil
	case domain.SizeLarge:
		return decimal.New(17, -1), nil
	}
	return decimal.Decimal{}, domain.NewValidationErrorf("size", "unknown size %q", size)
}

// PizzaPrice is round(base * multiplier).
func PizzaPrice(p domain.Product, size domain.Size) (domain.Money, error) {
	mult, err := SizeMultiplier(size)
	if err != nil {
		return 0, err
	}
	return round(decimal.NewFromInt(int64(p.BasePrice)).Mul(mult)), nil
}

// HalfPrice is round(base * multiplier / 2).
func HalfPrice(p domain.Product, size domain.Size) (domain.Money, error) {
	mult, err := SizeMultiplier(size)
	if err != nil {
		return 0, err
	}
	return round(decimal.NewFromInt(int64(p.BasePrice)).Mul(mult).Div(decimal.NewFromInt(2))), nil
}

// SplitPrice sums the two half prices. It does not check that the halves
// differ; Engine.Price does.
func SplitPrice(first, second domain.Product, size domain.Size) (domain.Money, error) {
	h1, err := HalfPrice(first, size)
	if err != nil {
		return 0, err
	}
	h2, err := HalfPrice(second, size)
	if err != nil {
		return 0, err
	}
	return h1 + h2, nil
}

// Discount applies a percentage off, rounded half-up.
func Discount(price domain.Money, percent int) domain.Money {
	keep := decimal.NewFromInt(int64(100 - percent)).Div(decimal.NewFromInt(100))
	return round(decimal.NewFromInt(int64(price)).Mul(keep))
}

func round(d decimal.Decimal) domain.Money {
	return domain.Money(d.Round(0).IntPart())
}
