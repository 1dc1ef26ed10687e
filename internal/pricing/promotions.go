package pricing

import (
	"fmt"
	"strings"

	"github.com/Beka01247/forno-storefront/internal/domain"
)

// pricePromotion evaluates the promotion's own rule, which replaces the
// catalog price of the components.
func (e *Engine) pricePromotion(product domain.Product, opts domain.Options) (Quote, error) {
	if opts.Promotion == nil {
		return Quote{}, domain.NewValidationErrorf("promotion", "%s requires a promotion selection", product.Name)
	}
	if opts.Promotion.Kind() != product.Promotion {
		return Quote{}, domain.NewValidationErrorf("promotion", "%s expects a %s selection, got %s",
			product.Name, product.Promotion, opts.Promotion.Kind())
	}
	if opts.Split != nil {
		return Quote{}, domain.NewValidationError("split", "promotions carry their own split selection")
	}

	switch promo := opts.Promotion.(type) {
	case domain.TwoForOnePersonal:
		return e.priceTwoForOne(product, opts.Size, promo)
	case domain.LargeHalfOff:
		return e.priceLargeHalfOff(product, opts.Size, promo)
	case domain.PortionsCombo:
		return e.pricePortionsCombo(product, promo)
	default:
		return Quote{}, domain.NewValidationErrorf("promotion", "unsupported promotion %T", opts.Promotion)
	}
}

func (e *Engine) priceTwoForOne(product domain.Product, size domain.Size, promo domain.TwoForOnePersonal) (Quote, error) {
	if size != "" && size != domain.SizePersonal {
		return Quote{}, domain.NewValidationErrorf("size", "%s is only available in personal size", product.Name)
	}
	if !promo.Base.Valid() {
		return Quote{}, invalidBase(promo.Base)
	}
	first, err := e.lookupCategory("promotion.first", promo.First, domain.CategoryClassicPizza)
	if err != nil {
		return Quote{}, err
	}
	if first.IsHalfAndHalf() {
		return Quote{}, domain.NewValidationError("promotion.first", "choose a concrete pizza")
	}
	second, err := e.lookupCategory("promotion.second", promo.Second, domain.CategoryClassicPizza)
	if err != nil {
		return Quote{}, err
	}
	if second.IsHalfAndHalf() {
		return Quote{}, domain.NewValidationError("promotion.second", "choose a concrete pizza")
	}

	return Quote{
		UnitPrice: product.BasePrice,
		Label:     fmt.Sprintf("2x1 %s + %s (%s)", first.Name, second.Name, domain.SizePersonal),
	}, nil
}

func (e *Engine) priceLargeHalfOff(product domain.Product, size domain.Size, promo domain.LargeHalfOff) (Quote, error) {
	if size != "" && size != domain.SizeLarge {
		return Quote{}, domain.NewValidationErrorf("size", "%s is only available in large size", product.Name)
	}
	if !promo.Base.Valid() {
		return Quote{}, invalidBase(promo.Base)
	}

	var (
		full  domain.Money
		label string
	)
	switch {
	case promo.Split != nil && promo.Pizza != 0:
		return Quote{}, domain.NewValidationError("promotion", "choose either one pizza or a split, not both")
	case promo.Split != nil:
		first, second, err := e.resolveSplit(*promo.Split)
		if err != nil {
			return Quote{}, err
		}
		full, err = SplitPrice(first, second, domain.SizeLarge)
		if err != nil {
			return Quote{}, err
		}
		label = fmt.Sprintf("Half %s + Half %s", first.Name, second.Name)
	case promo.Pizza != 0:
		pizza, err := e.lookupPizza("promotion.pizza", promo.Pizza)
		if err != nil {
			return Quote{}, err
		}
		full, err = PizzaPrice(pizza, domain.SizeLarge)
		if err != nil {
			return Quote{}, err
		}
		label = pizza.Name
	default:
		return Quote{}, domain.NewValidationError("promotion", "choose a pizza or a split")
	}

	return Quote{
		UnitPrice: Discount(full, product.DiscountPercent),
		Label:     fmt.Sprintf("%s (%s) -%d%%", label, domain.SizeLarge, product.DiscountPercent),
	}, nil
}

func (e *Engine) pricePortionsCombo(product domain.Product, promo domain.PortionsCombo) (Quote, error) {
	names := make([]string, 0, len(promo.Portions))
	for i, id := range promo.Portions {
		portion, err := e.lookupCategory(fmt.Sprintf("promotion.portions[%d]", i), id, domain.CategoryPortion)
		if err != nil {
			return Quote{}, err
		}
		names = append(names, portion.Name)
	}
	drink, err := e.lookupCategory("promotion.beverage", promo.Beverage, domain.CategoryBeverage)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		UnitPrice: product.BasePrice,
		Label:     fmt.Sprintf("3 Portions (%s) + %s (free)", strings.Join(names, ", "), drink.Name),
	}, nil
}
