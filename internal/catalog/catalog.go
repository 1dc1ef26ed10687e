package catalog

import (
	"fmt"

	"github.com/Beka01247/forno-storefront/internal/domain"
)

// Catalog is an immutable product registry. It is safe for concurrent reads.
type Catalog struct {
	products   []domain.Product
	byID       map[domain.ProductID]int
	byCategory map[domain.Category][]int
}

func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products:   make([]domain.Product, 0, len(products)),
		byID:       make(map[domain.ProductID]int, len(products)),
		byCategory: make(map[domain.Category][]int),
	}

	halfAndHalf := 0
	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("product %d: unknown category %q", p.ID, p.Category)
		}
		if p.BasePrice < 0 {
			return nil, fmt.Errorf("product %d: negative base price", p.ID)
		}
		if p.Category == domain.CategoryPromotion && !p.Promotion.Valid() {
			return nil, fmt.Errorf("product %d: promotion product without a known promotion kind", p.ID)
		}
		if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
			return nil, fmt.Errorf("product %d: discount percent must be 0-100", p.ID)
		}
		if p.IsHalfAndHalf() {
			if !p.Category.IsPizza() {
				return nil, fmt.Errorf("product %d: half-and-half must be listed with the pizzas", p.ID)
			}
			halfAndHalf++
		}

		p.Tags = append([]string(nil), p.Tags...)
		c.byID[p.ID] = len(c.products)
		c.byCategory[p.Category] = append(c.byCategory[p.Category], len(c.products))
		c.products = append(c.products, p)
	}

	if halfAndHalf != 1 {
		return nil, fmt.Errorf("catalog must define exactly one half-and-half product, found %d", halfAndHalf)
	}

	return c, nil
}

func (c *Catalog) Lookup(id domain.ProductID) (domain.Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
	}
	return cloneProduct(c.products[idx]), nil
}

// ListByCategory returns the products of a category in definition order.
func (c *Catalog) ListByCategory(category domain.Category) []domain.Product {
	idxs := c.byCategory[category]
	out := make([]domain.Product, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, cloneProduct(c.products[idx]))
	}
	return out
}

func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	for i, p := range c.products {
		out[i] = cloneProduct(p)
	}
	return out
}

// Pizzas returns every orderable pizza, classic first, without the
// half-and-half pseudo-product.
func (c *Catalog) Pizzas() []domain.Product {
	var out []domain.Product
	for _, category := range []domain.Category{domain.CategoryClassicPizza, domain.CategorySpecialtyPizza} {
		for _, p := range c.ListByCategory(category) {
			if p.IsPizza() {
				out = append(out, p)
			}
		}
	}
	return out
}

func (c *Catalog) HalfAndHalf() domain.Product {
	return cloneProduct(c.products[c.byID[domain.HalfAndHalfID]])
}

func cloneProduct(p domain.Product) domain.Product {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}
