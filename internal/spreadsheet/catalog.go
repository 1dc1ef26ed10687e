package spreadsheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Beka01247/forno-storefront/internal/domain"
)

const DefaultCatalogRange = "Productos!A:G"

// ReadCatalog loads products from the given range. See ParseCatalog for the
// expected layout.
func (c *Client) ReadCatalog(ctx context.Context, readRange string) ([]domain.Product, error) {
	if readRange == "" {
		readRange = DefaultCatalogRange
	}

	values, err := c.get(ctx, readRange)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no data found in catalog range %s", readRange)
	}

	return ParseCatalog(values)
}

// ParseCatalog reads catalog rows. The first row is a header. A row with only
// its first cell set opens a category; product rows hold
// id, name, price, description, tags, promotion kind, discount percent.
func ParseCatalog(rows [][]interface{}) ([]domain.Product, error) {
	var (
		products []domain.Product
		category domain.Category
	)

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || cell(row, 0) == "" {
			continue
		}

		// category row
		if len(row) == 1 || cell(row, 1) == "" {
			category = domain.Category(strings.TrimSpace(cell(row, 0)))
			if !category.Valid() {
				return nil, fmt.Errorf("row %d: unknown category %q", i+1, category)
			}
			continue
		}

		if category == "" {
			return nil, fmt.Errorf("row %d: product listed before any category", i+1)
		}

		product, err := parseProductRow(row, category)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		products = append(products, product)
	}

	return products, nil
}

func parseProductRow(row []interface{}, category domain.Category) (domain.Product, error) {
	id, err := strconv.Atoi(strings.TrimSpace(cell(row, 0)))
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid product id %q", cell(row, 0))
	}

	product := domain.Product{
		ID:          domain.ProductID(id),
		Name:        strings.TrimSpace(cell(row, 1)),
		Description: strings.TrimSpace(cell(row, 3)),
		Category:    category,
	}

	price, err := parsePrice(cell(row, 2))
	if err != nil {
		return domain.Product{}, err
	}
	product.BasePrice = price

	if tags := strings.TrimSpace(cell(row, 4)); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				product.Tags = append(product.Tags, tag)
			}
		}
	}

	if kind := strings.TrimSpace(cell(row, 5)); kind != "" {
		product.Promotion = domain.PromotionKind(kind)
	}

	if discount := strings.TrimSpace(cell(row, 6)); discount != "" {
		percent, err := strconv.Atoi(strings.TrimSuffix(discount, "%"))
		if err != nil {
			return domain.Product{}, fmt.Errorf("invalid discount %q", discount)
		}
		product.DiscountPercent = percent
	}

	return product, nil
}

// parsePrice accepts whole peso amounts, with optional "$" and thousands dots
// ("$32.000").
func parsePrice(raw string) (domain.Money, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("missing price")
	}

	price, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", raw)
	}

	return domain.Money(price), nil
}
