package pricing

import (
	"testing"

	"github.com/Beka01247/forno-storefront/internal/catalog"
	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *catalog.Catalog) {
	t.Helper()
	c := catalog.Default()
	return NewEngine(c), c
}

func mustLookup(t *testing.T, c *catalog.Catalog, id domain.ProductID) domain.Product {
	t.Helper()
	p, err := c.Lookup(id)
	require.NoError(t, err)
	return p
}

func TestPrice_MediumMargherita(t *testing.T) {
	engine, c := newTestEngine(t)

	quote, err := engine.Price(mustLookup(t, c, 1), domain.Options{Size: domain.SizeMedium})
	require.NoError(t, err)
	assert.Equal(t, domain.Money(41600), quote.UnitPrice)
	assert.Equal(t, "Margherita (medium)", quote.Label)
}

func TestPrice_MediumSplit(t *testing.T) {
	engine, c := newTestEngine(t)

	quote, err := engine.Price(c.HalfAndHalf(), domain.Options{
		Size:  domain.SizeMedium,
		Split: &domain.SplitComposition{First: 1, Second: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Money(20800+22750), quote.UnitPrice)
	assert.Equal(t, "Half Margherita + Half Pepperoni (medium)", quote.Label)
}

func TestPrice_EveryPizzaAndSize(t *testing.T) {
	engine, c := newTestEngine(t)

	for _, pizza := range c.Pizzas() {
		for _, size := range domain.Sizes {
			mult, err := SizeMultiplier(size)
			require.NoError(t, err)
			want := decimal.NewFromInt(int64(pizza.BasePrice)).Mul(mult).Round(0).IntPart()

			quote, err := engine.Price(pizza, domain.Options{Size: size})
			require.NoError(t, err)
			assert.Equal(t, domain.Money(want), quote.UnitPrice, "%s %s", pizza.Name, size)
		}
	}
}

func TestSizeMultiplier_Ordering(t *testing.T) {
	personal, err := SizeMultiplier(domain.SizePersonal)
	require.NoError(t, err)
	medium, err := SizeMultiplier(domain.SizeMedium)
	require.NoError(t, err)
	large, err := SizeMultiplier(domain.SizeLarge)
	require.NoError(t, err)

	assert.True(t, personal.LessThan(medium))
	assert.True(t, medium.LessThan(large))
	assert.Equal(t, "1.3", medium.String())
	assert.Equal(t, "1.7", large.String())

	_, err = SizeMultiplier("family")
	assert.True(t, domain.IsValidation(err))
}

func TestSplitPrice_HalvesRoundedSeparatelyAndCommutative(t *testing.T) {
	_, c := newTestEngine(t)
	pizzas := c.Pizzas()

	for _, p1 := range pizzas {
		for _, p2 := range pizzas {
			for _, size := range domain.Sizes {
				h1, err := HalfPrice(p1, size)
				require.NoError(t, err)
				h2, err := HalfPrice(p2, size)
				require.NoError(t, err)

				forward, err := SplitPrice(p1, p2, size)
				require.NoError(t, err)
				backward, err := SplitPrice(p2, p1, size)
				require.NoError(t, err)

				assert.Equal(t, h1+h2, forward)
				assert.Equal(t, forward, backward)
			}
		}
	}
}

func TestRounding_HalfUp(t *testing.T) {
	tests := []struct {
		name string
		base domain.Money
		size domain.Size
		full domain.Money
		half domain.Money
	}{
		{"medium .5 rounds up", 15, domain.SizeMedium, 20, 10},
		{"large .5 rounds up", 5, domain.SizeLarge, 9, 4},
		{"half .65 rounds up", 10001, domain.SizeMedium, 13001, 6501},
		{"personal half .5 rounds up", 35001, domain.SizePersonal, 35001, 17501},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Product{BasePrice: tt.base, Category: domain.CategoryClassicPizza}

			full, err := PizzaPrice(p, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.full, full)

			half, err := HalfPrice(p, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.half, half)
		})
	}

	assert.Equal(t, domain.Money(51), Discount(101, 50))
	assert.Equal(t, domain.Money(27200), Discount(54400, 50))
	assert.Equal(t, domain.Money(85), Discount(100, 15))
}

func TestPrice_NonPizzaIgnoresSize(t *testing.T) {
	engine, c := newTestEngine(t)

	for _, size := range []domain.Size{"", domain.SizeLarge} {
		quote, err := engine.Price(mustLookup(t, c, 8), domain.Options{Size: size})
		require.NoError(t, err)
		assert.Equal(t, domain.Money(13000), quote.UnitPrice)
		assert.Equal(t, "Limonada Casera", quote.Label)
	}

	quote, err := engine.Price(mustLookup(t, c, 101), domain.Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.Money(8000), quote.UnitPrice)
}

func TestPrice_BaseIsPriceNeutral(t *testing.T) {
	engine, c := newTestEngine(t)
	pepperoni := mustLookup(t, c, 2)

	var prices []domain.Money
	for _, base := range []domain.BaseType{"", domain.BaseTomato, domain.BaseWhiteCream, domain.BaseBBQ} {
		quote, err := engine.Price(pepperoni, domain.Options{Size: domain.SizeLarge, Base: base})
		require.NoError(t, err)
		prices = append(prices, quote.UnitPrice)
	}

	assert.Equal(t, []domain.Money{59500, 59500, 59500, 59500}, prices)
}

func TestPrice_ValidationErrors(t *testing.T) {
	engine, c := newTestEngine(t)
	margherita := mustLookup(t, c, 1)
	half := c.HalfAndHalf()
	lemonade := mustLookup(t, c, 8)

	tests := []struct {
		name    string
		product domain.Product
		opts    domain.Options
	}{
		{"pizza without size", margherita, domain.Options{}},
		{"pizza with unknown size", margherita, domain.Options{Size: "family"}},
		{"unknown base", margherita, domain.Options{Size: domain.SizeMedium, Base: "pesto"}},
		{"split on a regular pizza", margherita, domain.Options{Size: domain.SizeMedium, Split: &domain.SplitComposition{First: 1, Second: 2}}},
		{"split on a beverage", lemonade, domain.Options{Split: &domain.SplitComposition{First: 1, Second: 2}}},
		{"beverage with unknown size", lemonade, domain.Options{Size: "xl"}},
		{"beverage with unknown base", lemonade, domain.Options{Base: "pesto"}},
		{"promotion on a pizza", margherita, domain.Options{Size: domain.SizeMedium, Promotion: domain.TwoForOnePersonal{First: 1, Second: 2}}},
		{"half and half without split", half, domain.Options{Size: domain.SizeMedium}},
		{"half and half same pizza twice", half, domain.Options{Size: domain.SizeMedium, Split: &domain.SplitComposition{First: 1, Second: 1}}},
		{"half and half with a beverage", half, domain.Options{Size: domain.SizeMedium, Split: &domain.SplitComposition{First: 1, Second: 8}}},
		{"half and half nested", half, domain.Options{Size: domain.SizeMedium, Split: &domain.SplitComposition{First: domain.HalfAndHalfID, Second: 2}}},
		{"half and half unknown pizza", half, domain.Options{Size: domain.SizeMedium, Split: &domain.SplitComposition{First: 1, Second: 999}}},
		{"half and half without size", half, domain.Options{Split: &domain.SplitComposition{First: 1, Second: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Price(tt.product, tt.opts)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err), "got %v", err)
		})
	}
}

func TestPrice_SplitAcrossCategories(t *testing.T) {
	engine, c := newTestEngine(t)

	// Margherita (32000) with Trufa y Hongos (42000), large
	quote, err := engine.Price(c.HalfAndHalf(), domain.Options{
		Size:  domain.SizeLarge,
		Split: &domain.SplitComposition{First: 1, Second: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Money(27200+35700), quote.UnitPrice)
}
