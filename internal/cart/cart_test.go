package cart

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/Beka01247/forno-storefront/internal/catalog"
	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/Beka01247/forno-storefront/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPricer prices every product at its base price.
type fixedPricer struct {
	err error
}

func (p fixedPricer) Price(product domain.Product, _ domain.Options) (pricing.Quote, error) {
	if p.err != nil {
		return pricing.Quote{}, p.err
	}
	return pricing.Quote{UnitPrice: product.BasePrice, Label: product.Name}, nil
}

func newTestCart(t *testing.T) (*Cart, *catalog.Catalog) {
	t.Helper()
	c := catalog.Default()
	return New(pricing.NewEngine(c)), c
}

func product(t *testing.T, c *catalog.Catalog, id domain.ProductID) domain.Product {
	t.Helper()
	p, err := c.Lookup(id)
	require.NoError(t, err)
	return p
}

func recomputed(items []domain.LineItem) (domain.Money, int) {
	var subtotal domain.Money
	var count int
	for _, item := range items {
		subtotal += item.UnitPrice * domain.Money(item.Quantity)
		count += item.Quantity
	}
	return subtotal, count
}

func TestAdd_PricesMediumMargherita(t *testing.T) {
	cart, c := newTestCart(t)

	item, err := cart.Add(product(t, c, 1), 1, domain.Options{Size: domain.SizeMedium})
	require.NoError(t, err)

	assert.Equal(t, domain.Money(41600), item.UnitPrice)
	assert.Equal(t, domain.Money(41600), cart.Subtotal())
	assert.Equal(t, 1, cart.ItemCount())
}

func TestSubtotal_TwoLines(t *testing.T) {
	cart, c := newTestCart(t)

	_, err := cart.Add(product(t, c, 1), 2, domain.Options{Size: domain.SizeMedium})
	require.NoError(t, err)
	_, err = cart.Add(product(t, c, 2), 1, domain.Options{Size: domain.SizePersonal})
	require.NoError(t, err)

	assert.Equal(t, domain.Money(2*41600+35000), cart.Subtotal())
	assert.Equal(t, domain.Money(118200), cart.Subtotal())
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, 2, cart.Len())

	// no mutation in between
	assert.Equal(t, cart.Subtotal(), cart.Subtotal())
}

func TestAdd_NeverMerges(t *testing.T) {
	cart, c := newTestCart(t)
	opts := domain.Options{Size: domain.SizeLarge}

	_, err := cart.Add(product(t, c, 2), 1, opts)
	require.NoError(t, err)
	_, err = cart.Add(product(t, c, 2), 1, opts)
	require.NoError(t, err)

	assert.Equal(t, 2, cart.Len())
}

func TestAdd_Rejects(t *testing.T) {
	cart, c := newTestCart(t)

	_, err := cart.Add(product(t, c, 1), 0, domain.Options{Size: domain.SizeMedium})
	assert.True(t, domain.IsValidation(err))

	_, err = cart.Add(product(t, c, 1), 1, domain.Options{})
	assert.True(t, domain.IsValidation(err))

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, domain.Money(0), cart.Subtotal())
}

func TestAdd_PricingFailureLeavesCartUnchanged(t *testing.T) {
	cart := New(fixedPricer{err: errors.New("boom")})

	_, err := cart.Add(domain.Product{ID: 8, BasePrice: 13000, Category: domain.CategoryBeverage}, 1, domain.Options{})
	assert.Error(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestAdd_SnapshotsOptions(t *testing.T) {
	cart, c := newTestCart(t)

	split := &domain.SplitComposition{First: 1, Second: 2}
	_, err := cart.Add(c.HalfAndHalf(), 1, domain.Options{Size: domain.SizeMedium, Split: split})
	require.NoError(t, err)

	split.Second = 5

	item, err := cart.Item(0)
	require.NoError(t, err)
	assert.Equal(t, domain.ProductID(2), item.Options.Split.Second)
	assert.Equal(t, domain.Money(43550), item.UnitPrice)

	// returned items are copies too
	item.Options.Split.Second = 6
	items := cart.Items()
	assert.Equal(t, domain.ProductID(2), items[0].Options.Split.Second)
}

func TestRemove_OutOfRange(t *testing.T) {
	cart, c := newTestCart(t)
	_, err := cart.Add(product(t, c, 1), 2, domain.Options{Size: domain.SizeMedium})
	require.NoError(t, err)

	before := cart.Items()

	for _, index := range []int{-1, 1, 7} {
		err := cart.Remove(index)

		var indexErr *domain.IndexError
		require.ErrorAs(t, err, &indexErr)
		assert.Equal(t, index, indexErr.Index)
		assert.Equal(t, 1, indexErr.Len)
	}

	assert.Equal(t, before, cart.Items())
	assert.Equal(t, domain.Money(83200), cart.Subtotal())
	assert.Equal(t, 2, cart.ItemCount())
}

func TestSetQuantity(t *testing.T) {
	cart, c := newTestCart(t)
	_, err := cart.Add(product(t, c, 1), 1, domain.Options{Size: domain.SizeMedium})
	require.NoError(t, err)

	require.NoError(t, cart.SetQuantity(0, 3))
	assert.Equal(t, domain.Money(3*41600), cart.Subtotal())
	assert.Equal(t, 3, cart.ItemCount())

	assert.True(t, domain.IsIndex(cart.SetQuantity(1, 2)))
}

func TestSetQuantityZero_EqualsRemove(t *testing.T) {
	build := func() *Cart {
		cart, c := newTestCart(t)
		_, err := cart.Add(product(t, c, 1), 2, domain.Options{Size: domain.SizeMedium})
		require.NoError(t, err)
		_, err = cart.Add(product(t, c, 9), 1, domain.Options{})
		require.NoError(t, err)
		_, err = cart.Add(product(t, c, 5), 1, domain.Options{Size: domain.SizeLarge})
		require.NoError(t, err)
		return cart
	}

	removed := build()
	require.NoError(t, removed.Remove(1))

	zeroed := build()
	require.NoError(t, zeroed.SetQuantity(1, 0))

	negative := build()
	require.NoError(t, negative.SetQuantity(1, -3))

	assert.Equal(t, removed.Items(), zeroed.Items())
	assert.Equal(t, removed.Subtotal(), zeroed.Subtotal())
	assert.Equal(t, removed.ItemCount(), zeroed.ItemCount())
	assert.Equal(t, removed.Items(), negative.Items())
}

func TestClear(t *testing.T) {
	cart, c := newTestCart(t)
	_, err := cart.Add(product(t, c, 1), 2, domain.Options{Size: domain.SizeMedium})
	require.NoError(t, err)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, domain.Money(0), cart.Subtotal())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestSubtotal_NoDriftUnderRandomOperations(t *testing.T) {
	c := catalog.Default()
	engine := pricing.NewEngine(c)
	rng := rand.New(rand.NewSource(42))

	pizzas := c.Pizzas()
	others := append(c.ListByCategory(domain.CategoryBeverage), c.ListByCategory(domain.CategoryPortion)...)

	for run := 0; run < 50; run++ {
		cart := New(engine)

		for step := 0; step < 200; step++ {
			switch op := rng.Intn(10); {
			case op < 5:
				var err error
				if rng.Intn(2) == 0 {
					p := pizzas[rng.Intn(len(pizzas))]
					_, err = cart.Add(p, 1+rng.Intn(4), domain.Options{Size: domain.Sizes[rng.Intn(len(domain.Sizes))]})
				} else {
					p := others[rng.Intn(len(others))]
					_, err = cart.Add(p, 1+rng.Intn(4), domain.Options{})
				}
				require.NoError(t, err)
			case op < 7:
				_ = cart.Remove(rng.Intn(cart.Len() + 1))
			default:
				_ = cart.SetQuantity(rng.Intn(cart.Len()+1), rng.Intn(6)-1)
			}

			subtotal, count := recomputed(cart.Items())
			require.Equal(t, subtotal, cart.Subtotal(), "run %d step %d", run, step)
			require.Equal(t, count, cart.ItemCount(), "run %d step %d", run, step)
		}
	}
}

func TestRestore(t *testing.T) {
	cart, c := newTestCart(t)
	_, err := cart.Add(product(t, c, 1), 2, domain.Options{Size: domain.SizeMedium})
	require.NoError(t, err)
	_, err = cart.Add(product(t, c, 8), 1, domain.Options{})
	require.NoError(t, err)

	restored, err := Restore(fixedPricer{err: errors.New("not repriced")}, cart.Items())
	require.NoError(t, err)

	assert.Equal(t, cart.Items(), restored.Items())
	assert.Equal(t, cart.Subtotal(), restored.Subtotal())
	assert.Equal(t, cart.ItemCount(), restored.ItemCount())

	_, err = Restore(fixedPricer{}, []domain.LineItem{{Quantity: 0}})
	assert.True(t, domain.IsValidation(err))
}

func TestQuantityCap(t *testing.T) {
	cart, c := newTestCart(t)
	margherita := product(t, c, 1)
	medium := domain.Options{Size: domain.SizeMedium}

	item, err := cart.Add(margherita, MaxQuantity, medium)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(41600*MaxQuantity), cart.Subtotal())
	assert.Equal(t, MaxQuantity, item.Quantity)

	for _, qty := range []int{MaxQuantity + 1, math.MaxInt64/41600 + 1, math.MaxInt} {
		_, err = cart.Add(margherita, qty, medium)
		assert.True(t, domain.IsValidation(err), "quantity %d", qty)

		err = cart.SetQuantity(0, qty)
		assert.True(t, domain.IsValidation(err), "quantity %d", qty)
	}

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, MaxQuantity, cart.ItemCount())
	assert.Equal(t, domain.Money(41600*MaxQuantity), cart.Subtotal())
	assert.Positive(t, cart.Subtotal())

	_, err = Restore(fixedPricer{}, []domain.LineItem{{Quantity: MaxQuantity + 1, UnitPrice: 1}})
	assert.True(t, domain.IsValidation(err))
}
