package cart

import (
	"context"
	"testing"
	"time"

	"github.com/Beka01247/forno-storefront/internal/catalog"
	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/Beka01247/forno-storefront/internal/pricing"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems(t *testing.T) []domain.LineItem {
	t.Helper()
	c := catalog.Default()
	cart := New(pricing.NewEngine(c))

	margherita, err := c.Lookup(1)
	require.NoError(t, err)
	_, err = cart.Add(margherita, 2, domain.Options{Size: domain.SizeMedium, Base: domain.BaseWhiteCream})
	require.NoError(t, err)

	_, err = cart.Add(c.HalfAndHalf(), 1, domain.Options{Size: domain.SizeLarge, Split: &domain.SplitComposition{First: 1, Second: 2}})
	require.NoError(t, err)

	promo, err := c.Lookup(catalog.LargeHalfOffID)
	require.NoError(t, err)
	_, err = cart.Add(promo, 1, domain.Options{Promotion: domain.LargeHalfOff{Split: &domain.SplitComposition{First: 3, Second: 5}, Base: domain.BaseBBQ}})
	require.NoError(t, err)

	combo, err := c.Lookup(catalog.PortionsComboID)
	require.NoError(t, err)
	_, err = cart.Add(combo, 1, domain.Options{Promotion: domain.PortionsCombo{Portions: [3]domain.ProductID{101, 101, 106}, Beverage: 16}})
	require.NoError(t, err)

	return cart.Items()
}

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client, time.Hour)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return store, mr, cleanup
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	items := sampleItems(t)

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)

	require.NoError(t, store.Save(ctx, "s1", items))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, items, loaded)

	// stored items are isolated from the caller
	loaded[0].Quantity = 99
	again, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, again[0].Quantity)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Load(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	items := sampleItems(t)

	require.NoError(t, store.Save(ctx, "s1", items))
	assert.True(t, mr.Exists("cart:s1"))
	assert.Equal(t, time.Hour, mr.TTL("cart:s1"))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, items, loaded)

	restored, err := Restore(fixedPricer{}, loaded)
	require.NoError(t, err)
	subtotal, _ := recomputed(items)
	assert.Equal(t, subtotal, restored.Subtotal())
}

func TestRedisStore_EmptyAndMissing(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)

	require.NoError(t, store.Save(ctx, "empty", nil))
	loaded, err := store.Load(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, store.Delete(ctx, "empty"))
	_, err = store.Load(ctx, "empty")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestRedisStore_Expires(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "s1", sampleItems(t)))

	mr.FastForward(2 * time.Hour)

	_, err := store.Load(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}
