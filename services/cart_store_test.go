package services

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"petal-pink/models"
	"petal-pink/repositories"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	hairOil = 1
	serum   = 2
	keratin = 3
)

func newTestCatalog(t *testing.T) *repositories.Catalog {
	t.Helper()
	catalog, err := repositories.NewCatalog(repositories.DefaultProducts())
	require.NoError(t, err)
	return catalog
}

func newTestStore(t *testing.T) *CartStore {
	t.Helper()
	return NewCartStore(newTestCatalog(t))
}

func productIDs(entries []models.CartEntry) []int {
	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProductID)
	}
	return ids
}

func TestCartStore_AddToCartIsAdditive(t *testing.T) {
	store := newTestStore(t)

	adds := []int{2, 1, 4, 3}
	want := 0
	for _, q := range adds {
		got, err := store.AddToCart(hairOil, q)
		require.NoError(t, err)
		want += q
		assert.Equal(t, want, got)
	}

	assert.Equal(t, 10, store.ItemCount())
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, []models.CartEntry{{ProductID: hairOil, Quantity: 10}}, store.Entries())
}

func TestCartStore_AddToCartRejectsInvalidQuantity(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddToCart(hairOil, 1)
	require.NoError(t, err)
	before := store.Entries()

	for _, q := range []int{0, -1, -50} {
		_, err := store.AddToCart(hairOil, q)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %d", q)
	}
	assert.Equal(t, before, store.Entries())
}

func TestCartStore_AddToCartRejectsUnknownProduct(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddToCart(999, 1)
	assert.ErrorIs(t, err, ErrUnknownProduct)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 0, store.ItemCount())
}

func TestCartStore_AddToCartRejectsOverflow(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddToCart(hairOil, 2)
	require.NoError(t, err)

	_, err = store.AddToCart(hairOil, math.MaxInt)
	assert.ErrorIs(t, err, ErrQuantityLimit)

	_, err = store.AddToCart(serum, math.MaxInt)
	assert.ErrorIs(t, err, ErrQuantityLimit)

	assert.Equal(t, []models.CartEntry{{ProductID: hairOil, Quantity: 2}}, store.Entries())
	assert.Equal(t, 2, store.ItemCount())
	assert.Equal(t, int64(2*2500), store.Subtotal())
}

func TestCartStore_AddToCartUpToLimit(t *testing.T) {
	store := newTestStore(t)

	got, err := store.AddToCart(hairOil, models.MaxLineQuantity-1)
	require.NoError(t, err)
	assert.Equal(t, models.MaxLineQuantity-1, got)

	got, err = store.AddToCart(hairOil, 1)
	require.NoError(t, err)
	assert.Equal(t, models.MaxLineQuantity, got)

	_, err = store.AddToCart(hairOil, 1)
	assert.ErrorIs(t, err, ErrQuantityLimit)

	q, _ := store.Quantity(hairOil)
	assert.Equal(t, models.MaxLineQuantity, q)
}

func TestCartStore_UpdateQuantityCapsAtLimit(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddToCart(hairOil, 1)
	require.NoError(t, err)

	assert.True(t, store.UpdateQuantity(hairOil, math.MaxInt))

	q, _ := store.Quantity(hairOil)
	assert.Equal(t, models.MaxLineQuantity, q)
	assert.Equal(t, int64(models.MaxLineQuantity)*2500, store.Subtotal())
}

func TestCartStore_UpdateToZeroRemoves(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddToCart(hairOil, 3)
	require.NoError(t, err)

	assert.True(t, store.UpdateQuantity(hairOil, 0))
	assert.False(t, store.RemoveFromCart(hairOil))
	assert.Equal(t, 0, store.Len())
}

func TestCartStore_UpdateNegativeRemoves(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddToCart(serum, 2)
	require.NoError(t, err)

	assert.True(t, store.UpdateQuantity(serum, -4))
	_, ok := store.Quantity(serum)
	assert.False(t, ok)
}

func TestCartStore_UpdateMissingEntryDoesNotCreate(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.UpdateQuantity(hairOil, 5))
	assert.Equal(t, 0, store.Len())

	assert.False(t, store.UpdateQuantity(hairOil, 0))
	assert.Equal(t, 0, store.Len())
}

func TestCartStore_RemoveNeverAddedLeavesCartUnchanged(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddToCart(serum, 1)
	require.NoError(t, err)
	_, err = store.AddToCart(hairOil, 2)
	require.NoError(t, err)
	before := store.Entries()

	assert.False(t, store.RemoveFromCart(keratin))
	assert.Equal(t, before, store.Entries())
}

func TestCartStore_UpdatePreservesOrder(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddToCart(hairOil, 1)
	require.NoError(t, err)
	_, err = store.AddToCart(serum, 1)
	require.NoError(t, err)

	require.True(t, store.UpdateQuantity(hairOil, 5))

	assert.Equal(t, []int{hairOil, serum}, productIDs(store.Entries()))
	q, _ := store.Quantity(hairOil)
	assert.Equal(t, 5, q)
}

func TestCartStore_RemoveKeepsRemainingOrder(t *testing.T) {
	store := newTestStore(t)
	for _, id := range []int{keratin, hairOil, serum} {
		_, err := store.AddToCart(id, 1)
		require.NoError(t, err)
	}

	require.True(t, store.RemoveFromCart(hairOil))
	assert.Equal(t, []int{keratin, serum}, productIDs(store.Entries()))

	_, err := store.AddToCart(hairOil, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{keratin, serum, hairOil}, productIDs(store.Entries()))
}

func TestCartStore_ClearTwice(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddToCart(hairOil, 2)
	require.NoError(t, err)

	store.Clear()
	assert.Empty(t, store.Entries())
	assert.Equal(t, 0, store.ItemCount())

	store.Clear()
	assert.Empty(t, store.Entries())
	assert.Equal(t, 0, store.ItemCount())
}

func TestCartStore_SubtotalScenario(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddToCart(hairOil, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, store.ItemCount())
	assert.Equal(t, int64(5000), store.Subtotal())

	_, err = store.AddToCart(hairOil, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, store.ItemCount())
	assert.Equal(t, int64(7500), store.Subtotal())

	require.True(t, store.UpdateQuantity(hairOil, 0))
	assert.Equal(t, 0, store.ItemCount())
	assert.Empty(t, store.Entries())
}

func TestCartStore_SubtotalUsesDiscountPrice(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddToCart(serum, 2)
	require.NoError(t, err)
	_, err = store.AddToCart(hairOil, 1)
	require.NoError(t, err)

	// serum: price 3200, discount 2800
	assert.Equal(t, int64(2*2800+2500), store.Subtotal())

	lines := store.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(3200), lines[0].Price)
	assert.Equal(t, int64(2800), lines[0].UnitPrice)
	assert.Equal(t, int64(5600), lines[0].LineTotal)
}

type swappableCatalog struct {
	mu       sync.Mutex
	products map[int]models.Product
}

func (c *swappableCatalog) Resolve(id int) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[id]
	if !ok {
		return models.Product{}, repositories.ErrProductNotFound
	}
	return p, nil
}

func (c *swappableCatalog) set(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.ID] = p
}

func TestCartStore_LivePricing(t *testing.T) {
	catalog := &swappableCatalog{products: map[int]models.Product{
		7: {ID: 7, Name: "Toner", Price: 1000},
	}}
	store := NewCartStore(catalog)

	_, err := store.AddToCart(7, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), store.Subtotal())

	catalog.set(models.Product{ID: 7, Name: "Toner", Price: 1000, Discount: 800})
	assert.Equal(t, int64(2400), store.Subtotal())
}

func TestCartStore_SubscribersSeeEveryChange(t *testing.T) {
	store := newTestStore(t)

	var events []CartEvent
	unsubscribe := store.Subscribe(func(ev CartEvent) {
		events = append(events, ev)
	})

	_, err := store.AddToCart(hairOil, 2)
	require.NoError(t, err)
	require.True(t, store.UpdateQuantity(hairOil, 4))
	require.True(t, store.UpdateQuantity(hairOil, 4))
	require.False(t, store.RemoveFromCart(serum))
	require.True(t, store.RemoveFromCart(hairOil))
	store.Clear()
	_, err = store.AddToCart(serum, 1)
	require.NoError(t, err)
	store.Clear()

	kinds := make([]CartEventKind, 0, len(events))
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []CartEventKind{
		CartItemAdded,
		CartItemUpdated,
		CartItemRemoved,
		CartItemAdded,
		CartCleared,
	}, kinds)

	assert.Equal(t, []models.CartEntry{{ProductID: hairOil, Quantity: 2}}, events[0].Entries)
	assert.Equal(t, []models.CartEntry{{ProductID: hairOil, Quantity: 4}}, events[1].Entries)
	assert.Empty(t, events[2].Entries)

	unsubscribe()
	_, err = store.AddToCart(serum, 1)
	require.NoError(t, err)
	assert.Len(t, events, 5)
}

func TestCartStore_FailedAddPublishesNothing(t *testing.T) {
	store := newTestStore(t)
	calls := 0
	store.Subscribe(func(CartEvent) { calls++ })

	_, _ = store.AddToCart(999, 1)
	_, _ = store.AddToCart(hairOil, 0)

	assert.Zero(t, calls)
}

func TestCartStore_EventEntriesAreCopies(t *testing.T) {
	store := newTestStore(t)
	var got []models.CartEntry
	store.Subscribe(func(ev CartEvent) { got = ev.Entries })

	_, err := store.AddToCart(hairOil, 1)
	require.NoError(t, err)
	got[0].Quantity = 42

	q, _ := store.Quantity(hairOil)
	assert.Equal(t, 1, q)
}

func TestCartStore_Restore(t *testing.T) {
	store := newTestStore(t)
	calls := 0
	store.Subscribe(func(CartEvent) { calls++ })

	store.Restore([]models.CartEntry{
		{ProductID: serum, Quantity: 2},
		{ProductID: 999, Quantity: 1},
		{ProductID: hairOil, Quantity: 0},
		{ProductID: keratin, Quantity: 1},
		{ProductID: serum, Quantity: 5},
	})

	assert.Equal(t, []models.CartEntry{
		{ProductID: serum, Quantity: 2},
		{ProductID: keratin, Quantity: 1},
	}, store.Entries())
	assert.Zero(t, calls)
}

func TestCartStore_ConcurrentAdds(t *testing.T) {
	store := newTestStore(t)

	var mu sync.Mutex
	var seen []int
	store.Subscribe(func(ev CartEvent) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, ev.Entries[0].Quantity)
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.AddToCart(hairOil, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.ItemCount())
	assert.Equal(t, 1, store.Len())

	// events arrive in the order the mutations were applied
	require.Len(t, seen, 50)
	for i, q := range seen {
		assert.Equal(t, i+1, q)
	}
}

func TestCartStore_Drain(t *testing.T) {
	store := newTestStore(t)
	var events []CartEvent
	store.Subscribe(func(ev CartEvent) { events = append(events, ev) })

	assert.Empty(t, store.Drain().Items)
	assert.Empty(t, events)

	_, err := store.AddToCart(hairOil, 2)
	require.NoError(t, err)
	_, err = store.AddToCart(serum, 1)
	require.NoError(t, err)

	view := store.Drain()
	assert.Equal(t, 3, view.ItemCount)
	assert.Equal(t, int64(2*2500+2800), view.Subtotal)
	require.Len(t, view.Items, 2)
	assert.Equal(t, hairOil, view.Items[0].ProductID)
	assert.Equal(t, serum, view.Items[1].ProductID)

	assert.Equal(t, 0, store.Len())
	require.Len(t, events, 3)
	assert.Equal(t, CartCleared, events[2].Kind)
	assert.Empty(t, events[2].Entries)
}
