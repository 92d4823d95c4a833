package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_Checkout(t *testing.T) {
	sessions := NewCartSessions(newTestCatalog(t), nil, nil)
	checkout := NewCheckoutService(sessions)
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	checkout.now = func() time.Time { return fixed }
	ctx := context.Background()

	store, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	_, err = store.AddToCart(hairOil, 2)
	require.NoError(t, err)
	_, err = store.AddToCart(serum, 1)
	require.NoError(t, err)

	summary, err := checkout.Checkout(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, "s1", summary.SessionID)
	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, int64(2*2500+2800), summary.Subtotal)
	assert.Len(t, summary.Items, 2)
	assert.Equal(t, fixed, summary.CheckedOut)

	assert.Equal(t, 0, store.Len())
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	sessions := NewCartSessions(newTestCatalog(t), nil, nil)
	checkout := NewCheckoutService(sessions)

	_, err := checkout.Checkout(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutService_ConcurrentAddsAreNeverLost(t *testing.T) {
	sessions := NewCartSessions(newTestCatalog(t), nil, nil)
	checkout := NewCheckoutService(sessions)
	ctx := context.Background()

	store, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)

	const adders, addsEach = 8, 200
	var wg sync.WaitGroup
	for range adders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range addsEach {
				_, err := store.AddToCart(hairOil, 1)
				assert.NoError(t, err)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	checkedOut := 0
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		summary, err := checkout.Checkout(ctx, "s1")
		if errors.Is(err, ErrEmptyCart) {
			continue
		}
		require.NoError(t, err)
		checkedOut += summary.ItemCount
	}

	assert.Equal(t, adders*addsEach, checkedOut+store.ItemCount())
}
