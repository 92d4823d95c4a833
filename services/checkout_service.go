package services

import (
	"context"
	"time"

	"petal-pink/models"
)

type CheckoutService struct {
	sessions *CartSessions
	now      func() time.Time
}

func NewCheckoutService(sessions *CartSessions) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		now:      time.Now,
	}
}

// Checkout prices the session cart at current catalog prices and empties it
// in the same step. No payment is taken.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string) (models.CheckoutSummary, error) {
	store, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return models.CheckoutSummary{}, err
	}

	view := store.Drain()
	if len(view.Items) == 0 {
		return models.CheckoutSummary{}, ErrEmptyCart
	}

	return models.CheckoutSummary{
		SessionID:  sessionID,
		Items:      view.Items,
		ItemCount:  view.ItemCount,
		Subtotal:   view.Subtotal,
		CheckedOut: s.now(),
	}, nil
}
