package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"petal-pink/models"
)

const cartKeyPrefix = "cart_session_"

// CartRedisRepository stores each session cart as a JSON array under
// cart_session_<id>. Every save refreshes the TTL.
type CartRedisRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewCartRedisRepository(client redis.Cmdable, ttl time.Duration) *CartRedisRepository {
	return &CartRedisRepository{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

func (r *CartRedisRepository) Load(ctx context.Context, sessionID string) ([]models.CartEntry, error) {
	raw, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.CartEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var entries []models.CartEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return entries, nil
}

func (r *CartRedisRepository) Save(ctx context.Context, sessionID string, entries []models.CartEntry) error {
	if len(entries) == 0 {
		return r.Delete(ctx, sessionID)
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.client.Set(ctx, cartKey(sessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("set cart: %w", err)
	}
	return nil
}

func (r *CartRedisRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
