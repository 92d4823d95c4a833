package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const productListTTL = 5 * time.Minute

// ProductCache holds rendered product list pages. A nil client disables it.
type ProductCache struct {
	client redis.Cmdable
}

func NewProductCache(client redis.Cmdable) *ProductCache {
	return &ProductCache{client: client}
}

func productListKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func (c *ProductCache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *ProductCache) GetList(ctx context.Context, page, limit int) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	raw, err := c.client.Get(ctx, productListKey(page, limit)).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (c *ProductCache) SetList(ctx context.Context, page, limit int, body []byte) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Set(ctx, productListKey(page, limit), body, productListTTL).Err()
}

func (c *ProductCache) Invalidate(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	iter := c.client.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
