package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"petal-pink/models"
)

type CartDB interface {
	Querier
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// CartRepository keeps one snapshot of each session cart in cart_items.
// Position preserves entry order across reloads.
type CartRepository struct {
	db CartDB
}

func NewCartRepository(db CartDB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Load(ctx context.Context, sessionID string) ([]models.CartEntry, error) {
	query := `SELECT product_id, quantity FROM cart_items WHERE session_id = $1 ORDER BY position`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	entries := []models.CartEntry{}
	for rows.Next() {
		var e models.CartEntry
		if err := rows.Scan(&e.ProductID, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read cart items: %w", err)
	}
	return entries, nil
}

func (r *CartRepository) Save(ctx context.Context, sessionID string, entries []models.CartEntry) error {
	return r.execTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID); err != nil {
			return fmt.Errorf("clear cart items: %w", err)
		}

		now := time.Now()
		for i, e := range entries {
			_, err := tx.Exec(ctx,
				`INSERT INTO cart_items (session_id, product_id, quantity, position, updated_at) VALUES ($1, $2, $3, $4, $5)`,
				sessionID, e.ProductID, e.Quantity, i, now)
			if err != nil {
				return fmt.Errorf("insert cart item %d: %w", e.ProductID, err)
			}
		}
		return nil
	})
}

func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

func (r *CartRepository) execTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
