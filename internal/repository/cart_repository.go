package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/craftcart/internal/db"
	"github.com/nikolayk812/craftcart/internal/port"
)

// cartRepository keeps serialized carts in the cart_snapshots table.
type cartRepository struct {
	q *db.Queries
}

func NewCart(pool *pgxpool.Pool) port.KVStore {
	return &cartRepository{
		q: db.New(pool),
	}
}

func NewCartWithTx(tx pgx.Tx) port.KVStore {
	return &cartRepository{
		q: db.New(tx),
	}
}

func (r *cartRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("key is empty")
	}

	value, err := r.q.GetCartSnapshot(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("q.GetCartSnapshot: %w", err)
	}

	return value, true, nil
}

func (r *cartRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	err := r.q.UpsertCartSnapshot(ctx, db.UpsertCartSnapshotParams{
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertCartSnapshot: %w", err)
	}

	return nil
}

func (r *cartRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if _, err := r.q.DeleteCartSnapshot(ctx, key); err != nil {
		return fmt.Errorf("q.DeleteCartSnapshot: %w", err)
	}

	return nil
}
