package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/craftcart/internal/port"
	"github.com/redis/go-redis/v9"
)

type redisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCart stores carts as plain string values. A zero ttl keeps them
// until cleared.
func NewRedisCart(client *redis.Client, ttl time.Duration) port.KVStore {
	return &redisCartRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisCartRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("key is empty")
	}

	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("client.Get: %w", err)
	}

	return value, true, nil
}

func (r *redisCartRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (r *redisCartRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}
