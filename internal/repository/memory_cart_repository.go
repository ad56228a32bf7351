package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/craftcart/internal/port"
)

type memoryCartRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryCart keeps carts for the life of the process only.
func NewMemoryCart() port.KVStore {
	return &memoryCartRepository{
		values: make(map[string]string),
	}
}

func (r *memoryCartRepository) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("key is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	return value, ok, nil
}

func (r *memoryCartRepository) Set(_ context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}

func (r *memoryCartRepository) Delete(_ context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}
