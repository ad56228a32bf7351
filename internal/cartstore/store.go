// Package cartstore holds the shopper's cart for one session and persists it
// to durable key-value storage after every mutation.
package cartstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/nikolayk812/craftcart/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// ErrNotPersisted marks a mutation that was applied in memory but could not
// be written to storage. Callers should treat it as a warning.
var ErrNotPersisted = errors.New("cart not persisted")

type Store struct {
	mu     sync.Mutex
	kv     port.KVStore
	key    string
	cart   domain.Cart
	logger *zap.Logger
}

// New loads the cart stored under key. It never fails: missing, malformed
// or unreachable state yields an empty cart. kv may be nil, in which case
// the cart lives in memory only.
func New(ctx context.Context, kv port.KVStore, key string, cur currency.Unit, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		kv:     kv,
		key:    key,
		cart:   domain.NewCart(cur),
		logger: logger.With(zap.String("cart_key", key)),
	}
	s.load(ctx)

	return s
}

func (s *Store) load(ctx context.Context) {
	if s.kv == nil {
		s.logger.Warn("cart storage unavailable, starting empty")
		return
	}

	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("failed to read cart, starting empty", zap.Error(err))
		return
	}
	if !found {
		return
	}

	items, err := Decode(raw)
	if err != nil {
		s.logger.Warn("malformed cart, starting empty", zap.Error(err))
		return
	}

	for _, item := range items {
		if item.Price.Currency != s.cart.Currency {
			s.logger.Warn("cart currency changed, starting empty",
				zap.Stringer("stored", item.Price.Currency),
				zap.Stringer("expected", s.cart.Currency))
			return
		}
	}

	s.cart.Items = items
}

// Add merges item into the cart by product ID. The first add of a product
// fixes its price; later adds only increment the quantity.
func (s *Store) Add(ctx context.Context, item domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.AddItem(item); err != nil {
		return fmt.Errorf("cart.AddItem: %w", err)
	}

	return s.persist(ctx)
}

// Remove deletes the line item for productID. Unknown IDs are a no-op.
func (s *Store) Remove(ctx context.Context, productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.RemoveItem(productID) {
		return nil
	}

	return s.persist(ctx)
}

// UpdateQuantity sets the quantity of productID; qty <= 0 removes it.
func (s *Store) UpdateQuantity(ctx context.Context, productID uuid.UUID, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.UpdateQuantity(productID, qty) {
		return nil
	}

	return s.persist(ctx)
}

// Clear empties the cart and deletes its key, so a later load finds nothing.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()

	if s.kv == nil {
		return fmt.Errorf("%w: storage unavailable", ErrNotPersisted)
	}

	if err := s.kv.Delete(ctx, s.key); err != nil {
		s.logger.Warn("failed to delete cart", zap.Error(err))
		return fmt.Errorf("%w: kv.Delete: %w", ErrNotPersisted, err)
	}

	return nil
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := slices.Clone(s.cart.Items)
	for i := range items {
		items[i].Customizations = slices.Clone(items[i].Customizations)
	}

	return items
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.ItemCount()
}

func (s *Store) Total() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Total()
}

func (s *Store) Currency() currency.Unit {
	return s.cart.Currency
}

func (s *Store) Key() string {
	return s.key
}

// persist must be called with mu held.
func (s *Store) persist(ctx context.Context) error {
	if s.kv == nil {
		return fmt.Errorf("%w: storage unavailable", ErrNotPersisted)
	}

	raw, err := Encode(s.cart.Items)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}

	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		s.logger.Warn("failed to persist cart", zap.Error(err))
		return fmt.Errorf("%w: kv.Set: %w", ErrNotPersisted, err)
	}

	return nil
}
