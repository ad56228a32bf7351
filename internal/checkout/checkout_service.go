// Package checkout turns a cart into a cash-on-delivery order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/nikolayk812/craftcart/internal/port"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

// Cart is the part of the cart store checkout depends on.
type Cart interface {
	Items() []domain.CartItem
	Total() domain.Money
	Clear(ctx context.Context) error
}

type Service struct {
	orders   port.OrderRepository
	events   port.OrderEventPublisher
	delivery domain.Money
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// NewService builds the checkout service. events may be nil when no broker
// is configured.
func NewService(orders port.OrderRepository, events port.OrderEventPublisher, delivery domain.Money, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		orders:   orders,
		events:   events,
		delivery: delivery,
		validate: validator.New(),
		logger:   logger.Named("checkout"),
		now:      time.Now,
	}
}

func (s *Service) DeliveryCharge() domain.Money {
	return s.delivery
}

// Quote returns subtotal, delivery charge and grand total for the cart.
func (s *Service) Quote(cart Cart) (subtotal, delivery, total domain.Money, err error) {
	subtotal = cart.Total()

	total, err = subtotal.Add(s.delivery)
	if err != nil {
		return domain.Money{}, domain.Money{}, domain.Money{}, fmt.Errorf("subtotal.Add: %w", err)
	}

	return subtotal, s.delivery, total, nil
}

// PlaceOrder submits the cart as a pending order. The cart is cleared only
// after the order is stored; a failure to persist the cleared cart is logged
// and does not fail the order.
func (s *Service) PlaceOrder(ctx context.Context, cart Cart, shipping domain.ShippingInfo, method domain.PaymentMethod) (domain.Order, error) {
	if err := s.validate.Struct(shipping); err != nil {
		return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrInvalidOrder, err)
	}
	if method != domain.PaymentCashOnDelivery {
		return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedMethod, method)
	}

	items := cart.Items()
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	subtotal, delivery, total, err := s.Quote(cart)
	if err != nil {
		return domain.Order{}, err
	}

	// postgres keeps microseconds; the returned order and the event match the stored row
	now := s.now().UTC().Truncate(time.Microsecond)
	order := domain.Order{
		ID:             uuid.New(),
		Shipping:       shipping,
		Items:          items,
		Subtotal:       subtotal,
		DeliveryCharge: delivery,
		Total:          total,
		PaymentMethod:  method,
		Status:         domain.OrderPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	id, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.CreateOrder: %w", err)
	}
	order.ID = id

	logger := s.logger.With(zap.Stringer("order_id", order.ID))
	logger.Info("order placed",
		zap.Int("items", len(order.Items)),
		zap.String("total", order.Total.String()))

	if s.events != nil {
		if err := s.events.PublishOrderPlaced(ctx, order); err != nil {
			logger.Error("failed to publish order placed event", zap.Error(err))
		}
	}

	if err := cart.Clear(ctx); err != nil {
		logger.Warn("cart cleared in memory only", zap.Error(err))
	}

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.GetOrder: %w", err)
	}
	return order, nil
}

// ListOrders returns all orders, newest first.
func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("orders.ListOrders: %w", err)
	}
	return orders, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status[%s]", domain.ErrInvalidOrder, status)
	}

	updated, err := s.orders.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("orders.UpdateOrderStatus: %w", err)
	}
	if !updated {
		return domain.ErrOrderNotFound
	}

	s.logger.Info("order status updated", zap.Stringer("order_id", id), zap.String("status", string(status)))
	return nil
}
