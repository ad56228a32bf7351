package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/craftcart/internal/db"
	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/nikolayk812/craftcart/internal/port"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// CreateOrder inserts the order and its line items in one transaction.
// A nil order ID is replaced with a fresh one.
func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (uuid.UUID, error) {
	if len(order.Items) == 0 {
		return uuid.Nil, fmt.Errorf("%w: order has no items", domain.ErrInvalidOrder)
	}

	id := order.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := order.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (uuid.UUID, error) {
		err := q.InsertOrder(ctx, db.InsertOrderParams{
			ID:                   id,
			FullName:             order.Shipping.FullName,
			Email:                order.Shipping.Email,
			Address:              order.Shipping.Address,
			City:                 order.Shipping.City,
			ZipCode:              order.Shipping.ZipCode,
			Country:              order.Shipping.Country,
			SubtotalAmount:       order.Subtotal.Amount,
			DeliveryChargeAmount: order.DeliveryCharge.Amount,
			TotalAmount:          order.Total.Amount,
			Currency:             order.Total.Currency.String(),
			PaymentMethod:        string(order.PaymentMethod),
			Status:               string(order.Status),
			CreatedAt:            createdAt,
			UpdatedAt:            updatedAt,
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("q.InsertOrder: %w", err)
		}

		for i, item := range order.Items {
			customizations, err := json.Marshal(item.Customizations)
			if err != nil {
				return uuid.Nil, fmt.Errorf("json.Marshal: %w", err)
			}

			err = q.InsertOrderItem(ctx, db.InsertOrderItemParams{
				OrderID:        id,
				Position:       int32(i),
				ProductID:      item.ProductID,
				Title:          item.Title,
				Image:          item.Image,
				PriceAmount:    item.Price.Amount,
				Quantity:       int32(item.Quantity),
				Customizations: customizations,
			})
			if err != nil {
				return uuid.Nil, fmt.Errorf("q.InsertOrderItem: %w", err)
			}
		}

		return id, nil
	})
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	if id == uuid.Nil {
		return domain.Order{}, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetOrder(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
	}

	return r.loadOrder(ctx, row)
}

// ListOrders returns all orders, newest first.
func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.q.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := r.loadOrder(ctx, row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (bool, error) {
	if id == uuid.Nil {
		return false, fmt.Errorf("id is empty")
	}
	if !status.Valid() {
		return false, fmt.Errorf("status[%s] is not valid", status)
	}

	rowsAffected, err := r.q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		return false, fmt.Errorf("q.UpdateOrderStatus: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *orderRepository) loadOrder(ctx context.Context, row db.Order) (domain.Order, error) {
	itemRows, err := r.q.GetOrderItems(ctx, row.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrderItems: %w", err)
	}

	order, err := mapOrderToDomain(row, itemRows)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderToDomain: %w", err)
	}

	return order, nil
}

func mapOrderToDomain(row db.Order, itemRows []db.OrderItem) (domain.Order, error) {
	parsedCurrency, err := currency.ParseISO(row.Currency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	items := make([]domain.CartItem, 0, len(itemRows))
	for _, ir := range itemRows {
		var customizations []domain.SelectedCustomization
		if err := json.Unmarshal(ir.Customizations, &customizations); err != nil {
			return domain.Order{}, fmt.Errorf("json.Unmarshal: %w", err)
		}

		items = append(items, domain.CartItem{
			ProductID:      ir.ProductID,
			Title:          ir.Title,
			Image:          ir.Image,
			Price:          domain.Money{Amount: ir.PriceAmount, Currency: parsedCurrency},
			Quantity:       int(ir.Quantity),
			Customizations: customizations,
		})
	}

	return domain.Order{
		ID: row.ID,
		Shipping: domain.ShippingInfo{
			FullName: row.FullName,
			Email:    row.Email,
			Address:  row.Address,
			City:     row.City,
			ZipCode:  row.ZipCode,
			Country:  row.Country,
		},
		Items:          items,
		Subtotal:       domain.Money{Amount: row.SubtotalAmount, Currency: parsedCurrency},
		DeliveryCharge: domain.Money{Amount: row.DeliveryChargeAmount, Currency: parsedCurrency},
		Total:          domain.Money{Amount: row.TotalAmount, Currency: parsedCurrency},
		PaymentMethod:  domain.PaymentMethod(row.PaymentMethod),
		Status:         domain.OrderStatus(row.Status),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}
