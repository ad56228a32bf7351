// Package kafka publishes order lifecycle events.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/nikolayk812/craftcart/internal/port"
	"github.com/segmentio/kafka-go"
)

const EventOrderPlaced = "order.placed"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type orderPublisher struct {
	writer messageWriter
}

func NewOrderPublisher(writer messageWriter) port.OrderEventPublisher {
	return &orderPublisher{writer: writer}
}

// NewWriter builds a writer that keeps all events of one order on one
// partition.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

type OrderPlacedEvent struct {
	OrderID       uuid.UUID        `json:"orderId"`
	Email         string           `json:"email"`
	Items         []OrderEventItem `json:"items"`
	Subtotal      string           `json:"subtotal"`
	Delivery      string           `json:"deliveryCharge"`
	Total         string           `json:"totalAmount"`
	Currency      string           `json:"currency"`
	PaymentMethod string           `json:"paymentMethod"`
	Status        string           `json:"status"`
	PlacedAt      time.Time        `json:"placedAt"`
}

type OrderEventItem struct {
	ProductID uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Price     string    `json:"price"`
	Quantity  int       `json:"quantity"`
}

func (p *orderPublisher) PublishOrderPlaced(ctx context.Context, order domain.Order) error {
	payload, err := json.Marshal(newOrderPlacedEvent(order))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventOrderPlaced)},
			{Key: "aggregate_type", Value: []byte("order")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writer.WriteMessages: %w", err)
	}

	return nil
}

func newOrderPlacedEvent(order domain.Order) OrderPlacedEvent {
	items := make([]OrderEventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderEventItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price.Amount.String(),
			Quantity:  item.Quantity,
		})
	}

	return OrderPlacedEvent{
		OrderID:       order.ID,
		Email:         order.Shipping.Email,
		Items:         items,
		Subtotal:      order.Subtotal.Amount.String(),
		Delivery:      order.DeliveryCharge.Amount.String(),
		Total:         order.Total.Amount.String(),
		Currency:      order.Total.Currency.String(),
		PaymentMethod: string(order.PaymentMethod),
		Status:        string(order.Status),
		PlacedAt:      order.CreatedAt,
	}
}
