package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

// PaymentCashOnDelivery is the only method the storefront accepts.
const PaymentCashOnDelivery PaymentMethod = "cod"

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type ShippingInfo struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	ZipCode  string `json:"zipCode" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

type Order struct {
	ID       uuid.UUID
	Shipping ShippingInfo
	Items    []CartItem

	Subtotal       Money
	DeliveryCharge Money
	Total          Money

	PaymentMethod PaymentMethod
	Status        OrderStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
