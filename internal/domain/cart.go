package domain

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

// Cart is an ordered set of line items keyed by product ID.
// Quantities are always >= 1 and no two items share a product ID.
type Cart struct {
	Currency currency.Unit
	Items    []CartItem
}

type CartItem struct {
	ProductID uuid.UUID
	Title     string
	Image     string
	Price     Money
	Quantity  int

	Customizations []SelectedCustomization
}

func (i CartItem) LineTotal() Money {
	return i.Price.Mul(i.Quantity)
}

func NewCart(cur currency.Unit) Cart {
	return Cart{Currency: cur}
}

func (c *Cart) index(productID uuid.UUID) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.ProductID == productID
	})
}

func (c *Cart) Item(productID uuid.UUID) (CartItem, bool) {
	i := c.index(productID)
	if i < 0 {
		return CartItem{}, false
	}
	return c.Items[i], true
}

// AddItem increments the quantity of an existing line item by one, keeping
// its original price and customizations, or appends item with quantity 1.
func (c *Cart) AddItem(item CartItem) error {
	if item.ProductID == uuid.Nil {
		return fmt.Errorf("productID is empty")
	}

	// the stored price wins, the incoming one is not looked at
	if i := c.index(item.ProductID); i >= 0 {
		c.Items[i].Quantity++
		return nil
	}

	if item.Price.Currency != c.Currency {
		return fmt.Errorf("%w: cart[%s] item[%s]", ErrCurrencyMismatch, c.Currency, item.Price.Currency)
	}
	if item.Price.Amount.IsNegative() {
		return fmt.Errorf("price is negative")
	}

	item.Quantity = 1
	item.Customizations = slices.Clone(item.Customizations)
	c.Items = append(c.Items, item)

	return nil
}

// RemoveItem reports whether a line item was removed.
func (c *Cart) RemoveItem(productID uuid.UUID) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}

	c.Items = slices.Delete(c.Items, i, i+1)
	return true
}

// UpdateQuantity sets an absolute quantity; qty <= 0 removes the line item.
// It reports whether the cart changed.
func (c *Cart) UpdateQuantity(productID uuid.UUID, qty int) bool {
	if qty <= 0 {
		return c.RemoveItem(productID)
	}

	i := c.index(productID)
	if i < 0 {
		return false
	}
	if c.Items[i].Quantity == qty {
		return false
	}

	c.Items[i].Quantity = qty
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Total is recomputed from the current items on every call.
func (c *Cart) Total() Money {
	total := ZeroMoney(c.Currency)
	for _, item := range c.Items {
		total.Amount = total.Amount.Add(item.LineTotal().Amount)
	}
	return total
}
