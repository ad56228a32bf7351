// Package pricing resolves the unit price charged for a product given its
// sale state and the shopper's customization selection.
package pricing

import (
	"github.com/nikolayk812/craftcart/internal/domain"
)

// BasePrice is the sale price when the product carries a usable sale,
// otherwise the regular price. A corrupt sale price is never charged.
func BasePrice(p domain.Product) domain.Money {
	if p.HasValidSale() {
		return p.SalePrice
	}
	return p.Price
}

// ResolveUnitPrice returns the base price plus the deltas of every active
// choice. Groups absent from sel contribute nothing and choices that no
// longer exist on the product are ignored. No rounding is applied.
func ResolveUnitPrice(p domain.Product, sel domain.Selection) domain.Money {
	price := BasePrice(p)

	for _, g := range p.CustomizationGroups {
		for _, c := range sel.ActiveChoices(g) {
			price.Amount = price.Amount.Add(c.Price)
		}
	}

	return price
}

// NewCartItem builds the line item to pass to the cart store.
func NewCartItem(p domain.Product, sel domain.Selection) domain.CartItem {
	return domain.CartItem{
		ProductID:      p.ID,
		Title:          p.Title,
		Image:          p.Image,
		Price:          ResolveUnitPrice(p, sel),
		Quantity:       1,
		Customizations: sel.Snapshot(p),
	}
}
