// Package catalog narrows and orders a product listing the way the
// storefront search page does.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/nikolayk812/craftcart/internal/pricing"
	"github.com/shopspring/decimal"
)

type Sort string

const (
	SortDefault   Sort = "default"
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
)

// AllCategories disables the category filter.
const AllCategories = "All"

type Filter struct {
	// Query matches title, description or category, case-insensitively.
	Query    string
	Category string
	MinPrice decimal.NullDecimal
	MaxPrice decimal.NullDecimal
	Sort     Sort
}

func (f Filter) Validate() error {
	switch f.Sort {
	case "", SortDefault, SortPriceAsc, SortPriceDesc:
	default:
		return fmt.Errorf("sort[%s] is not valid", f.Sort)
	}

	if f.MinPrice.Valid && f.MaxPrice.Valid && f.MinPrice.Decimal.GreaterThan(f.MaxPrice.Decimal) {
		return fmt.Errorf("min price[%s] is above max price[%s]", f.MinPrice.Decimal, f.MaxPrice.Decimal)
	}

	return nil
}

// Search returns the products matching f. Price bounds and sorting use the
// price a shopper pays before customizations. The default sort keeps the
// input order; price sorts are stable.
func Search(products []domain.Product, f Filter) []domain.Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if f.Category != "" && f.Category != AllCategories && !strings.EqualFold(p.Category, f.Category) {
			continue
		}

		price := pricing.BasePrice(p).Amount
		if f.MinPrice.Valid && price.LessThan(f.MinPrice.Decimal) {
			continue
		}
		if f.MaxPrice.Valid && price.GreaterThan(f.MaxPrice.Decimal) {
			continue
		}

		result = append(result, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(result, func(a, b domain.Product) int {
			return pricing.BasePrice(a).Amount.Cmp(pricing.BasePrice(b).Amount)
		})
	case SortPriceDesc:
		slices.SortStableFunc(result, func(a, b domain.Product) int {
			return pricing.BasePrice(b).Amount.Cmp(pricing.BasePrice(a).Amount)
		})
	}

	return result
}

// Categories lists the distinct categories in first-seen order.
func Categories(products []domain.Product) []string {
	var result []string
	for _, p := range products {
		if p.Category != "" && !slices.Contains(result, p.Category) {
			result = append(result, p.Category)
		}
	}
	return result
}

func matchesQuery(p domain.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}
