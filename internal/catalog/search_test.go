package catalog_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/craftcart/internal/catalog"
	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func usd(s string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(s), Currency: currency.USD}
}

func product(title, category, price string) domain.Product {
	return domain.Product{
		ID:          uuid.MustParse(gofakeit.UUID()),
		Title:       title,
		Description: title + " made by hand",
		Category:    category,
		Price:       usd(price),
	}
}

func onSale(p domain.Product, sale string) domain.Product {
	p.OnSale = true
	p.SalePrice = usd(sale)
	return p
}

func bound(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func titles(products []domain.Product) []string {
	result := make([]string, 0, len(products))
	for _, p := range products {
		result = append(result, p.Title)
	}
	return result
}

func TestSearch(t *testing.T) {
	mug := onSale(product("Hand-thrown mug", "Ceramics", "20.00"), "15.00")
	vase := product("Celadon vase", "Ceramics", "45.00")
	scarf := product("Wool scarf", "Textiles", "30.00")
	// a sale price above the regular one is not charged, so 12.00 counts
	basket := onSale(product("Willow basket", "Weaving", "12.00"), "18.00")
	basket.Description = "Woven from local willow, fits a ceramic bowl"

	all := []domain.Product{mug, vase, scarf, basket}

	tests := []struct {
		name   string
		filter catalog.Filter
		want   []string
	}{
		{
			name:   "empty filter keeps order",
			filter: catalog.Filter{},
			want:   []string{mug.Title, vase.Title, scarf.Title, basket.Title},
		},
		{
			name:   "query matches title case-insensitively",
			filter: catalog.Filter{Query: "  MUG "},
			want:   []string{mug.Title},
		},
		{
			name:   "query matches category and description",
			filter: catalog.Filter{Query: "ceramic"},
			want:   []string{mug.Title, vase.Title, basket.Title},
		},
		{
			name:   "category filter",
			filter: catalog.Filter{Category: "textiles"},
			want:   []string{scarf.Title},
		},
		{
			name:   "all categories",
			filter: catalog.Filter{Category: catalog.AllCategories},
			want:   []string{mug.Title, vase.Title, scarf.Title, basket.Title},
		},
		{
			name:   "price range uses the charged price",
			filter: catalog.Filter{MinPrice: bound("12"), MaxPrice: bound("15")},
			want:   []string{mug.Title, basket.Title},
		},
		{
			name:   "price ascending",
			filter: catalog.Filter{Sort: catalog.SortPriceAsc},
			want:   []string{basket.Title, mug.Title, scarf.Title, vase.Title},
		},
		{
			name:   "price descending within a category",
			filter: catalog.Filter{Category: "Ceramics", Sort: catalog.SortPriceDesc},
			want:   []string{vase.Title, mug.Title},
		},
		{
			name:   "nothing matches",
			filter: catalog.Filter{Query: "teapot"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.filter.Validate())
			assert.Equal(t, tt.want, titles(catalog.Search(all, tt.filter)))
		})
	}
}

func TestFilter_Validate(t *testing.T) {
	err := catalog.Filter{Sort: "rating"}.Validate()
	require.EqualError(t, err, "sort[rating] is not valid")

	err = catalog.Filter{MinPrice: bound("10"), MaxPrice: bound("5")}.Validate()
	require.EqualError(t, err, "min price[10] is above max price[5]")
}

func TestCategories(t *testing.T) {
	products := []domain.Product{
		product("a", "Ceramics", "1"),
		product("b", "Textiles", "1"),
		product("c", "Ceramics", "1"),
		product("d", "", "1"),
	}

	assert.Equal(t, []string{"Ceramics", "Textiles"}, catalog.Categories(products))
}
