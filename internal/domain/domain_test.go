package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func usd(s string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(s), Currency: currency.USD}
}

func choice(name, price string) domain.CustomizationChoice {
	return domain.CustomizationChoice{Name: name, Price: decimal.RequireFromString(price)}
}

// craftedMug is on sale with a single Size group and a multiple Add-ons group.
func craftedMug() domain.Product {
	return domain.Product{
		ID:        uuid.MustParse(gofakeit.UUID()),
		Title:     "Hand-thrown mug",
		Price:     usd("20.00"),
		OnSale:    true,
		SalePrice: usd("15.00"),
		CustomizationGroups: []domain.CustomizationGroup{
			{
				Name:    "Size",
				Kind:    domain.SelectionSingle,
				Choices: []domain.CustomizationChoice{choice("Small", "0"), choice("Large", "3.00")},
			},
			{
				Name:    "Add-ons",
				Kind:    domain.SelectionMultiple,
				Choices: []domain.CustomizationChoice{choice("GiftWrap", "2.50"), choice("Card", "1.00")},
			},
		},
	}
}

func randomCartItem() domain.CartItem {
	return domain.CartItem{
		ProductID: uuid.MustParse(gofakeit.UUID()),
		Title:     gofakeit.ProductName(),
		Image:     gofakeit.URL(),
		Price: domain.Money{
			Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
			Currency: currency.USD,
		},
	}
}

var moneyComparer = cmp.Options{
	cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	}),
	cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	}),
}

func assertMoney(t *testing.T, want string, got domain.Money) {
	t.Helper()

	assert.True(t, decimal.RequireFromString(want).Equal(got.Amount), "want %s, got %s", want, got.Amount)
}
