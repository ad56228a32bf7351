package repository_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var domainComparer = cmp.Options{
	cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	}),
	cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	}),
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(10, 100)),
		Currency: randomCurrency(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func randomProduct() domain.Product {
	price := randomMoney()

	return domain.Product{
		Title:       gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Category:    gofakeit.ProductCategory(),
		SubCategory: gofakeit.ProductMaterial(),
		Image:       gofakeit.URL(),
		Price:       price,
		OnSale:      true,
		SalePrice:   domain.Money{Amount: price.Amount.Div(decimal.NewFromInt(2)), Currency: price.Currency},
		CustomizationGroups: []domain.CustomizationGroup{
			{
				Name: "Size",
				Kind: domain.SelectionSingle,
				Choices: []domain.CustomizationChoice{
					{Name: "Small", Price: decimal.Zero},
					{Name: "Large", Price: decimal.RequireFromString("3.00")},
				},
			},
			{
				Name: "Add-ons",
				Kind: domain.SelectionMultiple,
				Choices: []domain.CustomizationChoice{
					{Name: "GiftWrap", Price: decimal.RequireFromString("2.50")},
				},
			},
		},
	}
}

func randomShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		FullName: gofakeit.Name(),
		Email:    gofakeit.Email(),
		Address:  gofakeit.Street(),
		City:     gofakeit.City(),
		ZipCode:  gofakeit.Zip(),
		Country:  gofakeit.Country(),
	}
}

func randomOrder() domain.Order {
	cur := randomCurrency()
	money := func(s string) domain.Money {
		return domain.Money{Amount: decimal.RequireFromString(s), Currency: cur}
	}

	return domain.Order{
		ID:       uuid.MustParse(gofakeit.UUID()),
		Shipping: randomShipping(),
		Items: []domain.CartItem{
			{
				ProductID: uuid.MustParse(gofakeit.UUID()),
				Title:     gofakeit.ProductName(),
				Image:     gofakeit.URL(),
				Price:     money("20.50"),
				Quantity:  2,
				Customizations: []domain.SelectedCustomization{
					{Group: "Size", Choices: []domain.CustomizationChoice{{Name: "Large", Price: decimal.RequireFromString("3.00")}}},
				},
			},
			{
				ProductID:      uuid.MustParse(gofakeit.UUID()),
				Title:          gofakeit.ProductName(),
				Image:          gofakeit.URL(),
				Price:          money("7.25"),
				Quantity:       1,
				Customizations: []domain.SelectedCustomization{},
			},
		},
		Subtotal:       money("48.25"),
		DeliveryCharge: money("5.00"),
		Total:          money("53.25"),
		PaymentMethod:  domain.PaymentCashOnDelivery,
		Status:         domain.OrderPending,
	}
}
