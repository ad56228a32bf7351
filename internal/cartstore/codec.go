package cartstore

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type itemRecord struct {
	ID             uuid.UUID                      `json:"id"`
	Title          string                         `json:"title"`
	Price          decimal.Decimal                `json:"price"`
	Currency       string                         `json:"currency"`
	Image          string                         `json:"image"`
	Quantity       int                            `json:"quantity"`
	Customizations []domain.SelectedCustomization `json:"customizations,omitempty"`
}

// Encode serializes line items as a JSON array. Prices are written as exact
// decimal strings.
func Encode(items []domain.CartItem) (string, error) {
	records := make([]itemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, itemRecord{
			ID:             item.ProductID,
			Title:          item.Title,
			Price:          item.Price.Amount,
			Currency:       item.Price.Currency.String(),
			Image:          item.Image,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		})
	}

	b, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}

	return string(b), nil
}

// Decode parses the output of Encode and rejects records that would break
// cart invariants.
func Decode(s string) ([]domain.CartItem, error) {
	var records []itemRecord
	if err := json.Unmarshal([]byte(s), &records); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	items := make([]domain.CartItem, 0, len(records))
	seen := make(map[uuid.UUID]struct{}, len(records))

	for i, r := range records {
		if r.ID == uuid.Nil {
			return nil, fmt.Errorf("item[%d]: id is empty", i)
		}
		if _, ok := seen[r.ID]; ok {
			return nil, fmt.Errorf("item[%d]: duplicate id[%s]", i, r.ID)
		}
		seen[r.ID] = struct{}{}

		if r.Quantity < 1 {
			return nil, fmt.Errorf("item[%d]: quantity[%d] is not positive", i, r.Quantity)
		}
		if r.Price.IsNegative() {
			return nil, fmt.Errorf("item[%d]: price is negative", i)
		}

		cur, err := currency.ParseISO(r.Currency)
		if err != nil {
			return nil, fmt.Errorf("item[%d]: currency[%s] is not valid: %w", i, r.Currency, err)
		}

		items = append(items, domain.CartItem{
			ProductID:      r.ID,
			Title:          r.Title,
			Image:          r.Image,
			Price:          domain.Money{Amount: r.Price, Currency: cur},
			Quantity:       r.Quantity,
			Customizations: r.Customizations,
		})
	}

	return items, nil
}
