package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/craftcart/internal/db"
	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/nikolayk812/craftcart/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	q *db.Queries
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{
		q: db.New(pool),
	}
}

func (r *catalogRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if id == uuid.Nil {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetProduct(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	product, err := mapProductToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductToDomain: %w", err)
	}

	return product, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := mapProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}

func (r *catalogRepository) AddProduct(ctx context.Context, product domain.Product) (uuid.UUID, error) {
	if err := product.Validate(); err != nil {
		return uuid.Nil, err
	}

	groups, err := json.Marshal(nonNilGroups(product.CustomizationGroups))
	if err != nil {
		return uuid.Nil, fmt.Errorf("json.Marshal: %w", err)
	}

	id, err := r.q.InsertProduct(ctx, db.InsertProductParams{
		Title:               product.Title,
		Description:         product.Description,
		Category:            product.Category,
		SubCategory:         product.SubCategory,
		Image:               product.Image,
		PriceAmount:         product.Price.Amount,
		PriceCurrency:       product.Price.Currency.String(),
		OnSale:              product.OnSale,
		SalePriceAmount:     salePriceAmount(product),
		CustomizationGroups: groups,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertProduct: %w", err)
	}

	return id, nil
}

func (r *catalogRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	if product.ID == uuid.Nil {
		return fmt.Errorf("id is empty")
	}
	if err := product.Validate(); err != nil {
		return err
	}

	groups, err := json.Marshal(nonNilGroups(product.CustomizationGroups))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	rowsAffected, err := r.q.UpdateProduct(ctx, db.UpdateProductParams{
		ID:                  product.ID,
		Title:               product.Title,
		Description:         product.Description,
		Category:            product.Category,
		SubCategory:         product.SubCategory,
		Image:               product.Image,
		PriceAmount:         product.Price.Amount,
		PriceCurrency:       product.Price.Currency.String(),
		OnSale:              product.OnSale,
		SalePriceAmount:     salePriceAmount(product),
		CustomizationGroups: groups,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateProduct: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func (r *catalogRepository) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, fmt.Errorf("id is empty")
	}

	rowsAffected, err := r.q.DeleteProduct(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeleteProduct: %w", err)
	}

	return rowsAffected > 0, nil
}

func salePriceAmount(p domain.Product) decimal.Decimal {
	if !p.OnSale {
		return decimal.Zero
	}
	return p.SalePrice.Amount
}

func nonNilGroups(groups []domain.CustomizationGroup) []domain.CustomizationGroup {
	if groups == nil {
		return []domain.CustomizationGroup{}
	}
	return groups
}

func mapProductToDomain(row db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	var groups []domain.CustomizationGroup
	if len(row.CustomizationGroups) > 0 {
		if err := json.Unmarshal(row.CustomizationGroups, &groups); err != nil {
			return domain.Product{}, fmt.Errorf("json.Unmarshal: %w", err)
		}
	}
	if len(groups) == 0 {
		groups = nil
	}

	product := domain.Product{
		ID:                  row.ID,
		Title:               row.Title,
		Description:         row.Description,
		Category:            row.Category,
		SubCategory:         row.SubCategory,
		Image:               row.Image,
		Price:               domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		OnSale:              row.OnSale,
		CustomizationGroups: groups,
		CreatedAt:           row.CreatedAt,
	}
	if row.OnSale {
		product.SalePrice = domain.Money{Amount: row.SalePriceAmount, Currency: parsedCurrency}
	}

	return product, nil
}
