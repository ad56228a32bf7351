package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/craftcart/internal/domain"
)

type CatalogRepository interface {
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	AddProduct(ctx context.Context, product domain.Product) (uuid.UUID, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error)
}
