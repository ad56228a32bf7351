package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/nikolayk812/craftcart/internal/port"
	"github.com/nikolayk812/craftcart/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

type catalogRepositorySuite struct {
	suite.Suite

	repo      port.CatalogRepository
	pool      *pgxpool.Pool
	container testcontainers.Container
}

func TestCatalogRepositorySuite(t *testing.T) {
	suite.Run(t, new(catalogRepositorySuite))
}

func (suite *catalogRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	container, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)
	suite.container = container

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewCatalog(suite.pool)
}

func (suite *catalogRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *catalogRepositorySuite) TestAddProduct() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		product   func() domain.Product
		wantError string
	}{
		{
			name:    "add product with customizations: ok",
			product: randomProduct,
		},
		{
			name: "add product without sale or customizations: ok",
			product: func() domain.Product {
				p := randomProduct()
				p.OnSale = false
				p.SalePrice = domain.Money{}
				p.CustomizationGroups = nil
				return p
			},
		},
		{
			name: "add product with sale price above price: error",
			product: func() domain.Product {
				p := randomProduct()
				p.SalePrice.Amount = p.Price.Amount.Add(decimal.NewFromInt(1))
				return p
			},
			wantError: "invalid product: invalid sale price for product on sale",
		},
		{
			name: "add product without title: error",
			product: func() domain.Product {
				p := randomProduct()
				p.Title = ""
				return p
			},
			wantError: "invalid product: title is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()
			product := tt.product()

			id, err := suite.repo.AddProduct(ctx, product)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			require.NotEqual(t, uuid.Nil, id)

			actual, err := suite.repo.GetProduct(ctx, id)
			require.NoError(t, err)

			product.ID = id
			assertProduct(t, product, actual)
		})
	}
}

func (suite *catalogRepositorySuite) TestGetProduct_NotFound() {
	_, err := suite.repo.GetProduct(suite.T().Context(), uuid.MustParse(gofakeit.UUID()))
	suite.Require().ErrorIs(err, domain.ErrProductNotFound)
}

func (suite *catalogRepositorySuite) TestListProducts() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	products, err := suite.repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		id, err := suite.repo.AddProduct(ctx, randomProduct())
		require.NoError(t, err)
		ids = append(ids, id)
	}

	products, err = suite.repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	var got []uuid.UUID
	for _, p := range products {
		got = append(got, p.ID)
	}
	assert.ElementsMatch(t, ids, got)
}

func (suite *catalogRepositorySuite) TestUpdateProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := randomProduct()
	id, err := suite.repo.AddProduct(ctx, product)
	require.NoError(t, err)

	product.ID = id
	product.Title = gofakeit.ProductName()
	product.OnSale = false
	product.SalePrice = domain.Money{}
	product.CustomizationGroups = product.CustomizationGroups[:1]
	require.NoError(t, suite.repo.UpdateProduct(ctx, product))

	actual, err := suite.repo.GetProduct(ctx, id)
	require.NoError(t, err)
	assertProduct(t, product, actual)

	product.ID = uuid.MustParse(gofakeit.UUID())
	err = suite.repo.UpdateProduct(ctx, product)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func (suite *catalogRepositorySuite) TestDeleteProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	id, err := suite.repo.AddProduct(ctx, randomProduct())
	require.NoError(t, err)

	deleted, err := suite.repo.DeleteProduct(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.repo.DeleteProduct(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = suite.repo.DeleteProduct(ctx, uuid.Nil)
	require.EqualError(t, err, "id is empty")
}

func (suite *catalogRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE products CASCADE")
	suite.NoError(err)
}

func assertProduct(t *testing.T, expected, actual domain.Product) {
	t.Helper()

	opts := append(cmp.Options{
		cmpopts.IgnoreFields(domain.Product{}, "CreatedAt"),
		cmpopts.EquateEmpty(),
	}, domainComparer...)

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
}
