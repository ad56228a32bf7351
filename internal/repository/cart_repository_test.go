package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/craftcart/internal/port"
	"github.com/nikolayk812/craftcart/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

// kvContract is shared by every port.KVStore implementation.
func kvContract(t *testing.T, kv port.KVStore) {
	t.Helper()

	tests := []struct {
		name      string
		key       string
		values    []string
		wantValue string
		wantFound bool
		wantError string
	}{
		{
			name:      "get missing key: not found",
			key:       "my-store-cart:" + gofakeit.UUID(),
			wantFound: false,
		},
		{
			name:      "set then get: ok",
			key:       "my-store-cart:" + gofakeit.UUID(),
			values:    []string{`[{"id":"a"}]`},
			wantValue: `[{"id":"a"}]`,
			wantFound: true,
		},
		{
			name:      "last write wins: ok",
			key:       "my-store-cart:" + gofakeit.UUID(),
			values:    []string{`[{"id":"a"}]`, `[]`},
			wantValue: `[]`,
			wantFound: true,
		},
		{
			name:      "empty key: error",
			key:       "",
			wantError: "key is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()

			for _, v := range tt.values {
				require.NoError(t, kv.Set(ctx, tt.key, v))
			}

			value, found, err := kv.Get(ctx, tt.key)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantValue, value)
		})
	}

	t.Run("delete: ok", func(t *testing.T) {
		ctx := t.Context()
		key := "my-store-cart:" + gofakeit.UUID()

		require.NoError(t, kv.Set(ctx, key, "[]"))
		require.NoError(t, kv.Delete(ctx, key))
		require.NoError(t, kv.Delete(ctx, key))

		_, found, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

type cartRepositorySuite struct {
	suite.Suite

	repo      port.KVStore
	pool      *pgxpool.Pool
	container testcontainers.Container
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before all tests in the suite
func (suite *cartRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	container, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)
	suite.container = container

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewCart(suite.pool)
}

// after all tests in the suite
func (suite *cartRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *cartRepositorySuite) TestContract() {
	defer suite.deleteAll()

	kvContract(suite.T(), suite.repo)
}

func (suite *cartRepositorySuite) TestWithTx() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	key := "my-store-cart:" + gofakeit.UUID()

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, repository.NewCartWithTx(tx).Set(ctx, key, "[]"))
	require.NoError(t, tx.Rollback(ctx))

	_, found, err := suite.repo.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}

func (suite *cartRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE cart_snapshots")
	suite.NoError(err)
}
