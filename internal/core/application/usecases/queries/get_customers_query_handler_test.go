package queries_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/memory/articlerepo"
	"ordering/internal/adapters/out/memory/customerrepo"
	"ordering/internal/adapters/out/memory/orderrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queryFixture struct {
	factory   *services.DataFactory
	customers *customerrepo.Repository
	articles  *articlerepo.Repository
	orders    *orderrepo.Repository
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()
	factory, err := services.NewDataFactory(pricing.NewRegistry())
	require.NoError(t, err)
	return &queryFixture{
		factory:   factory,
		customers: customerrepo.NewRepository(),
		articles:  articlerepo.NewRepository(),
		orders:    orderrepo.NewRepository(),
	}
}

func TestNewGetCustomersQueryHandler(t *testing.T) {
	t.Run("should require a repository", func(t *testing.T) {
		_, err := queries.NewGetCustomersQueryHandler(nil)

		require.Error(t, err)
	})
}

func TestGetCustomersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should return one row per customer in insertion order", func(t *testing.T) {
		fx := newQueryFixture(t)
		for _, row := range []struct{ name, contact string }{
			{"Eric Meyer", "eric98@yahoo.com"},
			{"Bayer, Anne", "anne24@yahoo.de"},
		} {
			c, err := fx.factory.CreateCustomer(row.name, row.contact)
			require.NoError(t, err)
			require.NoError(t, fx.customers.Add(ctx, c))
		}
		handler, err := queries.NewGetCustomersQueryHandler(fx.customers)
		require.NoError(t, err)

		rows, err := handler.Handle(ctx, queries.NewGetCustomersQuery())

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, kernel.CustomerID(892474), rows[0].ID)
		assert.Equal(t, "Eric Meyer", rows[0].Name)
		assert.Equal(t, []string{"eric98@yahoo.com"}, rows[0].Contacts)
		assert.Equal(t, "Anne Bayer", rows[1].Name)
	})

	t.Run("should return empty result for empty store", func(t *testing.T) {
		fx := newQueryFixture(t)
		handler, err := queries.NewGetCustomersQueryHandler(fx.customers)
		require.NoError(t, err)

		rows, err := handler.Handle(ctx, queries.NewGetCustomersQuery())

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		fx := newQueryFixture(t)
		handler, err := queries.NewGetCustomersQueryHandler(fx.customers)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, queries.GetCustomersQuery{})

		require.ErrorIs(t, err, queries.ErrGetCustomersQueryIsNotConstructed)
	})
}
