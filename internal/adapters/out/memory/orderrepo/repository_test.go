package orderrepo_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/memory/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, factory *services.DataFactory) *order.Order {
	t.Helper()
	owner, err := factory.CreateCustomer("Eric Meyer", "eric98@yahoo.com")
	require.NoError(t, err)
	o, err := factory.CreateOrder(pricing.BasePricing, owner, nil)
	require.NoError(t, err)
	return o
}

func TestRepository(t *testing.T) {
	ctx := context.Background()

	newTestFactory := func(t *testing.T) *services.DataFactory {
		t.Helper()
		factory, err := services.NewDataFactory(pricing.NewRegistry())
		require.NoError(t, err)
		return factory
	}

	t.Run("should store and retrieve orders", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		o := storedOrder(t, newTestFactory(t))

		require.NoError(t, repo.Add(ctx, o))

		got, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Same(t, o, got)

		_, err = repo.Get(ctx, kernel.OrderID(1111111111))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject nil orders and duplicate ids", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		require.Error(t, repo.Add(ctx, nil))

		o := storedOrder(t, newTestFactory(t))
		require.NoError(t, repo.Add(ctx, o))
		require.ErrorIs(t, repo.Add(ctx, o), errs.ErrValueIsInvalid)
	})

	t.Run("should preserve insertion order", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		factory := newTestFactory(t)
		first := storedOrder(t, factory)
		second := storedOrder(t, factory)
		require.NoError(t, repo.Add(ctx, first))
		require.NoError(t, repo.Add(ctx, second))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, kernel.OrderID(8592356245), all[0].ID())
		assert.Equal(t, kernel.OrderID(3563561357), all[1].ID())
	})
}
