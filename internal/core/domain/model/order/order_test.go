package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/pricing"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTime() time.Time {
	return time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
}

func validCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	name, err := kernel.ParseName("Eric Meyer")
	require.NoError(t, err)
	c, err := customer.NewCustomer(name)
	require.NoError(t, err)
	require.NoError(t, c.AssignID(892474))
	return c
}

func validTable() *pricing.Pricing {
	return pricing.NewRegistry().Table(pricing.BasePricing)
}

func validArticle(t *testing.T, id, description string) *article.Article {
	t.Helper()
	a, err := article.NewArticle(kernel.ArticleID(id), description)
	require.NoError(t, err)
	return a
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		owner := validCustomer(t)
		table := validTable()

		o, err := order.NewOrder(8592356245, owner, table, fixedTime())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, kernel.OrderID(8592356245), o.ID())
		assert.Same(t, owner, o.Customer())
		assert.Same(t, table, o.Pricing())
		assert.True(t, o.CreatedAt().Equal(fixedTime()))
		assert.Equal(t, 0, o.ItemsCount())
	})

	t.Run("should fail with zero id", func(t *testing.T) {
		o, err := order.NewOrder(0, validCustomer(t), validTable(), fixedTime())

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with nil customer", func(t *testing.T) {
		o, err := order.NewOrder(8592356245, nil, validTable(), fixedTime())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "Customer must be created")
	})

	t.Run("should fail with nil pricing table", func(t *testing.T) {
		o, err := order.NewOrder(8592356245, validCustomer(t), nil, fixedTime())

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with zero creation time", func(t *testing.T) {
		o, err := order.NewOrder(8592356245, validCustomer(t), validTable(), time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := order.NewOrder(0, nil, nil, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderId")
		assert.Contains(t, err.Error(), "pricing")
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}

func TestOrder_Items(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(8592356245, validCustomer(t), validTable(), fixedTime())
		require.NoError(t, err)
		return o
	}

	t.Run("should append items in order", func(t *testing.T) {
		o := newOrder(t)
		tasse := validArticle(t, "SKU-458362", "Tasse")
		becher := validArticle(t, "SKU-693856", "Becher")

		require.NoError(t, o.AddItem(tasse, 4))
		require.NoError(t, o.AddItem(becher, 2))

		items := o.Items()
		require.Len(t, items, 2)
		assert.True(t, items[0].Article().IsEqual(tasse))
		assert.Equal(t, int64(4), items[0].Quantity())
		assert.Equal(t, int64(2), items[1].Quantity())
	})

	t.Run("should keep duplicate articles as separate items", func(t *testing.T) {
		o := newOrder(t)
		tasse := validArticle(t, "SKU-458362", "Tasse")

		require.NoError(t, o.AddItem(tasse, 1))
		require.NoError(t, o.AddItem(tasse, 3))

		assert.Equal(t, 2, o.ItemsCount())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		o := newOrder(t)
		tasse := validArticle(t, "SKU-458362", "Tasse")

		require.Error(t, o.AddItem(tasse, 0))
		require.Error(t, o.AddItem(tasse, -2))
		assert.Equal(t, 0, o.ItemsCount())
	})

	t.Run("should reject nil article", func(t *testing.T) {
		o := newOrder(t)

		err := o.AddItem(nil, 1)

		require.Error(t, err)
		assert.Equal(t, article.ErrArticleIsNotConstructed, err)
	})

	t.Run("should delete item by index", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(validArticle(t, "SKU-458362", "Tasse"), 1))
		require.NoError(t, o.AddItem(validArticle(t, "SKU-693856", "Becher"), 2))

		o.DeleteItem(0)

		require.Equal(t, 1, o.ItemsCount())
		assert.Equal(t, int64(2), o.Items()[0].Quantity())
	})

	t.Run("should delete multiple items highest index first", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(validArticle(t, "SKU-458362", "Tasse"), 1))
		require.NoError(t, o.AddItem(validArticle(t, "SKU-693856", "Becher"), 2))
		require.NoError(t, o.AddItem(validArticle(t, "SKU-518957", "Kanne"), 3))

		o.DeleteItems([]int{0, 2})

		require.Equal(t, 1, o.ItemsCount())
		assert.Equal(t, int64(2), o.Items()[0].Quantity())
	})

	t.Run("should ignore delete with index out of bounds", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(validArticle(t, "SKU-458362", "Tasse"), 1))

		o.DeleteItem(5)
		o.DeleteItems([]int{-1, 7})

		assert.Equal(t, 1, o.ItemsCount())
	})
}

func TestValidateCreationDate(t *testing.T) {
	t.Run("accepts dates within bounds inclusive", func(t *testing.T) {
		require.NoError(t, order.ValidateCreationDate(
			time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, order.ValidateCreationDate(
			time.Date(2099, 12, 31, 23, 59, 59, 0, time.UTC)))
		require.NoError(t, order.ValidateCreationDate(fixedTime()))
	})

	t.Run("rejects out-of-range dates", func(t *testing.T) {
		err := order.ValidateCreationDate(time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC))
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		require.Error(t, order.ValidateCreationDate(
			time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("rejects zero time", func(t *testing.T) {
		err := order.ValidateCreationDate(time.Time{})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
