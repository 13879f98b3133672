package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should create command with valid arguments", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand("Meyer", []commands.OrderItemSpec{
			{Quantity: 4, ArticleSpec: "Teller"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Meyer", cmd.CustomerSpec())
		require.Len(t, cmd.Items(), 1)
		assert.Equal(t, int64(4), cmd.Items()[0].Quantity)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should reject blank customer spec and empty items", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand("", []commands.OrderItemSpec{{Quantity: 1, ArticleSpec: "Teller"}})
		require.ErrorIs(t, err, commands.ErrCustomerSpecIsRequired)

		_, err = commands.NewPlaceOrderCommand("Meyer", nil)
		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("should copy the item lines", func(t *testing.T) {
		items := []commands.OrderItemSpec{{Quantity: 1, ArticleSpec: "Teller"}}
		cmd, err := commands.NewPlaceOrderCommand("Meyer", items)
		require.NoError(t, err)

		items[0].Quantity = 99

		assert.Equal(t, int64(1), cmd.Items()[0].Quantity)
	})

	t.Run("should reject command not created via constructor", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
