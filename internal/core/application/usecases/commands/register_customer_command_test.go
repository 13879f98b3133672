package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterCustomerCommand(t *testing.T) {
	t.Run("should create command with valid arguments", func(t *testing.T) {
		cmd, err := commands.NewRegisterCustomerCommand("Meyer, Eric", "eric98@yahoo.com")

		require.NoError(t, err)
		assert.Equal(t, "Meyer, Eric", cmd.Name())
		assert.Equal(t, "eric98@yahoo.com", cmd.Contact())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should reject blank arguments", func(t *testing.T) {
		_, err := commands.NewRegisterCustomerCommand("  ", "eric98@yahoo.com")
		require.ErrorIs(t, err, commands.ErrNameIsRequired)

		_, err = commands.NewRegisterCustomerCommand("Meyer, Eric", "")
		require.ErrorIs(t, err, commands.ErrContactIsRequired)
	})

	t.Run("should reject command not created via constructor", func(t *testing.T) {
		var cmd commands.RegisterCustomerCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterCustomerCommandIsNotConstructed)
	})
}
