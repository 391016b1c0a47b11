package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand_Valid(t *testing.T) {
	productID := kernel.NewUUID()
	price, err := kernel.NewMoney(500)
	require.NoError(t, err)

	cmd, err := commands.NewCreateProductCommand(productID, "Keyboard", price, 10)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.ProductID().IsEqual(productID))
	assert.Equal(t, "Keyboard", cmd.Name())
	assert.True(t, cmd.Price().IsEqual(price))
	assert.Equal(t, 10, cmd.Quantity())
}

func TestNewCreateProductCommand_Invalid(t *testing.T) {
	price, err := kernel.NewMoney(500)
	require.NoError(t, err)

	t.Run("empty name", func(t *testing.T) {
		_, cmdErr := commands.NewCreateProductCommand(kernel.NewUUID(), "", price, 10)

		require.Error(t, cmdErr)
		assert.ErrorIs(t, cmdErr, commands.ErrProductNameIsRequired)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, cmdErr := commands.NewCreateProductCommand(kernel.NewUUID(), "Keyboard", price, -1)

		require.Error(t, cmdErr)
		assert.ErrorIs(t, cmdErr, commands.ErrProductQuantityIsNegative)
	})

	t.Run("zero value price", func(t *testing.T) {
		var zeroPrice kernel.Money
		_, cmdErr := commands.NewCreateProductCommand(kernel.NewUUID(), "Keyboard", zeroPrice, 10)
		require.Error(t, cmdErr)
	})

	t.Run("invalid product id", func(t *testing.T) {
		var productID kernel.UUID
		_, cmdErr := commands.NewCreateProductCommand(productID, "Keyboard", price, 10)
		require.Error(t, cmdErr)
	})
}

func TestCreateProductCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.CreateProductCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateProductCommandIsNotConstructed)
}
