package commands_test

import (
	"testing"

	"fiesta/internal/core/application/usecases/commands"
	"fiesta/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItemData() []commands.OrderItemData {
	return []commands.OrderItemData{{Name: "Plov", Price: 60000, Qty: 1}}
}

func TestNewCreateOrderCommand(t *testing.T) {
	location, err := kernel.NewLocation(41.31, 69.28)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			777, "Dilnoza", "+998901234567", "no onions", 60000, location, "fiesta20", testItemData(),
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(777), cmd.UserTgID())
		assert.Equal(t, "fiesta20", cmd.PromoCode())
	})

	t.Run("requires_tg_id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			0, "Dilnoza", "+998901234567", "", 60000, location, "", testItemData(),
		)
		require.ErrorIs(t, err, commands.ErrTgIDIsRequired)
	})

	t.Run("requires_customer_name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			777, "", "+998901234567", "", 60000, location, "", testItemData(),
		)
		require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	})

	t.Run("requires_phone", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			777, "Dilnoza", "", "", 60000, location, "", testItemData(),
		)
		require.ErrorIs(t, err, commands.ErrPhoneIsRequired)
	})

	t.Run("requires_location", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			777, "Dilnoza", "+998901234567", "", 60000, kernel.Location{}, "", testItemData(),
		)
		require.Error(t, err)
	})

	t.Run("requires_items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			777, "Dilnoza", "+998901234567", "", 60000, location, "", nil,
		)
		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
