package commands_test

import (
	"testing"
	"time"

	"fiesta/internal/core/domain/model/courier"
	"fiesta/internal/core/domain/model/kernel"
	"fiesta/internal/core/domain/model/order"
	"fiesta/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

const (
	testCustomerTg   int64 = 777
	testCourierChat  int64 = 555
	testCourierChanl int64 = -100555
)

func testLocation(t *testing.T) kernel.Location {
	t.Helper()
	location, err := kernel.NewLocation(41.31, 69.28)
	require.NoError(t, err)
	return location
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(nil, "Plov", 60000, 1)
	require.NoError(t, err)
	return []order.Item{item}
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewOrderNumber(), 1, "Dilnoza", "+998901234567", "",
		60000, testLocation(t), "", testItems(t),
	)
	require.NoError(t, err)
	require.NoError(t, o.SetID(10))
	return o
}

func testCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier("Bekzod", testCourierChat, testCourierChanl)
	require.NoError(t, err)
	require.NoError(t, c.SetID(3))
	return c
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.RestoreUser(1, testCustomerTg, "dilnoza", "Dilnoza K", nil, false, time.Now().UTC())
	require.NoError(t, err)
	return u
}
