package commands_test

import (
	"testing"

	"fiesta/internal/core/application/usecases/commands"
	"fiesta/internal/core/domain/model/courier"
	"fiesta/internal/core/domain/model/order"
	"fiesta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assignedOrder(t *testing.T, courierID int64) *order.Order {
	t.Helper()
	aggregate := testOrder(t)
	require.NoError(t, aggregate.Assign(courierID))
	return aggregate
}

func TestCourierAcceptCommandHandler_Handle_Success(t *testing.T) {
	uow := newMockUoW()
	uow.expectTx()
	notifier := &MockNotifier{}
	handler := commands.NewCourierAcceptCommandHandler(assignmentUoWFactory{uow: uow}, notifier, nil)

	actor := testCourier(t)
	aggregate := assignedOrder(t, actor.ID())
	uow.orders.On("Get", mock.Anything, int64(10)).Return(aggregate, nil)
	uow.couriers.On("GetByIdentity", mock.Anything, testCourierChanl).Return(actor, nil)
	uow.orders.On("Update", mock.Anything, aggregate).Return(nil)
	uow.users.On("Get", mock.Anything, int64(1)).Return(testUser(t), nil)
	notifier.On("CourierAccepted", mock.Anything, aggregate, actor, int64(7), testCustomerTg).Return()

	cmd, err := commands.NewCourierAcceptCommand(10, testCourierChanl, 7)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(t.Context(), cmd))
	assert.Equal(t, order.StatusOutForDelivery, aggregate.Status())
	notifier.AssertExpectations(t)
}

func TestCourierAcceptCommandHandler_Handle_PrivateChatIdentity(t *testing.T) {
	uow := newMockUoW()
	uow.expectTx()
	notifier := &MockNotifier{}
	handler := commands.NewCourierAcceptCommandHandler(assignmentUoWFactory{uow: uow}, notifier, nil)

	actor, err := courier.NewCourier("Bekzod", testCourierChat, 0)
	require.NoError(t, err)
	require.NoError(t, actor.SetID(3))
	aggregate := assignedOrder(t, actor.ID())

	uow.orders.On("Get", mock.Anything, int64(10)).Return(aggregate, nil)
	uow.couriers.On("GetByIdentity", mock.Anything, testCourierChat).Return(actor, nil)
	uow.orders.On("Update", mock.Anything, aggregate).Return(nil)
	uow.users.On("Get", mock.Anything, int64(1)).Return(testUser(t), nil)
	notifier.On("CourierAccepted", mock.Anything, aggregate, actor, int64(0), testCustomerTg).Return()

	cmd, err := commands.NewCourierAcceptCommand(10, testCourierChat, 0)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(t.Context(), cmd))
}

func TestCourierAcceptCommandHandler_Handle_WrongCourier(t *testing.T) {
	uow := newMockUoW()
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	notifier := &MockNotifier{}
	handler := commands.NewCourierAcceptCommandHandler(assignmentUoWFactory{uow: uow}, notifier, nil)

	aggregate := assignedOrder(t, 99)
	actor := testCourier(t)
	uow.orders.On("Get", mock.Anything, int64(10)).Return(aggregate, nil)
	uow.couriers.On("GetByIdentity", mock.Anything, testCourierChanl).Return(actor, nil)

	cmd, err := commands.NewCourierAcceptCommand(10, testCourierChanl, 7)
	require.NoError(t, err)

	require.ErrorIs(t, handler.Handle(t.Context(), cmd), errs.ErrUnauthorized)
	assert.Equal(t, order.StatusCourierAssigned, aggregate.Status())
	uow.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCourierAcceptCommandHandler_Handle_UnknownIdentity(t *testing.T) {
	uow := newMockUoW()
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	notifier := &MockNotifier{}
	handler := commands.NewCourierAcceptCommandHandler(assignmentUoWFactory{uow: uow}, notifier, nil)

	aggregate := assignedOrder(t, 3)
	uow.orders.On("Get", mock.Anything, int64(10)).Return(aggregate, nil)
	uow.couriers.On("GetByIdentity", mock.Anything, int64(12345)).
		Return(nil, errs.NewObjectNotFoundError("identity", int64(12345)))

	cmd, err := commands.NewCourierAcceptCommand(10, 12345, 7)
	require.NoError(t, err)

	require.ErrorIs(t, handler.Handle(t.Context(), cmd), errs.ErrUnauthorized)
}
