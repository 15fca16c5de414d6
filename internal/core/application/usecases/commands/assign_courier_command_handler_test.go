package commands_test

import (
	"testing"

	"fiesta/internal/core/application/usecases/commands"
	"fiesta/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignCourierCommandHandler_Handle_Success(t *testing.T) {
	uow := newMockUoW()
	uow.expectTx()
	notifier := &MockNotifier{}
	handler := commands.NewAssignCourierCommandHandler(assignmentUoWFactory{uow: uow}, notifier, nil)

	aggregate := testOrder(t)
	assignee := testCourier(t)
	uow.orders.On("Get", mock.Anything, int64(10)).Return(aggregate, nil)
	uow.couriers.On("Get", mock.Anything, int64(3)).Return(assignee, nil)
	uow.orders.On("Update", mock.Anything, aggregate).Return(nil)
	uow.users.On("Get", mock.Anything, int64(1)).Return(testUser(t), nil)
	notifier.On("CourierAssigned", mock.Anything, aggregate, assignee, testCustomerTg).Return()

	cmd, err := commands.NewAssignCourierCommand(10, 3)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(t.Context(), cmd))
	assert.Equal(t, order.StatusCourierAssigned, aggregate.Status())
	assert.True(t, aggregate.IsAssignedTo(3))
	notifier.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_ReassignmentResetsProgress(t *testing.T) {
	uow := newMockUoW()
	uow.expectTx()
	notifier := &MockNotifier{}
	handler := commands.NewAssignCourierCommandHandler(assignmentUoWFactory{uow: uow}, notifier, nil)

	aggregate := testOrder(t)
	require.NoError(t, aggregate.Assign(9))
	require.NoError(t, aggregate.ChangeStatus(order.StatusOutForDelivery))

	replacement := testCourier(t)
	uow.orders.On("Get", mock.Anything, int64(10)).Return(aggregate, nil)
	uow.couriers.On("Get", mock.Anything, int64(3)).Return(replacement, nil)
	uow.orders.On("Update", mock.Anything, aggregate).Return(nil)
	uow.users.On("Get", mock.Anything, int64(1)).Return(testUser(t), nil)
	notifier.On("CourierAssigned", mock.Anything, aggregate, replacement, testCustomerTg).Return()

	cmd, err := commands.NewAssignCourierCommand(10, 3)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(t.Context(), cmd))
	assert.Equal(t, order.StatusCourierAssigned, aggregate.Status())
	assert.True(t, aggregate.IsAssignedTo(3))
	assert.False(t, aggregate.IsAssignedTo(9))
}

func TestAssignCourierCommandHandler_Handle_InactiveCourier(t *testing.T) {
	uow := newMockUoW()
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	notifier := &MockNotifier{}
	handler := commands.NewAssignCourierCommandHandler(assignmentUoWFactory{uow: uow}, notifier, nil)

	aggregate := testOrder(t)
	assignee := testCourier(t)
	assignee.SetActive(false)
	uow.orders.On("Get", mock.Anything, int64(10)).Return(aggregate, nil)
	uow.couriers.On("Get", mock.Anything, int64(3)).Return(assignee, nil)

	cmd, err := commands.NewAssignCourierCommand(10, 3)
	require.NoError(t, err)

	require.ErrorIs(t, handler.Handle(t.Context(), cmd), commands.ErrCourierIsNotActive)
	uow.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignCourierCommandHandler_Handle_ClosedOrder(t *testing.T) {
	uow := newMockUoW()
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	notifier := &MockNotifier{}
	handler := commands.NewAssignCourierCommandHandler(assignmentUoWFactory{uow: uow}, notifier, nil)

	aggregate := testOrder(t)
	require.NoError(t, aggregate.ChangeStatus(order.StatusCanceled))
	uow.orders.On("Get", mock.Anything, int64(10)).Return(aggregate, nil)
	uow.couriers.On("Get", mock.Anything, int64(3)).Return(testCourier(t), nil)

	cmd, err := commands.NewAssignCourierCommand(10, 3)
	require.NoError(t, err)

	require.Error(t, handler.Handle(t.Context(), cmd))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
