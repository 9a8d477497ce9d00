package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_WithDelivery(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, nil)
	require.NoError(t, testOrder.Assign())
	testDriver := newTestDriver(t, "John Doe")
	require.NoError(t, testDriver.MarkOnDelivery())

	dlv, err := delivery.NewDelivery(
		kernel.NewUUID(), testOrder.ID(), testDriver.ID(), "", time.Now().UTC(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), "customer changed mind")
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	uow.Orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.Deliveries.On("GetByOrder", ctx, testOrder.ID()).Return(dlv, nil).Once()
	uow.Deliveries.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	uow.Deliveries.On("CountOtherLive", ctx, testDriver.ID(), dlv.ID()).
		Return(int64(0), nil).Once()
	uow.Drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	uow.Drivers.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()
	uow.Orders.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.Logs.On("Append", ctx, mock.AnythingOfType("*auditlog.Entry")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, cancelled.Status())
	assert.Equal(t, delivery.StatusFailed, dlv.Status())
	assert.Equal(t, "customer changed mind", dlv.Notes())
	assert.Equal(t, driver.StatusActive, testDriver.Status())
	uow.AssertAll(t)
}

func TestCancelOrderCommandHandler_Handle_DefaultNote(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, nil)
	require.NoError(t, testOrder.Assign())
	testDriver := newTestDriver(t, "Jane Smith")
	require.NoError(t, testDriver.MarkOnDelivery())

	dlv, err := delivery.NewDelivery(
		kernel.NewUUID(), testOrder.ID(), testDriver.ID(), "", time.Now().UTC(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), "")
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	uow.Orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.Deliveries.On("GetByOrder", ctx, testOrder.ID()).Return(dlv, nil).Once()
	uow.Deliveries.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	uow.Deliveries.On("CountOtherLive", ctx, testDriver.ID(), dlv.ID()).
		Return(int64(0), nil).Once()
	uow.Drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	uow.Drivers.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()
	uow.Orders.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.Logs.On("Append", ctx, mock.AnythingOfType("*auditlog.Entry")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.DefaultCancellationNote, dlv.Notes())
}

func TestCancelOrderCommandHandler_Handle_BusyDriverStaysBusy(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, nil)
	require.NoError(t, testOrder.Assign())
	testDriver := newTestDriver(t, "Bob Wilson")
	require.NoError(t, testDriver.MarkOnDelivery())

	dlv, err := delivery.NewDelivery(
		kernel.NewUUID(), testOrder.ID(), testDriver.ID(), "", time.Now().UTC(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), "")
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	uow.Orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.Deliveries.On("GetByOrder", ctx, testOrder.ID()).Return(dlv, nil).Once()
	uow.Deliveries.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	uow.Deliveries.On("CountOtherLive", ctx, testDriver.ID(), dlv.ID()).
		Return(int64(2), nil).Once()
	uow.Orders.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.Logs.On("Append", ctx, mock.AnythingOfType("*auditlog.Entry")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, driver.StatusOnDelivery, testDriver.Status())
	uow.Drivers.AssertNotCalled(t, "Get", ctx, mock.Anything)
	uow.AssertAll(t)
}

func TestCancelOrderCommandHandler_Handle_NoDelivery(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, nil)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), "")
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	uow.Orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.Deliveries.On("GetByOrder", ctx, testOrder.ID()).
		Return(nil, errs.ErrObjectNotFound).Once()
	uow.Orders.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.Logs.On("Append", ctx, mock.AnythingOfType("*auditlog.Entry")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, cancelled.Status())
	uow.AssertAll(t)
}

func TestCancelOrderCommandHandler_Handle_CompletedOrder(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, nil)
	require.NoError(t, testOrder.Assign())
	require.NoError(t, testOrder.RecomputeStatus(order.StatusCompleted))

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), "")
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.StatusCompleted, testOrder.Status())
	uow.AssertAll(t)
}
