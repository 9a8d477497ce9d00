package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	districtID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "John Doe", "+15550100", &districtID)
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Drivers.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory)
	drv, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, driver.StatusActive, drv.Status())
	assert.Equal(t, "John Doe", drv.Name())
	uow.AssertAll(t)
}

func TestRemoveDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t, "Jane Smith")
	cmd, err := commands.NewRemoveDriverCommand(testDriver.ID())
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	uow.Deliveries.On("CountLiveByDriver", ctx, testDriver.ID()).Return(int64(0), nil).Once()
	uow.Drivers.On("Delete", ctx, testDriver.ID()).Return(nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertAll(t)
}

func TestRemoveDriverCommandHandler_Handle_LiveDeliveriesConflict(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t, "Bob Wilson")
	cmd, err := commands.NewRemoveDriverCommand(testDriver.ID())
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	uow.Deliveries.On("CountLiveByDriver", ctx, testDriver.ID()).Return(int64(1), nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.Drivers.AssertNotCalled(t, "Delete", ctx, mock.Anything)
	uow.AssertAll(t)
}

func TestSetDriverStatusCommandHandler_Handle_Deactivate(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t, "John Doe")
	cmd, err := commands.NewSetDriverStatusCommand(testDriver.ID(), driver.StatusInactive)
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	uow.Deliveries.On("CountLiveByDriver", ctx, testDriver.ID()).Return(int64(0), nil).Once()
	uow.Drivers.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetDriverStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, driver.StatusInactive, updated.Status())
	uow.AssertAll(t)
}

func TestSetDriverStatusCommandHandler_Handle_DeactivateBusyConflict(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t, "Jane Smith")
	require.NoError(t, testDriver.MarkOnDelivery())

	cmd, err := commands.NewSetDriverStatusCommand(testDriver.ID(), driver.StatusInactive)
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	uow.Deliveries.On("CountLiveByDriver", ctx, testDriver.ID()).Return(int64(1), nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetDriverStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, driver.StatusOnDelivery, testDriver.Status())
	uow.AssertAll(t)
}

func TestSetDriverStatusCommandHandler_Handle_Reactivate(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t, "Bob Wilson")
	require.NoError(t, testDriver.SetStatus(driver.StatusInactive))

	cmd, err := commands.NewSetDriverStatusCommand(testDriver.ID(), driver.StatusActive)
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	uow.Drivers.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetDriverStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, driver.StatusActive, updated.Status())
	uow.AssertAll(t)
}
