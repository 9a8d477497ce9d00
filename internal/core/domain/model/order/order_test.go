package order_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(t *testing.T, priority order.Priority) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-1001",
		"12 Main street",
		priority,
		kernel.NewUUID(),
		nil,
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_in_new_status", func(t *testing.T) {
		o := makeOrder(t, order.PriorityNormal)

		assert.Equal(t, order.StatusNew, o.Status())
		assert.Equal(t, "ORD-1001", o.OrderNumber())
		assert.Nil(t, o.DistrictID())
		require.NoError(t, o.Validate())
	})

	t.Run("requires_order_number", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "", "12 Main street",
			order.PriorityNormal, kernel.NewUUID(), nil, time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1001", "",
			order.PriorityNormal, kernel.NewUUID(), nil, time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_valid_priority", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1001", "12 Main street",
			order.PriorityUnknown, kernel.NewUUID(), nil, time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-1002", "3 Oak avenue",
			order.PriorityHigh, order.StatusInProgress,
			kernel.NewUUID(), nil, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, o.Status())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-1002", "3 Oak avenue",
			order.PriorityHigh, order.Status(99),
			kernel.NewUUID(), nil, time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("new_order_becomes_assigned", func(t *testing.T) {
		o := makeOrder(t, order.PriorityNormal)

		require.NoError(t, o.Assign())
		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("assigned_order_cannot_be_assigned_again", func(t *testing.T) {
		o := makeOrder(t, order.PriorityNormal)
		require.NoError(t, o.Assign())

		err := o.Assign()

		require.ErrorIs(t, err, errs.ErrInvalidState)
		var stateErr *errs.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, "ASSIGNED", stateErr.CurrentState)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("new_order_can_be_cancelled", func(t *testing.T) {
		o := makeOrder(t, order.PriorityNormal)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("completed_order_cannot_be_cancelled", func(t *testing.T) {
		o := makeOrder(t, order.PriorityNormal)
		require.NoError(t, o.RecomputeStatus(order.StatusCompleted))

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidState)
	})
}

func TestOrder_Reopen(t *testing.T) {
	o := makeOrder(t, order.PriorityNormal)
	require.NoError(t, o.Assign())

	o.Reopen()

	assert.Equal(t, order.StatusNew, o.Status())
}

func TestOrder_RecomputeStatus(t *testing.T) {
	t.Run("overwrites_derived_status", func(t *testing.T) {
		o := makeOrder(t, order.PriorityNormal)
		require.NoError(t, o.Assign())

		require.NoError(t, o.RecomputeStatus(order.StatusInProgress))
		assert.Equal(t, order.StatusInProgress, o.Status())
	})

	t.Run("cancelled_order_returns_to_assigned_on_redispatch", func(t *testing.T) {
		o := makeOrder(t, order.PriorityNormal)
		require.NoError(t, o.RecomputeStatus(order.StatusCancelled))

		require.NoError(t, o.RecomputeStatus(order.StatusAssigned))
		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("rejects_invalid_status_value", func(t *testing.T) {
		o := makeOrder(t, order.PriorityNormal)

		require.ErrorIs(t, o.RecomputeStatus(order.StatusUnknown), errs.ErrValueIsInvalid)
	})
}

func TestStatus(t *testing.T) {
	t.Run("string_representations", func(t *testing.T) {
		assert.Equal(t, "NEW", order.StatusNew.String())
		assert.Equal(t, "IN_PROGRESS", order.StatusInProgress.String())
		assert.Equal(t, "UNKNOWN", order.Status(42).String())
	})

	t.Run("from_string", func(t *testing.T) {
		s, err := order.StatusFromString("COMPLETED")
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, s)

		_, err = order.StatusFromString("DONE")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("terminal_statuses", func(t *testing.T) {
		assert.True(t, order.StatusCompleted.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
		assert.False(t, order.StatusNew.IsTerminal())
		assert.False(t, order.StatusInProgress.IsTerminal())
	})
}

func TestPriority(t *testing.T) {
	t.Run("from_string", func(t *testing.T) {
		p, err := order.PriorityFromString("URGENT")
		require.NoError(t, err)
		assert.Equal(t, order.PriorityUrgent, p)

		_, err = order.PriorityFromString("ASAP")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("auto_assign_only_for_high_and_urgent", func(t *testing.T) {
		assert.True(t, order.PriorityHigh.RequiresAutoAssign())
		assert.True(t, order.PriorityUrgent.RequiresAutoAssign())
		assert.False(t, order.PriorityNormal.RequiresAutoAssign())
		assert.False(t, order.PriorityLow.RequiresAutoAssign())
	})
}
