package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("driverId", "42", cause)

		assert.Equal(t, "driverId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driverId, ID is: 42 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order", "123", "order already has a delivery assigned")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t,
			"conflict: order already has a delivery assigned (param is: order, ID is: 123)",
			err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key")
		err := errs.NewConflictErrorWithCause("delivery", "7", "duplicate order number", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "duplicate order number")
		assert.Contains(t, err.Error(), "cause: duplicated key")
	})
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("order", "123", "ASSIGNED", "order is already assigned or processed")

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "ASSIGNED", err.CurrentState)
	assert.Equal(t,
		"invalid state: order is already assigned or processed (param is: order, ID is: 123, state is: ASSIGNED)",
		err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("DELIVERED", "ASSIGNED")

	assert.Equal(t, "DELIVERED", err.From)
	assert.Equal(t, "ASSIGNED", err.To)
	assert.Equal(t, "invalid status transition: from DELIVERED to ASSIGNED", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestStoreUnavailableError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := errs.NewStoreUnavailableError(cause)

		assert.Equal(t, "store unavailable (cause: dial tcp: connection refused)", err.Error())
		assert.Equal(t, errs.ErrStoreUnavailable, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewStoreUnavailableError(nil)
		assert.Equal(t, "store unavailable", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")

	assert.Equal(t, "name", err.ParamName)
	assert.Equal(t, "value is required: name", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueIsInvalidError(t *testing.T) {
	cause := errors.New("invalid format")
	err := errs.NewValueIsInvalidErrorWithCause("priority", cause)

	assert.Equal(t, "priority", err.ParamName)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "value is invalid: priority (cause: invalid format)", err.Error())
	assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
}

func TestSanitizeRemovesNewlines(t *testing.T) {
	err := errs.NewObjectNotFoundError("order", "bad\nid")
	assert.Contains(t, err.Error(), "bad id")
	assert.NotContains(t, err.Error(), "\n")
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewConflictError("order", "123", "duplicate"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewInvalidStateError("order", "123", "NEW", "nope"), errs.ErrInvalidState)
	require.ErrorIs(t, errs.NewInvalidTransitionError("ASSIGNED", "DELIVERED"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewStoreUnavailableError(nil), errs.ErrStoreUnavailable)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("priority"), errs.ErrValueIsInvalid)
}
