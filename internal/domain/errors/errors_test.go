package errors

import (
	"net/http"
	"testing"

	"giftshop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_CopiesMatchOriginal(t *testing.T) {
	err := NewInventoryUnavailableError("Teddy Bear")

	assert.True(t, errors.Is(err, ErrInventoryUnavailable))
	assert.False(t, errors.Is(err, ErrOrderNotFound))
	assert.Contains(t, err.Message(), "Teddy Bear")
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
}

func TestBaseError_WrappedStillMatches(t *testing.T) {
	wrapped := errors.Wrap(ErrAccessDenied.WithDetails("order owned by someone else"), "update order")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "ACCESS_DENIED", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrAccessDenied))
}

func TestNewInventoryUnavailableError_WithoutName(t *testing.T) {
	assert.Same(t, ErrInventoryUnavailable, NewInventoryUnavailableError(""))
}

func TestValidationError(t *testing.T) {
	fields := map[string]string{
		"totalAmount":       "does not match items, fee, tax and discount",
		"items[0].quantity": "must be at least 1",
	}
	err := NewValidationError(fields)
	fields["mutated"] = "after construction"

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Len(t, err.Fields(), 2)
	assert.Equal(t,
		"validation failed: items[0].quantity: must be at least 1; totalAmount: does not match items, fee, tax and discount",
		err.Error(),
	)
}
