package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrProductNotFound.WrapMessage("product lookup")

	var appErr AppError
	require.True(t, pkgerrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "Product not found", appErr.Message())
	assert.Contains(t, wrapped.Error(), "product lookup")
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email: required")

	assert.Equal(t, "email: required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := pkgerrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to list products")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to list products", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)
}

func TestBaseError_IsMatchesDetailedCopies(t *testing.T) {
	detailed := ErrImageTooLarge.WithDetails("limit is 5.0 MB")

	assert.ErrorIs(t, detailed, ErrImageTooLarge)
	assert.NotErrorIs(t, detailed, ErrInvalidImageUpload)
}

func TestBaseError_IsDoesNotMatchSiblingsSharingACode(t *testing.T) {
	assert.NotErrorIs(t, ErrEmailRequired, ErrInvalidEmailFormat)
	assert.NotErrorIs(t, ErrEmailRequired.WithDetails("x"), ErrInvalidEmailFormat)
	assert.ErrorIs(t, ErrEmailRequired.WithDetails("x").WithDetails("y"), ErrEmailRequired)
}
