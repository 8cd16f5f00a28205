package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := error(NewTransactionError(cause))

	assert.ErrorIs(t, err, ErrTransactionFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInternalError)
	assert.Contains(t, err.Error(), "connection reset")

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "TRANSACTION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "Database transaction failed", appErr.Message())
	assert.Nil(t, appErr.Details())
}

func TestOutOfStockDetails(t *testing.T) {
	err := NewOutOfStockError(2, 1)

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.NotNil(t, err.Details())
}
