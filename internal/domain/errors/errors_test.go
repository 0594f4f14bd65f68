package errors

import (
	"testing"

	"washify/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapGatewayWrite(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, WrapGatewayWrite(nil))
	})

	t.Run("plain error gains the write identity", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := WrapGatewayWrite(cause)

		var appErr AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, ErrGatewayWrite.ErrorCode(), appErr.ErrorCode())
		assert.Equal(t, "connection reset", appErr.Details())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("existing AppError keeps its identity", func(t *testing.T) {
		err := WrapGatewayWrite(ErrNotFound)

		var appErr AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, ErrNotFound.ErrorCode(), appErr.ErrorCode())
	})

	t.Run("identity survives further wrapping", func(t *testing.T) {
		err := errors.Wrap(WrapGatewayWrite(errors.New("timeout")), "confirm toggle")

		var appErr AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, ErrGatewayWrite.ErrorCode(), appErr.ErrorCode())
	})
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(ErrMissingCredentials))
	assert.True(t, IsAuthError(ErrLoginFailed))
	assert.True(t, IsAuthError(ErrMalformedLoginResponse))
	assert.True(t, IsAuthError(errors.Wrap(ErrNotAuthenticated, "guard")))

	assert.False(t, IsAuthError(ErrGatewayWrite))
	assert.False(t, IsAuthError(errors.New("boom")))
}
