package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		kind Kind
		code int
	}{
		{Unauthorized("no"), KindUnauthorized, http.StatusUnauthorized},
		{Forbidden("no"), KindForbidden, http.StatusForbidden},
		{InvalidArgument("bad"), KindInvalidArgument, http.StatusBadRequest},
		{InvalidState("stuck"), KindInvalidState, http.StatusConflict},
		{NotFound("gone"), KindNotFound, http.StatusNotFound},
		{Conflict("dup"), KindConflict, http.StatusConflict},
		{Unavailable("down", nil), KindUnavailable, http.StatusServiceUnavailable},
		{Internal("boom", nil), KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.err.Kind)
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable("Failed to fetch orders", cause)

	assert.Equal(t, "Failed to fetch orders: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NotFound("Order not found")
	assert.Equal(t, "Order not found", bare.Error())
}

func TestFrom_PassesThroughAppErrors(t *testing.T) {
	original := Forbidden("Forbidden access")

	assert.Same(t, original, From(original))
	assert.Same(t, original, From(fmt.Errorf("handler: %w", original)))
}

func TestFrom_ContextExpiryBecomesUnavailable(t *testing.T) {
	err := From(context.DeadlineExceeded)
	require.NotNil(t, err)
	assert.Equal(t, KindUnavailable, err.Kind)

	err = From(fmt.Errorf("query: %w", context.Canceled))
	assert.Equal(t, KindUnavailable, err.Kind)
}

func TestFrom_UnknownErrorsBecomeInternal(t *testing.T) {
	err := From(errors.New("what"))
	assert.Equal(t, KindInternal, err.Kind)
	assert.Equal(t, http.StatusInternalServerError, err.Code)
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(NotFound("x"), KindNotFound))
	assert.True(t, IsKind(fmt.Errorf("wrap: %w", NotFound("x")), KindNotFound))
	assert.False(t, IsKind(NotFound("x"), KindConflict))
	assert.False(t, IsKind(errors.New("plain"), KindInternal))
	assert.False(t, IsKind(nil, KindInternal))
}
