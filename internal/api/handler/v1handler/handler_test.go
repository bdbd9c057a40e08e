package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"breachcheck/internal/api/handler/v1handler"
	"breachcheck/pkg/logger"
	"breachcheck/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "invalid email format")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid email format", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.Wrap(serrors.ErrInternal, errors.New("pq: deadlock"), "could not persist search results"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_Upstream(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	tests := []struct {
		err     error
		code    string
		message string
	}{
		{
			err:     serrors.With(serrors.ErrUpstreamAuth, "external service authentication failed"),
			code:    "UPSTREAM_AUTH_FAILED",
			message: "external service authentication failed",
		},
		{
			err:     fmt.Errorf("search: %w", serrors.With(serrors.ErrUpstreamQuota, "external service rate limit exceeded")),
			code:    "UPSTREAM_QUOTA_EXCEEDED",
			message: "external service rate limit exceeded",
		},
		{
			// provider bodies never reach the caller
			err:     serrors.With(serrors.ErrUpstream, "provider returned status 502: upstream html"),
			code:    "UPSTREAM_ERROR",
			message: "external service unavailable",
		},
	}

	for _, tt := range tests {
		res := h.NewError(ctx, tt.err)
		require.Equal(t, 503, res.StatusCode)
		require.Equal(t, tt.code, res.Response.Code)
		require.Equal(t, tt.message, res.Response.Message)
	}
}

func TestNewError_RateLimited(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrRateLimited, "too many requests, try again later"))
	require.Equal(t, 429, res.StatusCode)
	require.Equal(t, "RATE_LIMITED", res.Response.Code)
	require.Equal(t, "too many requests, try again later", res.Response.Message)
}
