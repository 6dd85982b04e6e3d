package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"yelpcamp/internal/api/handler/v1handler"
	"yelpcamp/internal/api/specs/v1specs"
	"yelpcamp/pkg/logger"
	"yelpcamp/pkg/serrors"

	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/openapi"
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

	err := serrors.With(serrors.ErrBadRequest, "Campground name is required")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "Campground name is required", res.Response.Message)
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

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindStatuses(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	tests := []struct {
		kind   serrors.Kind
		status int
	}{
		{serrors.ErrForbidden, http.StatusForbidden},
		{serrors.ErrConflict, http.StatusConflict},
		{serrors.ErrInvalidToken, http.StatusBadRequest},
		{serrors.ErrExternalService, http.StatusBadGateway},
		{serrors.ErrRateLimited, http.StatusTooManyRequests},
		{serrors.ErrUnavailable, http.StatusServiceUnavailable},
		{serrors.ErrTimeout, http.StatusGatewayTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Error(), func(t *testing.T) {
			res := h.NewError(ctx, serrors.KindOnly(tt.kind))
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.kind.Error(), res.Response.Code)
			require.NotEmpty(t, res.Response.Message)
		})
	}
}

func TestNewError_WrappedSemanticError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := fmt.Errorf("update: %w", serrors.With(serrors.ErrForbidden, "You don't have permission to do that"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
	require.Equal(t, "You don't have permission to do that", res.Response.Message)
}

func TestNewError_DeadlineExceeded(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), fmt.Errorf("query: %w", context.DeadlineExceeded))
	require.Equal(t, http.StatusGatewayTimeout, res.StatusCode)
	require.Equal(t, serrors.ErrTimeout.Error(), res.Response.Code)
}

func TestNewError_SecurityErrors(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()
	op := ogenerrors.OperationContext{Name: v1specs.CreateCampgroundOperation, ID: "createCampground"}

	res := h.NewError(ctx, &ogenerrors.SecurityError{
		OperationContext: op,
		Security:         "BearerAuth",
		Err:              ogenerrors.ErrSecurityRequirementIsNotSatisfied,
	})
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "You need to be logged in to do that", res.Response.Message)

	res = h.NewError(ctx, &ogenerrors.SecurityError{
		OperationContext: op,
		Security:         "BearerAuth",
		Err:              serrors.With(serrors.ErrUnauthorized, "invalid session"),
	})
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "invalid session", res.Response.Message)
}

func TestNewError_DecodeParamsErrors(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	tests := []struct {
		name    string
		opID    string
		param   string
		in      openapi.ParameterLocation
		status  int
		message string
	}{
		{"campground id", "showCampground", "id", openapi.LocationPath, http.StatusNotFound, "Campground not found"},
		{"comment id", "editComment", "commentID", openapi.LocationPath, http.StatusNotFound, "Comment not found"},
		{"review id", "deleteReview", "reviewID", openapi.LocationPath, http.StatusNotFound, "Review not found"},
		{"user id", "follow", "id", openapi.LocationPath, http.StatusNotFound, "User not found"},
		{"notification id", "readNotification", "id", openapi.LocationPath, http.StatusNotFound, "Notification not found"},
		{"reset token", "resetPassword", "token", openapi.LocationPath, http.StatusBadRequest, "Password reset token is invalid or has expired."},
		{"query", "listCampgrounds", "limit", openapi.LocationQuery, http.StatusBadRequest, "invalid limit parameter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(ctx, &ogenerrors.DecodeParamsError{
				OperationContext: ogenerrors.OperationContext{ID: tt.opID},
				Err: &ogenerrors.DecodeParamError{
					Name: tt.param,
					In:   tt.in,
					Err:  errors.New("malformed"),
				},
			})
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.message, res.Response.Message)
		})
	}
}

func TestNewError_DecodeRequestError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), &ogenerrors.DecodeRequestError{
		OperationContext: ogenerrors.OperationContext{ID: "addReview"},
		Err:              errors.New("unexpected EOF"),
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid request body", res.Response.Message)
}

func TestHandleError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/campgrounds/x", nil)
	h.HandleError(req.Context(), rec, req, serrors.With(serrors.ErrNotFound, "Campground not found"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"Campground not found"}`, rec.Body.String())
}
