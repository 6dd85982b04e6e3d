package v1handler

import (
	"context"
	"net/http"

	"yelpcamp/internal/api/specs/v1specs"
	"yelpcamp/pkg/logger"
	"yelpcamp/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/openapi"
	"go.uber.org/zap"
)

type errorMapping struct {
	status  int
	message string
}

var errorMappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:      {http.StatusBadRequest, "bad request"},
	serrors.ErrInvalidToken:    {http.StatusBadRequest, "invalid or expired token"},
	serrors.ErrUnauthorized:    {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:       {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:        {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:        {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:     {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrExternalService: {http.StatusBadGateway, "external service error"},
	serrors.ErrUnavailable:     {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTimeout:         {http.StatusGatewayTimeout, "request timed out"},
}

// NewError maps err onto a status code and response body. Errors without a
// known kind are logged and reported as internal errors.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	err = fromServerError(err)

	kind := serrors.KindOf(err)
	if kind == nil && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}

	mapping, ok := errorMappings[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &v1specs.ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   v1specs.Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}
	if mapping.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))
	}

	message := mapping.message
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		message = serr.Message()
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: mapping.status,
		Response:   v1specs.Error{Code: kind.Error(), Message: message},
	}
}

// HandleError writes the errors raised while decoding a request, before any
// handler method runs.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	res := h.NewError(ctx, err)

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	if _, err := e.WriteTo(w); err != nil {
		logger.Warn(ctx, "could not write error response", zap.Error(err))
	}
}

// fromServerError translates the errors of the generated server into service
// errors. Other errors are returned unchanged.
func fromServerError(err error) error {
	if secErr, ok := errors.Into[*ogenerrors.SecurityError](err); ok {
		if errors.Is(secErr.Err, ogenerrors.ErrSecurityRequirementIsNotSatisfied) {
			return serrors.With(serrors.ErrUnauthorized, "You need to be logged in to do that")
		}

		return secErr.Err
	}

	if paramsErr, ok := errors.Into[*ogenerrors.DecodeParamsError](err); ok {
		paramErr, ok := errors.Into[*ogenerrors.DecodeParamError](paramsErr.Err)
		if !ok {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid parameters")
		}
		if paramErr.In != openapi.LocationPath {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s parameter", paramErr.Name)
		}

		// A malformed path value can not match any record.
		return missingResource(paramsErr.OperationContext.ID, paramErr.Name, err)
	}

	if _, ok := errors.Into[*ogenerrors.DecodeRequestError](err); ok {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return err
}

func missingResource(operationID, param string, err error) error {
	switch param {
	case "commentID":
		return serrors.Wrap(serrors.ErrNotFound, err, "Comment not found")
	case "reviewID":
		return serrors.Wrap(serrors.ErrNotFound, err, "Review not found")
	case "token":
		return serrors.Wrap(serrors.ErrInvalidToken, err, "Password reset token is invalid or has expired.")
	}

	switch operationID {
	case "getProfile", "follow", "unfollow":
		return serrors.Wrap(serrors.ErrNotFound, err, "User not found")
	case "readNotification":
		return serrors.Wrap(serrors.ErrNotFound, err, "Notification not found")
	default:
		return serrors.Wrap(serrors.ErrNotFound, err, "Campground not found")
	}
}
