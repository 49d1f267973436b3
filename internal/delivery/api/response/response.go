// Package response defines the single JSON envelope returned by every API route.
package response

import (
	"net/http"

	deliverycontext "giftshop/internal/delivery/context"
	domainerrors "giftshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope is the discriminated result of an API call. Exactly one of Data, Errors or Error is set:
// Data when Success is true, Errors for field validation failures, Error for every other failure.
type Envelope struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Error   *ErrorInfo        `json:"error,omitempty"`
	Meta    *MetaInfo         `json:"meta"`
}

// ErrorInfo describes a non-validation failure.
type ErrorInfo struct {
	Kind    string `json:"kind"`    // Machine-readable error code, e.g. "INVENTORY_UNAVAILABLE"
	Message string `json:"message"` // User-friendly error message
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"requestId"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.RequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Data:    data,
		Meta:    meta(c),
	})
}

// ValidationFailed returns a 400 carrying the field-path keyed messages.
func ValidationFailed(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Errors: fields,
		Meta:   meta(c),
	})
}

// Failure returns a non-validation error response
func Failure(c echo.Context, statusCode int, kind, message string) error {
	return c.JSON(statusCode, Envelope{
		Error: &ErrorInfo{
			Kind:    kind,
			Message: message,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, kind, message string) error {
	return Failure(c, http.StatusBadRequest, kind, message)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Failure(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), message)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Failure(c, http.StatusUnauthorized, domainerrors.ErrUnauthenticated.ErrorCode(), message)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, message string) error {
	return Failure(c, http.StatusForbidden, domainerrors.ErrAccessDenied.ErrorCode(), message)
}

// HandleAppError converts application errors to their envelope. Anything else is
// returned to echo's error handler, which logs it and answers with a generic 500.
func HandleAppError(c echo.Context, err error) error {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return ValidationFailed(c, validationErr.Fields())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Failure(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
