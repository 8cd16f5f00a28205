// Package response renders the JSON envelopes returned by the API.
package response

import (
	"net/http"

	deliverycontext "kampuskart/internal/delivery/context"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code     string `json:"code"`               // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message  string `json:"message"`            // User-friendly error message
	Details  any    `json:"details,omitempty"`  // Additional error context (only for 4xx errors)
	Redirect string `json:"redirect,omitempty"` // Area the client should navigate to after an access denial
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Message returns a success response carrying only a message.
func Message(c echo.Context, statusCode int, message string) error {
	return Success(c, statusCode, map[string]string{"message": message})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// Denied answers a request the authorization gate refused.
func Denied(c echo.Context, statusCode int, errorCode, message, redirect string) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:     errorCode,
			Message:  message,
			Redirect: redirect,
		},
		Meta: meta(c),
	})
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Anything that is not an AppError is returned for the HTTP error handler to log.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}
