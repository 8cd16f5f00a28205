package errors

import (
	"fmt"
	"net/http"

	"kampuskart/internal/errors"
)

// AppError is implemented by every error that can be rendered to an API client.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Message shown to the client verbatim
	Details() any      // Structured payload (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy carrying the given details.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy with a more specific client message, keeping the code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is lets copies made by WithDetails/WithMessage match their template.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// Predefined error types
var (
	// Identity
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		nil,
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"User already exists",
		nil,
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		nil,
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		nil,
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		nil,
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		nil,
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_APPLICATION_STATE",
		"Seller application cannot change to the requested status",
		nil,
	)

	ErrCannotDeleteSelf = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_DELETE_SELF",
		"Cannot delete your own account",
		nil,
	)

	// Shops and products
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		nil,
	)

	ErrShopAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SHOP_ALREADY_EXISTS",
		"You already have a shop",
		nil,
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		nil,
	)

	ErrNotShopOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_SHOP_OWNER",
		"Not authorized to modify this product",
		nil,
	)

	// Cart
	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"Cart not found",
		nil,
	)

	ErrCartAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CART_ALREADY_EXISTS",
		"Cart already exists",
		nil,
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Item not found in cart",
		nil,
	)

	// Images
	ErrImageNotFound = NewBaseError(
		http.StatusNotFound,
		"IMAGE_NOT_FOUND",
		"Image not found",
		nil,
	)

	ErrUnsupportedMediaType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_MEDIA_TYPE",
		"Only image files are allowed",
		nil,
	)

	ErrUploadTooLarge = NewBaseError(
		http.StatusBadRequest,
		"UPLOAD_TOO_LARGE",
		"File is too large",
		nil,
	)

	ErrTooManyImages = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_IMAGES",
		"A product can have at most 3 images",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		nil,
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		nil,
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		nil,
	)
)

// NewValidationError builds a 400 with a specific message.
func NewValidationError(message string) *BaseError {
	return ErrValidationFailed.WithMessage(message)
}

// OutOfStockError is returned when a requested quantity exceeds the live stock of a product.
type OutOfStockError struct {
	AvailableStock  int
	CurrentQuantity int // quantity already in the cart, 0 when the product is not there yet
}

// NewOutOfStockError creates an OutOfStockError.
func NewOutOfStockError(available, current int) *OutOfStockError {
	return &OutOfStockError{AvailableStock: available, CurrentQuantity: current}
}

// Error implements the error interface
func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("not enough stock available: available=%d in_cart=%d", e.AvailableStock, e.CurrentQuantity)
}

// HTTPCode returns the HTTP status code
func (e *OutOfStockError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *OutOfStockError) ErrorCode() string {
	return "OUT_OF_STOCK"
}

// Message returns the user-facing error message
func (e *OutOfStockError) Message() string {
	return "Not enough stock available"
}

// Details carries the stock figures so clients can clamp the quantity.
func (e *OutOfStockError) Details() any {
	details := map[string]int{"availableStock": e.AvailableStock}
	if e.CurrentQuantity > 0 {
		details["currentQuantity"] = e.CurrentQuantity
	}

	return details
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}

// TransactionError reports a transaction that could not be committed or rolled
// back. It renders as ErrTransactionFailed and unwraps to the driver error.
type TransactionError struct {
	err error
}

// NewTransactionError wraps a failure to begin or commit a transaction.
func NewTransactionError(err error) *TransactionError {
	return &TransactionError{err: err}
}

func (e *TransactionError) Error() string {
	return errors.Wrap(e.err, ErrTransactionFailed.Message()).Error()
}

func (e *TransactionError) Unwrap() error {
	return e.err
}

// Is matches ErrTransactionFailed.
func (e *TransactionError) Is(target error) bool {
	return target == ErrTransactionFailed
}

func (e *TransactionError) HTTPCode() int {
	return ErrTransactionFailed.HTTPCode()
}

func (e *TransactionError) ErrorCode() string {
	return ErrTransactionFailed.ErrorCode()
}

func (e *TransactionError) Message() string {
	return ErrTransactionFailed.Message()
}

func (e *TransactionError) Details() any {
	return nil
}
