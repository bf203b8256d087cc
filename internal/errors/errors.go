// Package errors provides custom error types for the WeddingHub API.
// All service-layer errors should use AppError so that handlers can map
// them to consistent JSON responses without leaking internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Wedding errors.
var (
	ErrWeddingNotFound = &AppError{Code: "WEDDING_NOT_FOUND", Message: "Wedding not found", StatusCode: http.StatusNotFound}
)

// Budget category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Budget category not found", StatusCode: http.StatusNotFound}
	ErrCategoryInUse    = &AppError{Code: "CATEGORY_IN_USE", Message: "Budget category has active bookings", StatusCode: http.StatusConflict}
)

// Booking errors.
var (
	ErrBookingNotFound = &AppError{Code: "BOOKING_NOT_FOUND", Message: "Booking not found", StatusCode: http.StatusNotFound}

	// ErrLedgerCorrupt means a category's running actual_amount no longer
	// matches the sum of its live bookings. It is never expected in normal
	// operation; the affected operation aborts without writing.
	ErrLedgerCorrupt = &AppError{Code: "LEDGER_CORRUPT", Message: "Category totals do not match bookings", StatusCode: http.StatusConflict}
)

// Task errors.
var (
	ErrTaskNotFound = &AppError{Code: "TASK_NOT_FOUND", Message: "Task not found", StatusCode: http.StatusNotFound}
)

// Vendor directory errors.
var (
	ErrVendorNotFound = &AppError{Code: "VENDOR_NOT_FOUND", Message: "Vendor not found", StatusCode: http.StatusNotFound}
)
