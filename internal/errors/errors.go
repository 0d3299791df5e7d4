// Package errors provides custom error types for the Balanza API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
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

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User & business errors.
var (
	ErrUserNotFound     = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail   = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrBusinessNotFound = &AppError{Code: "BUSINESS_NOT_FOUND", Message: "Business not found", StatusCode: http.StatusNotFound}
	ErrNotAMember       = &AppError{Code: "NOT_A_MEMBER", Message: "User is not a member of this business", StatusCode: http.StatusForbidden}
)

// Entity registry errors.
var (
	ErrFundNotFound     = &AppError{Code: "FUND_NOT_FOUND", Message: "Fund not found", StatusCode: http.StatusNotFound}
	ErrCardNotFound     = &AppError{Code: "CARD_NOT_FOUND", Message: "Card not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryInUse       = &AppError{Code: "CATEGORY_IN_USE", Message: "Category is used by existing transactions", StatusCode: http.StatusConflict}
	ErrCategoryHasChildren = &AppError{Code: "CATEGORY_HAS_CHILDREN", Message: "Category has child categories", StatusCode: http.StatusConflict}
)

// Validation-stage transaction errors. Surfaced verbatim to the caller;
// no partial state is ever created for a rejected submission.
var (
	ErrInvalidAmount = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be a positive number", StatusCode: http.StatusBadRequest}
	ErrInvalidType   = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
	ErrMissingEntity = &AppError{Code: "MISSING_ENTITY", Message: "Transaction type requires an entity reference", StatusCode: http.StatusBadRequest}
)

// Apply-stage transaction errors.
var (
	ErrCreditLimitExceeded = &AppError{Code: "CREDIT_LIMIT_EXCEEDED", Message: "Charge exceeds the card's available credit", StatusCode: http.StatusUnprocessableEntity}
	ErrOverlimitExceeded   = &AppError{Code: "OVERLIMIT_EXCEEDED", Message: "Charge exceeds the card's overlimit allowance", StatusCode: http.StatusUnprocessableEntity}
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}

	// ErrPersistenceFailure is the one retryable kind: an infrastructure
	// failure from the storage boundary. Atomicity still holds; nothing
	// partial is left behind.
	ErrPersistenceFailure = &AppError{Code: "PERSISTENCE_FAILURE", Message: "Storage failure, the transaction was not recorded", StatusCode: http.StatusServiceUnavailable}
)
