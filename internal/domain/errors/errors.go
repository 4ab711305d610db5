// Package errors defines the application error catalog rendered by the HTTP layer.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	origin    *BaseError // catalog entry a WithDetails copy was made from
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
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

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is lets copies made by WithDetails match their catalog entry.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.origin != nil && e.origin == t
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		origin:    e.root(),
	}
}

func (e *BaseError) root() *BaseError {
	if e.origin != nil {
		return e.origin
	}

	return e
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	// Authentication-related errors
	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"Authentication required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Not authenticated",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_OTP",
		"Invalid or expired verification code",
		"",
	)

	ErrInsufficientPermissions = NewBaseError(
		http.StatusForbidden,
		"INSUFFICIENT_PERMISSIONS",
		"Insufficient permissions",
		"",
	)

	// OTP delivery errors
	ErrEmailDeliveryFailed = NewBaseError(
		http.StatusInternalServerError,
		"EMAIL_DELIVERY_FAILED",
		"Failed to send verification email",
		"",
	)

	ErrSendOTPFailed = NewBaseError(
		http.StatusInternalServerError,
		"SEND_OTP_FAILED",
		"Failed to send verification code",
		"",
	)

	ErrVerifyOTPFailed = NewBaseError(
		http.StatusInternalServerError,
		"VERIFY_OTP_FAILED",
		"Failed to verify code",
		"",
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"Google authentication failed",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Invalid or expired OAuth state",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Email is required",
		"",
	)

	ErrInvalidEmailFormat = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid email format",
		"",
	)

	ErrEmailAndCodeRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Email and code are required",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PRODUCT_ALREADY_EXISTS",
		"A product with this gearId already exists",
		"",
	)

	ErrInvalidProductPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCT_PAYLOAD",
		"Invalid product payload",
		"",
	)

	ErrInvalidBrand = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BRAND",
		"Invalid brand",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"Invalid price",
		"",
	)

	ErrInvalidImages = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGES",
		"Invalid images",
		"",
	)

	ErrInvalidStock = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STOCK",
		"Invalid stock",
		"",
	)

	ErrNoFieldsToUpdate = NewBaseError(
		http.StatusBadRequest,
		"NO_FIELDS_TO_UPDATE",
		"No fields to update",
		"",
	)

	ErrListProductsFailed = NewBaseError(
		http.StatusInternalServerError,
		"LIST_PRODUCTS_FAILED",
		"Failed to list products",
		"",
	)

	ErrFetchProductFailed = NewBaseError(
		http.StatusInternalServerError,
		"FETCH_PRODUCT_FAILED",
		"Failed to fetch product",
		"",
	)

	ErrCreateProductFailed = NewBaseError(
		http.StatusInternalServerError,
		"CREATE_PRODUCT_FAILED",
		"Failed to create product",
		"",
	)

	ErrUpdateProductFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPDATE_PRODUCT_FAILED",
		"Failed to update product",
		"",
	)

	ErrDeleteProductFailed = NewBaseError(
		http.StatusInternalServerError,
		"DELETE_PRODUCT_FAILED",
		"Failed to delete product",
		"",
	)

	// Image upload errors
	ErrInvalidImageUpload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE_UPLOAD",
		"Invalid image upload",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"IMAGE_TOO_LARGE",
		"Image exceeds the upload limit",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMAGE_UPLOAD_FAILED",
		"Failed to store image",
		"",
	)

	ErrImageNotFound = NewBaseError(
		http.StatusNotFound,
		"IMAGE_NOT_FOUND",
		"Image not found",
		"",
	)

	ErrImageReadFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMAGE_READ_FAILED",
		"Failed to read image",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the driver error for errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
