package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string              `json:"code"`
	Message    string              `json:"message"`
	Details    string              `json:"details,omitempty"`
	Fields     map[string][]string `json:"fields,omitempty"`
	HTTPStatus int                 `json:"-"`
	Timestamp  time.Time           `json:"timestamp"`
	RequestID  string              `json:"request_id,omitempty"`
	AccountID  string              `json:"account_id,omitempty"`
	Path       string              `json:"path,omitempty"`
	Method     string              `json:"method,omitempty"`
	Err        error               `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithField attributes the error to a specific input field
func (e *AppError) WithField(field, message string) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewValidationError creates a field-attributed validation error
func NewValidationError(field, message string) *AppError {
	e := NewAppError(
		"VALIDATION_ERROR",
		fmt.Sprintf("Validation failed for field '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
	return e.WithField(field, message)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(code, resource string) *AppError {
	return NewAppError(
		code,
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		nil,
	)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(code, message string) *AppError {
	if message == "" {
		message = "Unauthorized access"
	}
	return NewAppError(
		code,
		message,
		http.StatusUnauthorized,
		nil,
	)
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = "Access forbidden"
	}
	return NewAppError(
		"FORBIDDEN",
		message,
		http.StatusForbidden,
		nil,
	)
}

// NewConflictError creates a conflict error
func NewConflictError(code, message string) *AppError {
	return NewAppError(
		code,
		message,
		http.StatusConflict,
		nil,
	)
}

// NewBusinessRuleError creates a business rule violation error
func NewBusinessRuleError(code, message string) *AppError {
	return NewAppError(
		code,
		message,
		http.StatusBadRequest,
		nil,
	)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		"INTERNAL_ERROR",
		message,
		http.StatusInternalServerError,
		err,
	)
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, err error) *AppError {
	return NewAppError(
		"DATABASE_ERROR",
		fmt.Sprintf("Database operation failed: %s", operation),
		http.StatusInternalServerError,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Error codes for different categories of errors
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEmailNotConfirmed  = "EMAIL_NOT_CONFIRMED"
	ErrCodeLockedOut          = "LOCKED_OUT"
	ErrCodeTokenInvalid       = "TOKEN_INVALID"
	ErrCodeTokenMissing       = "TOKEN_MISSING"

	ErrCodeDuplicateEmail   = "DUPLICATE_EMAIL"
	ErrCodeUnderage         = "UNDERAGE"
	ErrCodeWeakPassword     = "WEAK_PASSWORD"
	ErrCodeInvalidToken     = "INVALID_TOKEN"
	ErrCodeAlreadyConfirmed = "ALREADY_CONFIRMED"

	ErrCodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	ErrCodeCannotLockSelf     = "CANNOT_LOCK_SELF"
	ErrCodeRoleNotFound       = "ROLE_NOT_FOUND"
	ErrCodeAlreadyHasRole     = "ALREADY_HAS_ROLE"
	ErrCodeDoesNotHaveRole    = "DOES_NOT_HAVE_ROLE"
	ErrCodeLastAdminProtected = "LAST_ADMIN_PROTECTED"

	ErrCodeGameNotFound     = "GAME_NOT_FOUND"
	ErrCodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	ErrCodeProviderNotFound = "PROVIDER_NOT_FOUND"
	ErrCodeCategoryInactive = "CATEGORY_INACTIVE"
	ErrCodeProviderInactive = "PROVIDER_INACTIVE"
	ErrCodeCategoryInUse    = "CATEGORY_IN_USE"
	ErrCodeProviderInUse    = "PROVIDER_IN_USE"
	ErrCodeDuplicateName    = "DUPLICATE_NAME"
	ErrCodeInvalidBetRange  = "INVALID_BET_RANGE"
	ErrCodeInvalidRtp       = "INVALID_RTP"

	ErrCodeReviewNotFound  = "REVIEW_NOT_FOUND"
	ErrCodeDuplicateReview = "DUPLICATE_REVIEW"
	ErrCodeInvalidRating   = "INVALID_RATING"

	ErrCodeInvalidAmount     = "INVALID_AMOUNT"
	ErrCodeInsufficientFunds = "INSUFFICIENT_FUNDS"

	ErrCodeRequiredField = "REQUIRED_FIELD"
	ErrCodeInvalidFormat = "INVALID_FORMAT"

	ErrCodeDatabaseConnection = "DATABASE_CONNECTION_ERROR"
	ErrCodeDatabaseQuery      = "DATABASE_QUERY_ERROR"
	ErrCodeEmailDelivery      = "EMAIL_DELIVERY_ERROR"
)
