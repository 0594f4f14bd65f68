// Package errors defines the application error taxonomy. Every failure
// the dashboard can surface maps onto one of three families: AuthError
// (login rejected, never retried), GatewayReadError (swallowed at the
// gateway boundary, view degrades to an empty state) and
// GatewayWriteError (propagated so the caller can reconsider an
// optimistic edit).
package errors

import (
	"net/http"

	"washify/internal/errors"
)

// AppError is the interface application-specific errors implement.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements AppError.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication errors, surfaced verbatim and never retried.
	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"AUTH_MISSING_CREDENTIALS",
		"Vui lòng nhập tên đăng nhập và mật khẩu",
		"",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_LOGIN_FAILED",
		"Đăng nhập thất bại",
		"",
	)

	ErrMalformedLoginResponse = NewBaseError(
		http.StatusBadGateway,
		"AUTH_MALFORMED_RESPONSE",
		"Không tìm thấy token trong phản hồi đăng nhập",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại",
		"",
	)

	// Gateway errors.
	ErrGatewayRead = NewBaseError(
		http.StatusBadGateway,
		"GATEWAY_READ_FAILED",
		"Không thể tải dữ liệu",
		"",
	)

	ErrGatewayWrite = NewBaseError(
		http.StatusBadGateway,
		"GATEWAY_WRITE_FAILED",
		"Thao tác không thành công, vui lòng thử lại",
		"",
	)

	// Export errors.
	ErrExportEmpty = NewBaseError(
		http.StatusUnprocessableEntity,
		"EXPORT_EMPTY",
		"Không có dữ liệu để xuất",
		"",
	)

	ErrExportFormat = NewBaseError(
		http.StatusBadRequest,
		"EXPORT_FORMAT_UNSUPPORTED",
		"Định dạng xuất không được hỗ trợ",
		"",
	)

	// Validation errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dữ liệu nhập không hợp lệ",
		"",
	)

	// General errors.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Không tìm thấy dữ liệu",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Lỗi hệ thống",
		"",
	)
)

// IsAuthError reports whether err belongs to the authentication family.
func IsAuthError(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	switch appErr.ErrorCode() {
	case ErrMissingCredentials.ErrorCode(),
		ErrLoginFailed.ErrorCode(),
		ErrMalformedLoginResponse.ErrorCode(),
		ErrNotAuthenticated.ErrorCode():
		return true
	default:
		return false
	}
}

// causedError pairs a taxonomy error with the failure that produced
// it, so errors.As and errors.Is still reach the cause.
type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Unwrap() error {
	return e.cause
}

// WrapGatewayWrite folds a backend write failure into the
// GatewayWriteError family. An error that already carries an AppError
// identity passes through untouched; anything else becomes
// ErrGatewayWrite with the cause's text as details and the cause kept
// in the chain.
func WrapGatewayWrite(err error) error {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return err
	}

	return &causedError{
		BaseError: ErrGatewayWrite.WithDetails(err.Error()),
		cause:     err,
	}
}
