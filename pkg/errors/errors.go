// Package errors provides the unified application error type.
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode is a stable, caller-visible error code.
type ErrorCode string

// Predefined error codes.
const (
	// Generic (1xxx)
	CodeSuccess            ErrorCode = "0"
	CodeUnknown            ErrorCode = "1000"
	CodeInvalidParam       ErrorCode = "1001"
	CodeUnauthorized       ErrorCode = "1002"
	CodeForbidden          ErrorCode = "1003"
	CodeNotFound           ErrorCode = "1004"
	CodeConflict           ErrorCode = "1005"
	CodeTooManyRequests    ErrorCode = "1006"
	CodeInternalError      ErrorCode = "1007"
	CodeServiceUnavailable ErrorCode = "1008"

	// Resources (2xxx)
	CodePatternNotFound ErrorCode = "2001"
	CodeAssetNotFound   ErrorCode = "2002"

	// Business (3xxx)
	CodeDecisionFailed   ErrorCode = "3001"
	CodeExtractionFailed ErrorCode = "3002"
	CodeRenderFailed     ErrorCode = "3003"
	CodeEmptyStyleSet    ErrorCode = "3004"

	// External services (4xxx)
	CodeDatabaseError    ErrorCode = "4001"
	CodeStoreError       ErrorCode = "4002"
	CodePlaceholderError ErrorCode = "4003"
)

// AppError is the application error carried across layers.
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail returns a copy with caller-visible detail attached, so
// the predefined errors stay immutable.
func (e *AppError) WithDetail(detail string) *AppError {
	copied := *e
	copied.Detail = detail
	return &copied
}

// WithError returns a copy with the underlying error attached.
func (e *AppError) WithError(err error) *AppError {
	copied := *e
	copied.Err = err
	return &copied
}

// New creates an application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap wraps an underlying error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// codeToHTTPStatus maps an error code to an HTTP status.
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam, CodeEmptyStyleSet:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodePatternNotFound, CodeAssetNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors.
var (
	ErrInvalidParam       = New(CodeInvalidParam, "invalid parameter")
	ErrUnauthorized       = New(CodeUnauthorized, "unauthorized")
	ErrForbidden          = New(CodeForbidden, "forbidden")
	ErrNotFound           = New(CodeNotFound, "resource not found")
	ErrConflict           = New(CodeConflict, "resource conflict")
	ErrTooManyRequests    = New(CodeTooManyRequests, "too many requests")
	ErrInternalError      = New(CodeInternalError, "internal server error")
	ErrServiceUnavailable = New(CodeServiceUnavailable, "service unavailable")

	ErrPatternNotFound = New(CodePatternNotFound, "style pattern not found")
	ErrAssetNotFound   = New(CodeAssetNotFound, "generated asset not found")

	ErrDecisionFailed   = New(CodeDecisionFailed, "decision processing failed")
	ErrExtractionFailed = New(CodeExtractionFailed, "style extraction failed")
	ErrRenderFailed     = New(CodeRenderFailed, "asset rendering failed")
	ErrEmptyStyleSet    = New(CodeEmptyStyleSet, "no styles to combine")
)

// IsAppError reports whether err is an AppError.
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError converts err to an AppError.
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}
