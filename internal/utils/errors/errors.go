package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common error types.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrValidation     = errors.New("validation failed")
	ErrConflict       = errors.New("resource conflict")
	ErrInternal       = errors.New("internal error")
	ErrServiceUnavail = errors.New("service unavailable")
)

// Kind tags the failure variant an AppError belongs to.
type Kind int

const (
	// KindUnclassified is any failure without a more specific variant.
	KindUnclassified Kind = iota
	// KindDomain carries its own status, message, path and details.
	KindDomain
	// KindValidation is a structural input violation.
	KindValidation
	// KindNotFound is an absent resource raised without a domain message.
	KindNotFound
	// KindAuthentication means the caller is not authenticated.
	KindAuthentication
	// KindAuthorization means the caller lacks permission.
	KindAuthorization
)

func (k Kind) String() string {
	switch k {
	case KindDomain:
		return "domain"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	default:
		return "unclassified"
	}
}

// Outward messages used when a failure does not provide one.
const (
	MessageValidationFailed = "validation failed"
	MessageNotFound         = "resource not found"
	MessageUnauthenticated  = "authentication required"
	MessageForbidden        = "access denied"
	MessageInternal         = "internal server error"
)

// AppError represents an application error with HTTP status and error code.
type AppError struct {
	Kind       Kind     `json:"-"`
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	StatusCode int      `json:"-"`
	Path       string   `json:"path,omitempty"`
	Details    []string `json:"details,omitempty"`
	Err        error    `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = defaultMessage(e.Kind)
	}
	if len(e.Details) > 0 {
		msg = fmt.Sprintf("%s [%s]", msg, strings.Join(e.Details, "; "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Err, target)
}

// WithPath sets the request path the error refers to.
func (e *AppError) WithPath(path string) *AppError {
	e.Path = path
	return e
}

// WithDetails appends detail lines to the error.
func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = append(e.Details, details...)
	return e
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// NewDomainError creates an error that fully describes its own outward rendering.
func NewDomainError(code, message string, statusCode int, path string) *AppError {
	return &AppError{
		Kind:       KindDomain,
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Path:       path,
	}
}

// Validation creates a validation error from "field: reason" entries.
func Validation(details ...string) *AppError {
	return &AppError{
		Kind:       KindValidation,
		Code:       "VALIDATION_ERROR",
		Message:    MessageValidationFailed,
		StatusCode: http.StatusBadRequest,
		Details:    details,
		Err:        ErrValidation,
	}
}

// NotFound creates a not found error. An empty message renders as the generic fallback.
func NotFound(message string) *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Code:       "NOT_FOUND",
		Message:    message,
		StatusCode: http.StatusNotFound,
		Err:        ErrNotFound,
	}
}

// Unauthorized creates an authentication error.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = MessageUnauthenticated
	}
	return &AppError{
		Kind:       KindAuthentication,
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Err:        ErrUnauthorized,
	}
}

// Forbidden creates an authorization error.
func Forbidden(message string) *AppError {
	if message == "" {
		message = MessageForbidden
	}
	return &AppError{
		Kind:       KindAuthorization,
		Code:       "FORBIDDEN",
		Message:    message,
		StatusCode: http.StatusForbidden,
		Err:        ErrForbidden,
	}
}

// Conflict creates a conflict error. It is rendered as a domain failure.
func Conflict(message string) *AppError {
	return &AppError{
		Kind:       KindDomain,
		Code:       "CONFLICT",
		Message:    message,
		StatusCode: http.StatusConflict,
		Err:        ErrConflict,
	}
}

// Internal creates an unclassified error. Its message is never rendered to clients.
func Internal(message string, err error) *AppError {
	return &AppError{
		Kind:       KindUnclassified,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// GetStatusCode returns the HTTP status code the error renders with.
func GetStatusCode(err error) int {
	return Classify(err, "", zeroTime).StatusCode
}

func defaultMessage(k Kind) string {
	switch k {
	case KindValidation:
		return MessageValidationFailed
	case KindNotFound:
		return MessageNotFound
	case KindAuthentication:
		return MessageUnauthenticated
	case KindAuthorization:
		return MessageForbidden
	default:
		return MessageInternal
	}
}
