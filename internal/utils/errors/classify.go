package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

var zeroTime time.Time

// ErrorDocument is the uniform body rendered for every failed request.
type ErrorDocument struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code"`
	Path       string    `json:"path"`
	Timestamp  time.Time `json:"timestamp"`
	Details    []string  `json:"details,omitempty"`
}

// Classify maps any failure to the document rendered to the client.
// path is the request path, used unless the failure names its own.
func Classify(err error, path string, now time.Time) ErrorDocument {
	appErr := asAppError(err)

	doc := ErrorDocument{
		Success:   false,
		Path:      path,
		Timestamp: now,
	}
	if appErr.Path != "" {
		doc.Path = appErr.Path
	}

	switch appErr.Kind {
	case KindDomain:
		doc.StatusCode = appErr.StatusCode
		if doc.StatusCode == 0 {
			doc.StatusCode = http.StatusInternalServerError
		}
		doc.Message = appErr.Message
		if doc.Message == "" {
			doc.Message = http.StatusText(doc.StatusCode)
		}
		doc.Details = nonEmpty(appErr.Details)
	case KindValidation:
		doc.StatusCode = http.StatusBadRequest
		doc.Message = MessageValidationFailed
		doc.Details = nonEmpty(appErr.Details)
	case KindNotFound:
		doc.StatusCode = http.StatusNotFound
		doc.Message = appErr.Message
		if doc.Message == "" {
			doc.Message = MessageNotFound
		}
	case KindAuthentication:
		doc.StatusCode = http.StatusUnauthorized
		doc.Message = MessageUnauthenticated
	case KindAuthorization:
		doc.StatusCode = http.StatusForbidden
		doc.Message = MessageForbidden
	default:
		doc.StatusCode = http.StatusInternalServerError
		doc.Message = MessageInternal
	}

	return doc
}

// asAppError recognizes the failure variant, in priority order.
func asAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return Validation(ValidationDetails(verrs)...).WithError(err)
	}

	if details, ok := malformedBody(err); ok {
		return Validation(details...).WithError(err)
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NotFound("").WithError(err)
	case errors.Is(err, ErrValidation):
		return Validation().WithError(err)
	case errors.Is(err, ErrUnauthorized):
		return Unauthorized("").WithError(err)
	case errors.Is(err, ErrForbidden):
		return Forbidden("").WithError(err)
	}

	return Internal("", err)
}

// BindError converts a request decoding or binding failure into a
// validation error. Decoder failures without a recognizable shape, such as a
// custom unmarshaler rejecting its input, are reported as malformed JSON.
func BindError(err error) *AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return Validation(ValidationDetails(verrs)...).WithError(err)
	}
	if details, ok := malformedBody(err); ok {
		return Validation(details...).WithError(err)
	}
	return Validation("body: malformed JSON").WithError(err)
}

func malformedBody(err error) ([]string, bool) {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
		return nil, false
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []string{fmt.Sprintf("%s: must be of type %s", field, typeErr.Type.String())}, true
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return []string{"body: malformed JSON"}, true
	case errors.Is(err, io.EOF):
		return []string{"body: is required"}, true
	}
	return nil, false
}

// ValidationDetails renders every violation as a "field: reason" entry.
func ValidationDetails(verrs validator.ValidationErrors) []string {
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), reason(fe)))
	}
	return details
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "amount_scale":
		return fmt.Sprintf("must have at most %s decimal places", fe.Param())
	case "amount_digits":
		return fmt.Sprintf("must have at most %s integer digits", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must have at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must have exactly %s characters", fe.Param())
		}
		return fmt.Sprintf("must have length %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func nonEmpty(details []string) []string {
	if len(details) == 0 {
		return nil
	}
	return details
}
