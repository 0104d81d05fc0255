package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors, one per ErrorKind. Match with errors.Is.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNetwork        = errors.New("network error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrServer         = errors.New("server error")
	ErrStatus         = errors.New("unexpected status")
	ErrApplication    = errors.New("request rejected")
	ErrDecode         = errors.New("malformed response")
	ErrUnexpected     = errors.New("unexpected error")
)

// ErrorKind classifies a failed remote call.
type ErrorKind int

// Error kinds.
const (
	KindUnexpected ErrorKind = iota
	KindNetwork
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidation
	KindServer
	KindStatus
	KindApplication
	KindDecode
)

var kindNames = map[ErrorKind]string{
	KindUnexpected:   "unexpected",
	KindNetwork:      "network",
	KindUnauthorized: "unauthorized",
	KindForbidden:    "forbidden",
	KindNotFound:     "not_found",
	KindValidation:   "validation",
	KindServer:       "server",
	KindStatus:       "status",
	KindApplication:  "application",
	KindDecode:       "decode",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindUnauthorized:
		return ErrUnauthorized
	case KindForbidden:
		return ErrForbidden
	case KindNotFound:
		return ErrNotFound
	case KindValidation:
		return ErrValidation
	case KindServer:
		return ErrServer
	case KindStatus:
		return ErrStatus
	case KindApplication:
		return ErrApplication
	case KindDecode:
		return ErrDecode
	default:
		return ErrUnexpected
	}
}

// APIError is the single error type returned by the REST client.
// Message is the user-facing text; Detail carries the server's own error
// string when one was sent.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Detail  string
	Err     error
}

// NewAPIError builds an APIError of the given kind.
func NewAPIError(kind ErrorKind, status int, message string) *APIError {
	return &APIError{Kind: kind, Status: status, Message: message}
}

// NewApplicationError wraps a success:false body. The server's error is used
// verbatim, falling back to fallback when empty.
func NewApplicationError(status int, serverErr, fallback string) *APIError {
	msg := strings.TrimSpace(serverErr)
	if msg == "" {
		msg = fallback
	}
	return &APIError{Kind: KindApplication, Status: status, Message: msg, Detail: serverErr}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.sentinel().Error()
}

// Unwrap exposes the underlying cause, or the kind's sentinel.
func (e *APIError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind.sentinel(), e.Err}
	}
	return []error{e.Kind.sentinel()}
}

// KindOf returns the kind of err, or KindUnexpected when err is not an
// APIError.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnexpected
}

// Message returns the user-facing message for err, or fallback when err
// carries none.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized reports whether err is an authentication failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsInvalidRequest reports whether err is a local validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// ValidationError is a single field failure.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every field failure of one payload.
type ValidationErrors struct {
	Errors []ValidationError
}

// Add appends a field failure.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any failure was recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface with the first failure's message.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Unwrap lets errors.Is match ErrInvalidRequest.
func (v *ValidationErrors) Unwrap() error {
	return ErrInvalidRequest
}

// ToMap returns field → message, keeping the first message per field.
func (v *ValidationErrors) ToMap() map[string]string {
	out := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

// Fields returns the failing field names in sorted order.
func (v *ValidationErrors) Fields() []string {
	m := v.ToMap()
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// WrapInvalidRequest formats a message wrapping ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
