package shared

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for broad classification of value object failures.
var (
	ErrInvalidFormat        = errors.New("invalid format")
	ErrRequiredValueMissing = errors.New("required value missing")
	ErrInvalidValue         = errors.New("invalid value")
)

// ErrorKind is the machine-readable category of a DomainError.
type ErrorKind string

const (
	KindInvalidFormat        ErrorKind = "invalid_format"
	KindRequiredValueMissing ErrorKind = "required_value_missing"
	KindInvalidValue         ErrorKind = "invalid_value"
)

// DomainError is raised by value object factories when raw input breaks
// the type's invariant. Status is the suggested HTTP status for callers
// translating the error into a response.
type DomainError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Value   any
}

func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s (value=%v)", e.Kind, e.Message, e.Value)
}

func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindRequiredValueMissing:
		return ErrRequiredValueMissing
	case KindInvalidValue:
		return ErrInvalidValue
	}
	return nil
}

func NewInvalidFormat(message string, value any) *DomainError {
	return &DomainError{Kind: KindInvalidFormat, Status: http.StatusBadRequest, Message: message, Value: value}
}

func NewRequiredValueMissing(message string, value any) *DomainError {
	return &DomainError{Kind: KindRequiredValueMissing, Status: http.StatusBadRequest, Message: message, Value: value}
}

func NewInvalidValue(message string, value any) *DomainError {
	return &DomainError{Kind: KindInvalidValue, Status: http.StatusUnprocessableEntity, Message: message, Value: value}
}

// IsKind reports whether err carries a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}
