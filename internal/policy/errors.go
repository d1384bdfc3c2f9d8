package policy

import (
	"errors"
	"fmt"
)

var (
	ErrAmountOutOfRange     = errors.New("amount out of range")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrMissingRequiredField = errors.New("missing required field")
)

// ValidationError rejects a request before anything is sent to the wallet service.
// Kind is one of the sentinel errors above, so callers can use errors.Is.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Code is the stable machine readable name of the error kind.
func (e *ValidationError) Code() string {
	switch {
	case errors.Is(e.Kind, ErrAmountOutOfRange):
		return "AmountOutOfRange"
	case errors.Is(e.Kind, ErrInsufficientBalance):
		return "InsufficientBalance"
	case errors.Is(e.Kind, ErrMissingRequiredField):
		return "MissingRequiredField"
	default:
		return "ValidationError"
	}
}

func outOfRange(format string, args ...any) *ValidationError {
	return &ValidationError{Kind: ErrAmountOutOfRange, Field: "amount", Message: fmt.Sprintf(format, args...)}
}

func missing(field string) *ValidationError {
	return &ValidationError{Kind: ErrMissingRequiredField, Field: field, Message: field + " is required"}
}
