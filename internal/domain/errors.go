package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrDuplicateOrder  = errors.New("order already exists")
)

// ValidationError reports a malformed selection or checkout form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func NewValidationErrorf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IndexError reports an operation on a cart position that does not exist.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cart index %d out of range [0,%d)", e.Index, e.Len)
}

// SubmissionError wraps a failure of the order acceptance collaborator.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("order submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsIndex(err error) bool {
	var i *IndexError
	return errors.As(err, &i)
}

func IsSubmission(err error) bool {
	var s *SubmissionError
	return errors.As(err, &s)
}
