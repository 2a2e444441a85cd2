package services

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Resource names used in NotFoundError.
const (
	ResourceAuthor = "author"
	ResourceBook   = "book"
)

var (
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// NotFoundError reports a missing author or book.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func authorNotFound(id uint) error {
	return &NotFoundError{Resource: ResourceAuthor, ID: id}
}

func bookNotFound(id uint) error {
	return &NotFoundError{Resource: ResourceBook, ID: id}
}

// ValidationError reports rejected client input, one reason per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + validation.Errors(e.errors()).Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) errors() map[string]error {
	errs := make(map[string]error, len(e.Fields))
	for field, reason := range e.Fields {
		errs[field] = errors.New(reason)
	}
	return errs
}

// newValidationError converts the result of a Validate call. Errors that
// are not per-field (internal rule failures) are returned unchanged.
func newValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make(map[string]string, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		fields[field] = fieldErr.Error()
	}
	return &ValidationError{Fields: fields}
}

// NewFieldError builds a ValidationError for a single field.
func NewFieldError(field, reason string) error {
	return &ValidationError{Fields: map[string]string{field: reason}}
}
