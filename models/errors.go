package models

import "fmt"

// ValidationError reports missing or malformed input on a write operation.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) ValidationError {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that the target of an operation does not exist.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string { return e.Resource + " not found" }

// DuplicateError reports a uniqueness collision the caller may override.
type DuplicateError struct {
	Message string
}

func (e DuplicateError) Error() string { return e.Message }

// UnauthorizedError reports that the caller does not own the target resource.
type UnauthorizedError struct {
	Message string
}

func (e UnauthorizedError) Error() string { return e.Message }

// ExternalServiceError wraps a failure from an external collaborator
// (object storage and the like).
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e ExternalServiceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e ExternalServiceError) Unwrap() error { return e.Err }

var (
	ErrOrderNotFound       = NotFoundError{Resource: "order"}
	ErrProductNotFound     = NotFoundError{Resource: "product"}
	ErrCategoryNotFound    = NotFoundError{Resource: "category"}
	ErrSubcategoryNotFound = NotFoundError{Resource: "subcategory"}
	ErrUserNotFound        = NotFoundError{Resource: "user"}
	ErrBannerNotFound      = NotFoundError{Resource: "banner"}
)
