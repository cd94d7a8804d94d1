package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the services. The API layer maps them to HTTP
// status codes.
var (
	// ErrInvalidLimit indicates a history limit below 1. It is wrapped in a
	// domain.ValidationError, so it also matches domain.ErrValidation.
	ErrInvalidLimit = errors.New("invalid history limit")
)

// ServiceError wraps an error with the service and operation that produced it.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Operation, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Operation)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Err:       err,
	}
}
