package booking

import (
	"errors"
	"fmt"
)

// NotFoundError signals that a referenced entity does not exist. It maps to
// HTTP 404 at the controller boundary.
type NotFoundError struct {
	Resource string
	Field    string
	Value    interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

// NewNotFound builds a NotFoundError for the given entity reference.
func NewNotFound(resource, field string, value interface{}) error {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// ConflictError signals a double-booking attempt. It maps to HTTP 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// InvalidError covers bad input and invalid state (unknown enum value,
// unavailable technician, bad OTP). It maps to HTTP 400.
type InvalidError struct {
	Message string
}

func (e *InvalidError) Error() string { return e.Message }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsInvalid(err error) bool {
	var inv *InvalidError
	return errors.As(err, &inv)
}
