// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced row does not exist.
type ErrNotFound struct {
	Entity string
	ID     int64
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Entity, e.ID)
}

// NewNotFound builds an ErrNotFound for the given entity label ("User", "Campaign", ...).
func NewNotFound(entity string, id int64) error {
	return &ErrNotFound{Entity: entity, ID: id}
}

// ErrValidation means the input failed schema validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidation(field, message string) error {
	return &ErrValidation{Field: field, Message: message}
}

// ErrConflict wraps unique constraint violations.
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

func NewConflict(format string, args ...any) error {
	return &ErrConflict{Message: fmt.Sprintf(format, args...)}
}

// ErrConstraint covers application-level rules such as ownership and date ordering.
type ErrConstraint struct {
	Message string
}

func (e *ErrConstraint) Error() string {
	return e.Message
}

func NewConstraint(format string, args ...any) error {
	return &ErrConstraint{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err (or anything it wraps) is an ErrNotFound.
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}
