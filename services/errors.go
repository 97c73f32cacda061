package services

import (
	"errors"
	"fmt"
)

// Store failures are logged with their cause and surfaced only as this
// generic error so internals never leak to callers.
var ErrDatabase = errors.New("database error occurred")

// ErrNoAvailability means the requested reservation slot is full.
var ErrNoAvailability = errors.New("no tables available for the selected time")

// ErrNotFound covers missing foods, orders, reservations and reviews.
var ErrNotFound = errors.New("not found")

// ErrInvalidTransition is returned when a status change is not allowed
// from the record's current state.
var ErrInvalidTransition = errors.New("status change not allowed from current state")

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func missingField(field string) error {
	return &ValidationError{Field: field}
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
