package domain

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// InvalidSelectionError signals a toggle on a seat that cannot be selected,
// either occupied on the current trip snapshot or not a real seat code.
type InvalidSelectionError struct {
	Seat string
	Msg  string
}

func (e InvalidSelectionError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("seat %s: %s", e.Seat, e.Msg)
	}
	return fmt.Sprintf("seat %s cannot be selected", e.Seat)
}

// PreconditionError signals a funnel advance attempted before its
// precondition holds (wrong state, empty seat selection).
type PreconditionError struct {
	Op  string
	Msg string
}

func (e PreconditionError) Error() string {
	if e.Op != "" && e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	return "precondition not met"
}

// PersistenceError wraps a failed ledger append. The booking is not
// confirmed until the append succeeds, so the caller may retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("persistence error: %v", e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInvalidSelection(err error) bool {
	var target InvalidSelectionError
	return errors.As(err, &target)
}

func IsPrecondition(err error) bool {
	var target PreconditionError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target PersistenceError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}
