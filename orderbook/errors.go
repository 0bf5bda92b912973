/*
errors.go - Centralized error types for the order book engine

PURPOSE:
  All error classes in one place. Validation failures and not-found failures
  carry a human-readable message identifying the offending field or value;
  internal store faults are wrapped in a distinct, generic error so callers
  can distinguish rejected input from an unexpected store failure.

ERROR CATEGORIES:
  1. Arity errors      - wrong number of positional inputs to an entry point
  2. Validation errors - field-level rejections, raised before any mutation
  3. Ledger errors     - unknown order id, unexpected store faults

USAGE:
  Callers branch with errors.Is():

    if errors.Is(err, orderbook.ErrOrderNotFound) { ... }

  or with the classification helpers IsValidationError / IsNotFound.
*/
package orderbook

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrArityMismatch is returned when an entry point receives the wrong
	// number of positional arguments. Checked before any field validation.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrMissingParameter is returned when a required value is absent.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrWrongType is returned when a value's runtime kind does not match
	// the declared kind.
	ErrWrongType = errors.New("wrong type")

	// ErrNotPositive is returned when a numeric value is zero or negative.
	ErrNotPositive = errors.New("not a positive number")

	// ErrTooManyDecimals is returned when a numeric value carries more than
	// MaxDecimalPlaces fractional digits.
	ErrTooManyDecimals = errors.New("too many decimal places")

	// ErrNotAllowed is returned when a value is outside its enumeration.
	ErrNotAllowed = errors.New("value not allowed")

	// ErrUnexpectedProperties is returned when a request object carries
	// properties outside the permitted set.
	ErrUnexpectedProperties = errors.New("unexpected properties")

	// ErrOrderNotFound is returned by removal when no live order matches
	// the requested id. The ledger is unchanged by a failed removal.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInternalStore wraps any unexpected fault during ledger mutation
	// or aggregation. Always logged, never silently swallowed.
	ErrInternalStore = errors.New("internal store error")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ArityError reports an argument-count mismatch at an entry point.
type ArityError struct {
	Expected int
	Received int
}

func (e *ArityError) Error() string {
	if e.Expected == 0 {
		return fmt.Sprintf("Method expects no arguments but it received %d.", e.Received)
	}
	noun := "arguments"
	if e.Expected == 1 {
		noun = "argument"
	}
	return fmt.Sprintf("Method expects %d %s but it received %d.", e.Expected, noun, e.Received)
}

func (e *ArityError) Unwrap() error { return ErrArityMismatch }

// FieldError reports a validation failure on a single named field.
// Check is one of the validation sentinels above.
type FieldError struct {
	Field   string
	Check   error
	Message string
}

func (e *FieldError) Error() string { return e.Message }

func (e *FieldError) Unwrap() error { return e.Check }

func fieldErr(field string, check error, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Check: check, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a removal referencing an id with no live order.
// The id is kept as received so the message echoes the caller's value.
type NotFoundError struct {
	OrderID float64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Order (%s) does not exist in Order Book.", strconv.FormatFloat(e.OrderID, 'f', -1, 64))
}

func (e *NotFoundError) Unwrap() error { return ErrOrderNotFound }

// InternalError wraps an unexpected store or aggregation fault. The cause is
// retained for logging; callers only see the generic message.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "Internal store error." }

func (e *InternalError) Unwrap() error { return ErrInternalStore }

// Cause returns the underlying fault for logging.
func (e *InternalError) Cause() error { return e.Err }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidationError returns true if the error is a field-level rejection or
// an arity mismatch, i.e. the caller's input was at fault.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrArityMismatch) ||
		errors.Is(err, ErrMissingParameter) ||
		errors.Is(err, ErrWrongType) ||
		errors.Is(err, ErrNotPositive) ||
		errors.Is(err, ErrTooManyDecimals) ||
		errors.Is(err, ErrNotAllowed) ||
		errors.Is(err, ErrUnexpectedProperties)
}

// IsNotFound returns true if the error indicates an unknown order id.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound)
}

func joinProperties(props []string) string {
	return strings.Join(props, ", ")
}
