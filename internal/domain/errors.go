package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError collects every rule violation found in one validation
// pass, so callers can show all problems at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// NotFoundError reports an operation against a non-existent record.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// ConstraintError reports a delete blocked by a referential guard.
type ConstraintError struct {
	Reason string
}

func (e *ConstraintError) Error() string {
	return e.Reason
}

// AlreadyReturnedError reports a return attempted on a closed loan.
// A second return call is an error, not a no-op.
type AlreadyReturnedError struct {
	LoanID string
}

func (e *AlreadyReturnedError) Error() string {
	return "This loan has already been returned"
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConstraint(err error) bool {
	var target *ConstraintError
	return errors.As(err, &target)
}

func IsAlreadyReturned(err error) bool {
	var target *AlreadyReturnedError
	return errors.As(err, &target)
}
