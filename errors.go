package quickquery

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnexpectedRowCount is matched by every UnexpectedRowCountError.
	ErrUnexpectedRowCount = errors.New("unexpected number of rows affected")

	// ErrEmptyQuery is returned when the statement text is empty.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrNegativeRowCount is returned for a RowCountPolicy with a negative N.
	ErrNegativeRowCount = errors.New("row count cannot be negative")

	// ErrMissingParameter is returned when the query references a placeholder
	// that has no value in the given Parameters.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrBoundaryClosed is returned when completing a transaction boundary
	// that was already completed or rolled back.
	ErrBoundaryClosed = errors.New("transaction boundary already closed")
)

// UnexpectedRowCountError reports a statement whose affected row count fell
// outside the policy it was run with. The statement's effect has been rolled back
// by the time the error is returned.
type UnexpectedRowCountError struct {
	// CommandID identifies the executed command.
	CommandID uuid.UUID

	// Query is the statement as sent to the driver.
	Query string

	// Policy is the row count policy that was violated.
	Policy RowCountPolicy

	// Affected is the number of rows the driver reported as affected.
	Affected int64
}

func (e *UnexpectedRowCountError) Error() string {
	return fmt.Sprintf("%s by command %s: got %d, want %s", ErrUnexpectedRowCount, e.CommandID, e.Affected, e.Policy)
}

// Is reports whether target is ErrUnexpectedRowCount.
func (e *UnexpectedRowCountError) Is(target error) bool {
	return target == ErrUnexpectedRowCount
}
