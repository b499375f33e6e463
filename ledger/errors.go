package ledger

import "fmt"

// Validation error types for entry and group commits. Every failure aborts
// the commit and leaves both the store and the form buffers unchanged; the
// caller surfaces the message and the user corrects and retries.

// MissingFieldError is returned when a required field (date, payee) is
// absent on a commit.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// MissingAmountError is returned when neither payment nor deposit is
// positive.
type MissingAmountError struct{}

func (e *MissingAmountError) Error() string {
	return "either a payment or a deposit amount is required"
}

// ConflictingAmountError is returned when a single check line carries both a
// payment-type and a deposit-type amount.
type ConflictingAmountError struct{}

func (e *ConflictingAmountError) Error() string {
	return "a check takes either a payment or a deposit amount, not both"
}

// EmptyGroupError is returned when a group commit is attempted with no check
// lines.
type EmptyGroupError struct{}

func (e *EmptyGroupError) Error() string {
	return "a group needs at least one check"
}

// NotFoundError is returned when an operation references an unknown
// transaction id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no transaction with id %d", e.ID)
}

// NotEditableError is returned when the inline editor is opened on a group
// transaction; groups are edited through the group form, which owns the
// check list.
type NotEditableError struct {
	ID int64
}

func (e *NotEditableError) Error() string {
	return fmt.Sprintf("transaction %d is a group; edit it with the group form", e.ID)
}
