package cli

import (
	"errors"

	"github.com/checkbook-app/checkbook/ledger"
)

// isValidationError reports whether err is a user-input validation failure
// from the ledger. Those are surfaced through the alert helper and exit
// non-zero without a stack of wrapping; anything else propagates as a real
// error.
func isValidationError(err error) bool {
	var (
		missingField  *ledger.MissingFieldError
		missingAmount *ledger.MissingAmountError
		conflicting   *ledger.ConflictingAmountError
		emptyGroup    *ledger.EmptyGroupError
		notFound      *ledger.NotFoundError
		notEditable   *ledger.NotEditableError
	)
	return errors.As(err, &missingField) ||
		errors.As(err, &missingAmount) ||
		errors.As(err, &conflicting) ||
		errors.As(err, &emptyGroup) ||
		errors.As(err, &notFound) ||
		errors.As(err, &notEditable)
}
