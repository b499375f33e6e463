package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Summary holds the aggregate totals over a transaction collection.
// Voided transactions contribute nothing.
type Summary struct {
	TotalPayments decimal.Decimal
	TotalDeposits decimal.Decimal
	Net           decimal.Decimal
	Ending        decimal.Decimal
}

// RunningBalances computes the balance after each transaction, applied in
// chronological order (date ascending, id as tie-break). The result maps
// transaction id to the balance after that transaction, so callers can
// display rows in any order and still attach the correct balance.
func RunningBalances(txs []*Transaction, starting decimal.Decimal) map[int64]decimal.Decimal {
	ordered := make([]*Transaction, len(txs))
	copy(ordered, txs)
	slices.SortFunc(ordered, compareChronological)

	balances := make(map[int64]decimal.Decimal, len(ordered))
	balance := starting
	for _, tx := range ordered {
		if !tx.Voided {
			balance = balance.Add(tx.Deposit).Sub(tx.Payment)
		}
		balances[tx.ID] = balance
	}
	return balances
}

// Summarize computes total payments, total deposits, their net, and the
// ending balance given a starting balance.
func Summarize(txs []*Transaction, starting decimal.Decimal) Summary {
	var s Summary
	for _, tx := range txs {
		if tx.Voided {
			continue
		}
		s.TotalPayments = s.TotalPayments.Add(tx.Payment)
		s.TotalDeposits = s.TotalDeposits.Add(tx.Deposit)
	}
	s.Net = s.TotalDeposits.Sub(s.TotalPayments)
	s.Ending = starting.Add(s.Net)
	return s
}

// GroupTotals sums a check list into its payment and deposit contributions.
// Each check counts toward exactly one side based on its own type.
func GroupTotals(checks []*CheckLine) (payments, deposits decimal.Decimal) {
	for _, c := range checks {
		switch c.Type {
		case CheckPayment:
			payments = payments.Add(c.Amount)
		case CheckDeposit:
			deposits = deposits.Add(c.Amount)
		}
	}
	return payments, deposits
}

// PendingTotal sums a pending check list. The total becomes the parent
// entry's deposit when any pending checks exist.
func PendingTotal(checks []*CheckLine) decimal.Decimal {
	total := decimal.Zero
	for _, c := range checks {
		total = total.Add(c.Amount)
	}
	return total
}

// SortState captures the register's user-selected ordering: a column name
// and a direction. The zero Column means no explicit sort is active.
type SortState struct {
	Column string
	Desc   bool
}

// Toggle updates the state for a click on a column header: the same column
// flips direction, a new column resets to ascending.
func (s *SortState) Toggle(column string) {
	if s.Column == column {
		s.Desc = !s.Desc
		return
	}
	s.Column = column
	s.Desc = false
}

// SortForDisplay returns the transactions in display order without mutating
// the input. With no sort state the register shows newest first by date;
// ties keep their relative input order only incidentally, so callers must
// not depend on tie ordering absent an explicit state.
func SortForDisplay(txs []*Transaction, state *SortState) []*Transaction {
	ordered := make([]*Transaction, len(txs))
	copy(ordered, txs)

	if state == nil || state.Column == "" {
		slices.SortStableFunc(ordered, func(a, b *Transaction) int {
			return strings.Compare(b.Date, a.Date)
		})
		return ordered
	}

	cmp := columnCompare(state.Column)
	dir := 1
	if state.Desc {
		dir = -1
	}
	slices.SortStableFunc(ordered, func(a, b *Transaction) int {
		return dir * cmp(a, b)
	})
	return ordered
}

// compareChronological orders by date ascending with id as tie-break, which
// is the computation order for running balances. ISO dates compare correctly
// as strings.
func compareChronological(a, b *Transaction) int {
	if c := strings.Compare(a.Date, b.Date); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

// columnCompare returns an ascending comparator with the typed projection
// for the given register column. Unknown columns compare as
// case-insensitive strings of the raw field, with missing values treated as
// empty.
func columnCompare(column string) func(a, b *Transaction) int {
	switch column {
	case "date":
		return func(a, b *Transaction) int {
			return strings.Compare(a.Date, b.Date)
		}
	case "payment":
		return func(a, b *Transaction) int {
			return a.Payment.Cmp(b.Payment)
		}
	case "deposit":
		return func(a, b *Transaction) int {
			return a.Deposit.Cmp(b.Deposit)
		}
	case "reconciled":
		return func(a, b *Transaction) int {
			return boolCompare(a.Reconciled, b.Reconciled)
		}
	case "voided":
		return func(a, b *Transaction) int {
			return boolCompare(a.Voided, b.Voided)
		}
	default:
		return func(a, b *Transaction) int {
			return strings.Compare(
				strings.ToLower(stringColumn(a, column)),
				strings.ToLower(stringColumn(b, column)),
			)
		}
	}
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}
	return 1
}

func stringColumn(t *Transaction, column string) string {
	switch column {
	case "check":
		return t.CheckNumber
	case "type":
		return t.Type
	case "ref":
		return t.Ref
	case "payee":
		return t.Payee
	case "class":
		return t.Class
	case "location":
		return t.Location
	case "account":
		return t.Account
	case "memo":
		return t.Memo
	}
	return ""
}
