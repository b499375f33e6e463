// Package ledger provides the checkbook data model and the pure computations
// over it: running balances, summary totals and display ordering.
//
// The ledger itself holds no state; every function takes the transaction
// collection as input and derives its result from scratch. All monetary
// amounts use decimal arithmetic to avoid floating point precision issues.
//
// Example usage:
//
//	txs, err := st.Transactions()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	balances := ledger.RunningBalances(txs, decimal.Zero)
//	summary := ledger.Summarize(txs, decimal.Zero)
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Check line types. A group check contributes to its parent's payment or
// deposit total depending on its type.
const (
	CheckPayment = "Payment"
	CheckDeposit = "Deposit"
)

// Transaction types offered by the entry form. The field is free-form in the
// stored data; this list is only what the forms present.
var TransactionTypes = []string{"", "Expenditure", "Transaction", "Deposit"}

// Transaction is one ledger entry: a payment, a deposit, or a group of
// checks aggregated into a single row.
type Transaction struct {
	// ID is assigned at creation from the commit wall clock (unix
	// milliseconds). It is unique within a ledger and breaks ties between
	// transactions sharing a date.
	ID int64 `json:"id"`

	// Date is an ISO calendar date (YYYY-MM-DD). Required.
	Date string `json:"date"`

	CheckNumber string `json:"check"`
	Type        string `json:"type"`
	Ref         string `json:"ref"`

	// Payee is required. Group transactions carry the synthetic payee
	// "Group".
	Payee string `json:"payee"`

	Class    string `json:"class"`
	Location string `json:"location"`

	Payment decimal.Decimal `json:"payment"`
	Deposit decimal.Decimal `json:"deposit"`

	Account string `json:"account"`
	Memo    string `json:"memo"`

	// Checks holds attached check lines: deposited checks for a plain
	// entry, or the full check records of a group. For a group the parent
	// Payment and Deposit are recomputed from this list on every save and
	// are never independently authoritative.
	Checks []*CheckLine `json:"checks"`

	Reconciled bool `json:"reconciled"`

	// Voided excludes the transaction's amounts from balances and totals
	// without altering the stored values.
	Voided bool `json:"voided"`

	Group bool `json:"group"`
}

// GroupPayee is the synthetic payee recorded on group transactions.
const GroupPayee = "Group"

// CheckLine is one check within a transaction's check list. Pending checks
// attached to a plain entry use only Number and Amount; group checks use the
// full record. Both shapes share the same stored array, so unused fields are
// omitted from JSON.
type CheckLine struct {
	Number        string          `json:"number,omitempty"`
	Payee         string          `json:"payee,omitempty"`
	Account       string          `json:"account,omitempty"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Ref           string          `json:"refNo,omitempty"`
	Class         string          `json:"class,omitempty"`
	Type          string          `json:"type,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ValidDate reports whether s is a well-formed ISO calendar date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// Today returns the current date in ISO form.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// NewID returns a creation id greater than every id in txs. Ids derive from
// the wall clock at commit time; the max-guard keeps them strictly
// increasing even when two commits land within the same millisecond.
func NewID(txs []*Transaction) int64 {
	id := time.Now().UnixMilli()
	for _, tx := range txs {
		if tx.ID >= id {
			id = tx.ID + 1
		}
	}
	return id
}

// FindByID returns the transaction with the given id, or nil.
func FindByID(txs []*Transaction, id int64) *Transaction {
	for _, tx := range txs {
		if tx.ID == id {
			return tx
		}
	}
	return nil
}

// Clone returns a deep copy of the transaction, including its check list.
func (t *Transaction) Clone() *Transaction {
	c := *t
	if t.Checks != nil {
		c.Checks = make([]*CheckLine, len(t.Checks))
		for i, check := range t.Checks {
			cc := *check
			c.Checks[i] = &cc
		}
	}
	return &c
}
