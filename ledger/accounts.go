package ledger

// DefaultAccounts seeds the chart of accounts when the store has none.
var DefaultAccounts = []string{
	"Checking",
	"Savings",
	"Income",
	"Expense",
	"Accounts Receivable",
	"Accounts Payable",
}

// AccountList is an ordered set of unique account names used to populate
// account selections on the entry forms.
type AccountList struct {
	names []string
}

// NewAccountList creates an account list from existing names, dropping
// blanks and duplicates while preserving first-seen order.
func NewAccountList(names []string) *AccountList {
	l := &AccountList{}
	for _, name := range names {
		l.Add(name)
	}
	return l
}

// Add appends a name to the list. Blank names and names already present are
// no-ops, so adding is idempotent.
func (l *AccountList) Add(name string) bool {
	if name == "" || l.Contains(name) {
		return false
	}
	l.names = append(l.names, name)
	return true
}

// Contains reports whether the list holds the given name.
func (l *AccountList) Contains(name string) bool {
	for _, n := range l.names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns a copy of the list in insertion order.
func (l *AccountList) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Len returns the number of accounts.
func (l *AccountList) Len() int {
	return len(l.names)
}
