// Package session implements the edit-session state machine that governs
// which entry form is active and the transient buffers behind it.
//
// Exactly one state is active at a time: idle, the single-entry form (add or
// edit), or the group form (add or edit). Opening any form cancels whichever
// other form was open, so mutual exclusivity is enforced here rather than by
// whatever renders the forms. Commits validate the buffered input, write the
// updated transaction collection through the store, and return to idle; a
// validation failure aborts the commit and leaves every buffer untouched so
// the user can correct and retry.
package session

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/checkbook-app/checkbook/ledger"
	"github.com/checkbook-app/checkbook/store"
)

// State identifies which form, if any, is currently open.
type State int

const (
	Idle State = iota
	AddingEntry
	EditingEntry
	AddingGroup
	EditingGroup
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AddingEntry:
		return "adding-entry"
	case EditingEntry:
		return "editing-entry"
	case AddingGroup:
		return "adding-group"
	case EditingGroup:
		return "editing-group"
	}
	return "unknown"
}

// EntryBuffer holds the single-entry form fields while the form is open.
// Amounts already parsed; string fields trimmed on commit.
type EntryBuffer struct {
	Date        string
	CheckNumber string
	Type        string
	Ref         string
	Payee       string
	Class       string
	Location    string
	Payment     decimal.Decimal
	Deposit     decimal.Decimal
	Account     string
	Memo        string
	Reconciled  bool
	Voided      bool
}

// GroupBuffer holds the group form's header fields while the form is open.
// The check list lives in the controller's group-check buffer.
type GroupBuffer struct {
	Date     string
	Type     string
	Location string
	Memo     string
}

// Controller is the edit-session state machine. It owns the transient form
// buffers and performs all transaction mutations through the store.
type Controller struct {
	st *store.Store

	state  State
	editID int64

	entry         EntryBuffer
	pendingChecks []*ledger.CheckLine

	group       GroupBuffer
	groupChecks []*ledger.CheckLine
}

// NewController creates an idle controller over the given store.
func NewController(st *store.Store) *Controller {
	return &Controller{st: st, state: Idle}
}

// State returns the active state.
func (c *Controller) State() State {
	return c.state
}

// EditingID returns the target transaction id in the two editing states, and
// zero otherwise.
func (c *Controller) EditingID() int64 {
	return c.editID
}

// Entry returns a pointer to the single-entry buffer for the form to fill.
func (c *Controller) Entry() *EntryBuffer {
	return &c.entry
}

// Group returns a pointer to the group header buffer for the form to fill.
func (c *Controller) Group() *GroupBuffer {
	return &c.group
}

// PendingChecks returns a copy of the pending check list.
func (c *Controller) PendingChecks() []*ledger.CheckLine {
	return copyChecks(c.pendingChecks)
}

// GroupChecks returns a copy of the group check buffer.
func (c *Controller) GroupChecks() []*ledger.CheckLine {
	return copyChecks(c.groupChecks)
}

// OpenEntry opens a blank single-entry form, cancelling any other open form.
// The date defaults to today.
func (c *Controller) OpenEntry() {
	c.reset()
	c.state = AddingEntry
	c.entry.Date = ledger.Today()
}

// OpenEntryEdit opens the single-entry form seeded from a stored non-group
// transaction.
func (c *Controller) OpenEntryEdit(id int64) error {
	txs, err := c.st.Transactions()
	if err != nil {
		return err
	}
	tx := ledger.FindByID(txs, id)
	if tx == nil {
		return &ledger.NotFoundError{ID: id}
	}
	if tx.Group {
		return &ledger.NotEditableError{ID: id}
	}

	c.reset()
	c.state = EditingEntry
	c.editID = id
	c.entry = EntryBuffer{
		Date:        tx.Date,
		CheckNumber: tx.CheckNumber,
		Type:        tx.Type,
		Ref:         tx.Ref,
		Payee:       tx.Payee,
		Class:       tx.Class,
		Location:    tx.Location,
		Payment:     tx.Payment,
		Deposit:     tx.Deposit,
		Account:     tx.Account,
		Memo:        tx.Memo,
		Reconciled:  tx.Reconciled,
		Voided:      tx.Voided,
	}
	return nil
}

// OpenGroup opens a blank group form, cancelling any other open form.
func (c *Controller) OpenGroup() {
	c.reset()
	c.state = AddingGroup
	c.group.Date = ledger.Today()
}

// OpenGroupEdit opens the group form seeded from a stored group transaction.
// The check buffer is a copy; edits do not touch the stored list until
// commit.
func (c *Controller) OpenGroupEdit(id int64) error {
	txs, err := c.st.Transactions()
	if err != nil {
		return err
	}
	tx := ledger.FindByID(txs, id)
	if tx == nil {
		return &ledger.NotFoundError{ID: id}
	}
	if !tx.Group {
		return &ledger.NotEditableError{ID: id}
	}

	c.reset()
	c.state = EditingGroup
	c.editID = id
	c.group = GroupBuffer{
		Date:     tx.Date,
		Type:     tx.Type,
		Location: tx.Location,
		Memo:     tx.Memo,
	}
	c.groupChecks = copyChecks(tx.Checks)
	return nil
}

// Cancel discards all buffered input and returns to idle. Nothing is
// persisted.
func (c *Controller) Cancel() {
	c.reset()
}

// AddPendingCheck appends a deposited check to the pending list of the open
// entry form. The check number is required and the amount must be positive.
func (c *Controller) AddPendingCheck(number string, amount decimal.Decimal) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return &ledger.MissingFieldError{Field: "check number"}
	}
	if !amount.IsPositive() {
		return &ledger.MissingAmountError{}
	}
	c.pendingChecks = append(c.pendingChecks, &ledger.CheckLine{
		Number: number,
		Amount: amount,
	})
	return nil
}

// RemovePendingCheck removes a pending check by position. Out-of-range
// indexes are ignored.
func (c *Controller) RemovePendingCheck(i int) {
	if i < 0 || i >= len(c.pendingChecks) {
		return
	}
	c.pendingChecks = append(c.pendingChecks[:i], c.pendingChecks[i+1:]...)
}

// CommitEntry validates the entry buffer and writes the transaction. A new
// entry is prepended with a fresh id; an edit replaces the stored row in
// place, preserving its check list. On success the controller returns to
// idle; on validation failure the buffers are left unchanged.
func (c *Controller) CommitEntry() (*ledger.Transaction, error) {
	e := c.entry

	deposit := e.Deposit
	if total := ledger.PendingTotal(c.pendingChecks); total.IsPositive() {
		// Deposited checks determine the deposit amount.
		deposit = total
	}

	if e.Date == "" {
		return nil, &ledger.MissingFieldError{Field: "date"}
	}
	if strings.TrimSpace(e.Payee) == "" {
		return nil, &ledger.MissingFieldError{Field: "payee"}
	}
	if !e.Payment.IsPositive() && !deposit.IsPositive() {
		return nil, &ledger.MissingAmountError{}
	}

	txs, err := c.st.Transactions()
	if err != nil {
		return nil, err
	}

	tx := &ledger.Transaction{
		Date:        e.Date,
		CheckNumber: strings.TrimSpace(e.CheckNumber),
		Type:        e.Type,
		Ref:         strings.TrimSpace(e.Ref),
		Payee:       strings.TrimSpace(e.Payee),
		Class:       strings.TrimSpace(e.Class),
		Location:    strings.TrimSpace(e.Location),
		Payment:     e.Payment,
		Deposit:     deposit,
		Account:     e.Account,
		Memo:        strings.TrimSpace(e.Memo),
		Checks:      copyChecks(c.pendingChecks),
		Reconciled:  e.Reconciled,
		Voided:      e.Voided,
	}

	switch c.state {
	case EditingEntry:
		stored := ledger.FindByID(txs, c.editID)
		if stored == nil {
			return nil, &ledger.NotFoundError{ID: c.editID}
		}
		tx.ID = c.editID
		// The inline editor never edits the check list itself.
		tx.Checks = stored.Checks
		replaceByID(txs, tx)
	default:
		tx.ID = ledger.NewID(txs)
		txs = append([]*ledger.Transaction{tx}, txs...)
	}

	if err := c.st.SaveTransactions(txs); err != nil {
		return nil, err
	}

	c.reset()
	return tx, nil
}

// AddGroupCheck validates one check line and appends it to the group-check
// buffer. Exactly one of payment/deposit must be positive; the check's type
// derives from which one. The form stays open.
func (c *Controller) AddGroupCheck(line ledger.CheckLine, payment, deposit decimal.Decimal) error {
	if strings.TrimSpace(line.Payee) == "" {
		return &ledger.MissingFieldError{Field: "payee"}
	}
	if payment.IsPositive() && deposit.IsPositive() {
		return &ledger.ConflictingAmountError{}
	}

	switch {
	case payment.IsPositive():
		line.Type = ledger.CheckPayment
		line.Amount = payment
	case deposit.IsPositive():
		line.Type = ledger.CheckDeposit
		line.Amount = deposit
	default:
		return &ledger.MissingAmountError{}
	}

	line.Payee = strings.TrimSpace(line.Payee)
	c.groupChecks = append(c.groupChecks, &line)
	return nil
}

// RemoveGroupCheck removes a buffered group check by position. Out-of-range
// indexes are ignored.
func (c *Controller) RemoveGroupCheck(i int) {
	if i < 0 || i >= len(c.groupChecks) {
		return
	}
	c.groupChecks = append(c.groupChecks[:i], c.groupChecks[i+1:]...)
}

// CommitGroup validates the group buffer and writes the group transaction.
// Payment and deposit are recomputed from the check buffer; the stored
// parent amounts are never authoritative. On success the controller returns
// to idle; on validation failure the buffers are left unchanged.
func (c *Controller) CommitGroup() (*ledger.Transaction, error) {
	if c.group.Date == "" {
		return nil, &ledger.MissingFieldError{Field: "date"}
	}
	if len(c.groupChecks) == 0 {
		return nil, &ledger.EmptyGroupError{}
	}

	txs, err := c.st.Transactions()
	if err != nil {
		return nil, err
	}

	payments, deposits := ledger.GroupTotals(c.groupChecks)

	tx := &ledger.Transaction{
		Date:     c.group.Date,
		Type:     c.group.Type,
		Payee:    ledger.GroupPayee,
		Location: strings.TrimSpace(c.group.Location),
		Memo:     strings.TrimSpace(c.group.Memo),
		Payment:  payments,
		Deposit:  deposits,
		Checks:   copyChecks(c.groupChecks),
		Group:    true,
	}

	switch c.state {
	case EditingGroup:
		if ledger.FindByID(txs, c.editID) == nil {
			return nil, &ledger.NotFoundError{ID: c.editID}
		}
		tx.ID = c.editID
		replaceByID(txs, tx)
	default:
		tx.ID = ledger.NewID(txs)
		txs = append([]*ledger.Transaction{tx}, txs...)
	}

	if err := c.st.SaveTransactions(txs); err != nil {
		return nil, err
	}

	c.reset()
	return tx, nil
}

// ToggleReconciled flips the reconciled flag on a transaction and persists
// immediately. No validation.
func (c *Controller) ToggleReconciled(id int64, value bool) error {
	return c.setFlag(id, func(tx *ledger.Transaction) { tx.Reconciled = value })
}

// ToggleVoid flips the voided flag on a transaction and persists
// immediately. The stored amounts are retained unchanged.
func (c *Controller) ToggleVoid(id int64, value bool) error {
	return c.setFlag(id, func(tx *ledger.Transaction) { tx.Voided = value })
}

// Delete removes a transaction by id and persists. Confirmation is the
// caller's responsibility.
func (c *Controller) Delete(id int64) error {
	txs, err := c.st.Transactions()
	if err != nil {
		return err
	}
	if ledger.FindByID(txs, id) == nil {
		return &ledger.NotFoundError{ID: id}
	}

	kept := txs[:0]
	for _, tx := range txs {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	return c.st.SaveTransactions(kept)
}

func (c *Controller) setFlag(id int64, apply func(*ledger.Transaction)) error {
	txs, err := c.st.Transactions()
	if err != nil {
		return err
	}
	tx := ledger.FindByID(txs, id)
	if tx == nil {
		return &ledger.NotFoundError{ID: id}
	}
	apply(tx)
	return c.st.SaveTransactions(txs)
}

func (c *Controller) reset() {
	c.state = Idle
	c.editID = 0
	c.entry = EntryBuffer{}
	c.pendingChecks = nil
	c.group = GroupBuffer{}
	c.groupChecks = nil
}

func replaceByID(txs []*ledger.Transaction, tx *ledger.Transaction) {
	for i, t := range txs {
		if t.ID == tx.ID {
			txs[i] = tx
			return
		}
	}
}

func copyChecks(checks []*ledger.CheckLine) []*ledger.CheckLine {
	if checks == nil {
		return nil
	}
	out := make([]*ledger.CheckLine, len(checks))
	for i, c := range checks {
		cc := *c
		out[i] = &cc
	}
	return out
}
