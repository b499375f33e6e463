package cli

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/checkbook-app/checkbook/ledger"
)

// EditCmd edits a stored transaction in place. Group rows are redirected to
// the group command; their parent amounts are derived and never edited
// directly.
type EditCmd struct {
	ID int64 `arg:"" help:"Transaction id to edit."`

	Date        string  `help:"New date (YYYY-MM-DD)."`
	Payee       string  `help:"New payee."`
	Type        string  `help:"New transaction type." enum:",Expenditure,Transaction,Deposit" default:""`
	CheckNumber string  `help:"New check number."`
	Ref         string  `help:"New reference number."`
	Class       string  `help:"New classification."`
	Location    string  `help:"New location."`
	Account     string  `help:"New account name."`
	Memo        string  `help:"New memo text."`
	Payment     *string `help:"New payment amount (money out)."`
	Deposit     *string `help:"New deposit amount (money in)."`

	Interactive bool `short:"i" help:"Edit through the interactive entry form."`
}

func (cmd *EditCmd) Run(ctx *kong.Context, globals *Globals) error {
	ctrl, st, err := newSession(globals)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := ctrl.OpenEntryEdit(cmd.ID); err != nil {
		var notEditable *ledger.NotEditableError
		if errors.As(err, &notEditable) {
			return alert(ctx, fmt.Sprintf("transaction %d is a group; use the group command with --edit", cmd.ID))
		}
		if isValidationError(err) {
			return alert(ctx, err.Error())
		}
		return err
	}

	entry := ctrl.Entry()
	if cmd.Date != "" {
		entry.Date = cmd.Date
	}
	if cmd.Payee != "" {
		entry.Payee = cmd.Payee
	}
	if cmd.Type != "" {
		entry.Type = cmd.Type
	}
	if cmd.CheckNumber != "" {
		entry.CheckNumber = cmd.CheckNumber
	}
	if cmd.Ref != "" {
		entry.Ref = cmd.Ref
	}
	if cmd.Class != "" {
		entry.Class = cmd.Class
	}
	if cmd.Location != "" {
		entry.Location = cmd.Location
	}
	if cmd.Account != "" {
		entry.Account = cmd.Account
	}
	if cmd.Memo != "" {
		entry.Memo = cmd.Memo
	}
	if cmd.Payment != nil {
		entry.Payment = parseAmount(*cmd.Payment)
	}
	if cmd.Deposit != nil {
		entry.Deposit = parseAmount(*cmd.Deposit)
	}

	if cmd.Interactive || (!cmd.anyFieldSet() && isTerminal()) {
		if err := runEntryForm(ctrl, accountNames(st)); err != nil {
			return err
		}
	}

	if !ledger.ValidDate(entry.Date) {
		return alert(ctx, fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", entry.Date))
	}

	tx, err := ctrl.CommitEntry()
	if err != nil {
		if isValidationError(err) {
			return alert(ctx, err.Error())
		}
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Updated %s (id %d)", tx.Payee, tx.ID))
	return nil
}

func (cmd *EditCmd) anyFieldSet() bool {
	return cmd.Date != "" || cmd.Payee != "" || cmd.Type != "" ||
		cmd.CheckNumber != "" || cmd.Ref != "" || cmd.Class != "" ||
		cmd.Location != "" || cmd.Account != "" || cmd.Memo != "" ||
		cmd.Payment != nil || cmd.Deposit != nil
}
