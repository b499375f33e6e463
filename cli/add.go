package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/checkbook-app/checkbook/ledger"
	"github.com/checkbook-app/checkbook/session"
)

// AddCmd records a single transaction. With no flags on a terminal it runs
// the interactive entry form; flags fill the form fields directly.
type AddCmd struct {
	Date        string          `help:"Transaction date (YYYY-MM-DD, defaults to today)."`
	Payee       string          `help:"Payee name."`
	Type        string          `help:"Transaction type." enum:",Expenditure,Transaction,Deposit" default:""`
	CheckNumber string          `help:"Check number."`
	Ref         string          `help:"Reference number."`
	Class       string          `help:"Classification."`
	Location    string          `help:"Location."`
	Account     string          `help:"Account name."`
	Memo        string          `help:"Memo text."`
	Payment     decimal.Decimal `help:"Payment amount (money out)."`
	Deposit     decimal.Decimal `help:"Deposit amount (money in)."`
	Check       []CheckFlag     `help:"Attach a deposited check (NUMBER=AMOUNT, repeatable). The checks total overrides --deposit."`
	Reconciled  bool            `help:"Mark the entry reconciled."`
	Void        bool            `help:"Record the entry voided."`
	Interactive bool            `short:"i" help:"Fill the entry form interactively."`
}

func (cmd *AddCmd) Run(ctx *kong.Context, globals *Globals) error {
	ctrl, st, err := newSession(globals)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctrl.OpenEntry()
	entry := ctrl.Entry()
	cmd.fillEntry(entry)

	for _, check := range cmd.Check {
		if err := ctrl.AddPendingCheck(check.Number, check.Amount); err != nil {
			return alert(ctx, err.Error())
		}
	}

	if cmd.Interactive || (cmd.Payee == "" && isTerminal()) {
		if err := runEntryForm(ctrl, accountNames(st)); err != nil {
			return err
		}
	}

	if entry.Date != "" && !ledger.ValidDate(entry.Date) {
		return alert(ctx, fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", entry.Date))
	}

	tx, err := ctrl.CommitEntry()
	if err != nil {
		if isValidationError(err) {
			return alert(ctx, err.Error())
		}
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Recorded %s (id %d)", tx.Payee, tx.ID))
	return nil
}

func (cmd *AddCmd) fillEntry(entry *session.EntryBuffer) {
	if cmd.Date != "" {
		entry.Date = cmd.Date
	}
	entry.Payee = cmd.Payee
	entry.Type = cmd.Type
	entry.CheckNumber = cmd.CheckNumber
	entry.Ref = cmd.Ref
	entry.Class = cmd.Class
	entry.Location = cmd.Location
	entry.Account = cmd.Account
	entry.Memo = cmd.Memo
	entry.Payment = cmd.Payment
	entry.Deposit = cmd.Deposit
	entry.Reconciled = cmd.Reconciled
	entry.Voided = cmd.Void
}

// runEntryForm fills the entry buffer through the interactive form, then
// loops over the deposited-check prompt until the user is done.
func runEntryForm(ctrl *session.Controller, accounts []string) error {
	entry := ctrl.Entry()

	payment := amountString(entry.Payment)
	deposit := amountString(entry.Deposit)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Date").Description("YYYY-MM-DD").
				Validate(requireDate).Value(&entry.Date),
			huh.NewInput().Title("Payee").Value(&entry.Payee),
			huh.NewSelect[string]().Title("Type").
				Options(huh.NewOptions(ledger.TransactionTypes...)...).
				Value(&entry.Type),
			huh.NewSelect[string]().Title("Account").
				Options(huh.NewOptions(append([]string{""}, accounts...)...)...).
				Value(&entry.Account),
		),
		huh.NewGroup(
			huh.NewInput().Title("Payment").Validate(optionalAmount).Value(&payment),
			huh.NewInput().Title("Deposit").Validate(optionalAmount).Value(&deposit),
			huh.NewInput().Title("Check #").Value(&entry.CheckNumber),
			huh.NewInput().Title("Ref #").Value(&entry.Ref),
			huh.NewInput().Title("Class").Value(&entry.Class),
			huh.NewInput().Title("Location").Value(&entry.Location),
			huh.NewInput().Title("Memo").Value(&entry.Memo),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read entry form: %w", err)
	}

	entry.Payment = parseAmount(payment)
	entry.Deposit = parseAmount(deposit)

	for {
		more, err := promptYesNo("Attach a deposited check?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		var number, amount string
		checkForm := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Check number").Value(&number),
			huh.NewInput().Title("Amount").Validate(requireAmount).Value(&amount),
		))
		if err := checkForm.Run(); err != nil {
			return fmt.Errorf("failed to read check form: %w", err)
		}

		if err := ctrl.AddPendingCheck(number, parseAmount(amount)); err != nil {
			// Invalid check input; re-prompt rather than abort the entry.
			continue
		}
	}
}

func amountString(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func requireDate(s string) error {
	if !ledger.ValidDate(s) {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func requireAmount(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return fmt.Errorf("expected a positive amount")
	}
	return nil
}

func optionalAmount(s string) error {
	if s == "" {
		return nil
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return fmt.Errorf("expected a number")
	}
	return nil
}
