package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/checkbook-app/checkbook/ledger"
	"github.com/checkbook-app/checkbook/session"
)

// GroupCmd records a grouped transaction: a batch of checks posted under a
// single register row whose payment and deposit are the sums of the lines.
type GroupCmd struct {
	Edit int64 `help:"Edit the group transaction with this id instead of creating one."`

	Date     string            `help:"Group date (YYYY-MM-DD, defaults to today)."`
	Type     string            `help:"Transaction type." enum:",Expenditure,Transaction,Deposit" default:""`
	Location string            `help:"Location."`
	Memo     string            `help:"Memo text."`
	Payment  []PayeeAmountFlag `help:"Add a payment check (PAYEE=AMOUNT, repeatable)."`
	Deposit  []PayeeAmountFlag `help:"Add a deposit check (PAYEE=AMOUNT, repeatable)."`

	Interactive bool `short:"i" help:"Fill the group form interactively."`
}

func (cmd *GroupCmd) Run(ctx *kong.Context, globals *Globals) error {
	ctrl, st, err := newSession(globals)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if cmd.Edit != 0 {
		if err := ctrl.OpenGroupEdit(cmd.Edit); err != nil {
			if isValidationError(err) {
				return alert(ctx, err.Error())
			}
			return err
		}
	} else {
		ctrl.OpenGroup()
	}

	group := ctrl.Group()
	if cmd.Date != "" {
		group.Date = cmd.Date
	}
	if cmd.Type != "" {
		group.Type = cmd.Type
	}
	if cmd.Location != "" {
		group.Location = cmd.Location
	}
	if cmd.Memo != "" {
		group.Memo = cmd.Memo
	}

	for _, p := range cmd.Payment {
		if err := ctrl.AddGroupCheck(ledger.CheckLine{Payee: p.Payee}, p.Amount, decimal.Zero); err != nil {
			return alert(ctx, err.Error())
		}
	}
	for _, d := range cmd.Deposit {
		if err := ctrl.AddGroupCheck(ledger.CheckLine{Payee: d.Payee}, decimal.Zero, d.Amount); err != nil {
			return alert(ctx, err.Error())
		}
	}

	interactive := cmd.Interactive ||
		(len(cmd.Payment) == 0 && len(cmd.Deposit) == 0 && cmd.Edit == 0 && isTerminal())
	if interactive {
		if err := runGroupForm(ctrl); err != nil {
			return err
		}
	}

	if group.Date != "" && !ledger.ValidDate(group.Date) {
		return alert(ctx, fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", group.Date))
	}

	tx, err := ctrl.CommitGroup()
	if err != nil {
		if isValidationError(err) {
			return alert(ctx, err.Error())
		}
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Recorded group of %d checks (id %d)", len(tx.Checks), tx.ID))
	return nil
}

// runGroupForm fills the group header, then loops adding check lines until
// the user declines to add another.
func runGroupForm(ctrl *session.Controller) error {
	group := ctrl.Group()

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Date").Description("YYYY-MM-DD").
			Validate(requireDate).Value(&group.Date),
		huh.NewSelect[string]().Title("Type").
			Options(huh.NewOptions(ledger.TransactionTypes...)...).
			Value(&group.Type),
		huh.NewInput().Title("Location").Value(&group.Location),
		huh.NewInput().Title("Memo").Value(&group.Memo),
	))
	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read group form: %w", err)
	}

	for {
		more, err := promptYesNo("Add a check to the group?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		var line ledger.CheckLine
		var payment, deposit string
		checkForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Payee").Value(&line.Payee),
				huh.NewInput().Title("Check number").Value(&line.Number),
				huh.NewInput().Title("Payment").Validate(optionalAmount).Value(&payment),
				huh.NewInput().Title("Deposit").Validate(optionalAmount).Value(&deposit),
			),
			huh.NewGroup(
				huh.NewInput().Title("Account").Value(&line.Account),
				huh.NewInput().Title("Description").Value(&line.Description),
				huh.NewInput().Title("Payment method").Value(&line.PaymentMethod),
				huh.NewInput().Title("Ref #").Value(&line.Ref),
				huh.NewInput().Title("Class").Value(&line.Class),
			),
		)
		if err := checkForm.Run(); err != nil {
			return fmt.Errorf("failed to read check form: %w", err)
		}

		if err := ctrl.AddGroupCheck(line, parseAmount(payment), parseAmount(deposit)); err != nil {
			// Invalid line; re-prompt rather than abort the group.
			continue
		}
	}
}
