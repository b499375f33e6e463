package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// VoidCmd marks a transaction voided or restores it. A voided row keeps its
// amounts but is excluded from balances and totals.
type VoidCmd struct {
	ID  int64 `arg:"" help:"Transaction id to void."`
	Off bool  `help:"Un-void the transaction instead."`
}

func (cmd *VoidCmd) Run(ctx *kong.Context, globals *Globals) error {
	ctrl, st, err := newSession(globals)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := ctrl.ToggleVoid(cmd.ID, !cmd.Off); err != nil {
		if isValidationError(err) {
			return alert(ctx, err.Error())
		}
		return err
	}

	if cmd.Off {
		printSuccess(ctx.Stdout, fmt.Sprintf("Restored transaction %d", cmd.ID))
	} else {
		printSuccess(ctx.Stdout, fmt.Sprintf("Voided transaction %d", cmd.ID))
	}
	return nil
}

// ReconcileCmd marks a transaction reconciled against a bank statement, or
// clears the mark.
type ReconcileCmd struct {
	ID  int64 `arg:"" help:"Transaction id to reconcile."`
	Off bool  `help:"Clear the reconciled mark instead."`
}

func (cmd *ReconcileCmd) Run(ctx *kong.Context, globals *Globals) error {
	ctrl, st, err := newSession(globals)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := ctrl.ToggleReconciled(cmd.ID, !cmd.Off); err != nil {
		if isValidationError(err) {
			return alert(ctx, err.Error())
		}
		return err
	}

	if cmd.Off {
		printSuccess(ctx.Stdout, fmt.Sprintf("Cleared reconciled mark on transaction %d", cmd.ID))
	} else {
		printSuccess(ctx.Stdout, fmt.Sprintf("Reconciled transaction %d", cmd.ID))
	}
	return nil
}
