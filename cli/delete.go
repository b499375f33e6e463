package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// DeleteCmd removes a transaction from the register. Deletion is permanent,
// so on a terminal it asks first unless --force is given.
type DeleteCmd struct {
	ID    int64 `arg:"" help:"Transaction id to delete."`
	Force bool  `short:"f" help:"Delete without asking for confirmation."`
}

func (cmd *DeleteCmd) Run(ctx *kong.Context, globals *Globals) error {
	ctrl, st, err := newSession(globals)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if !cmd.Force {
		confirmed, err := promptYesNo(fmt.Sprintf("Delete transaction %d? This cannot be undone.", cmd.ID))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Aborted, nothing deleted")
			return nil
		}
	}

	if err := ctrl.Delete(cmd.ID); err != nil {
		if isValidationError(err) {
			return alert(ctx, err.Error())
		}
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Deleted transaction %d", cmd.ID))
	return nil
}
