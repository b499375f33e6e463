package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
)

// BalanceCmd shows the persisted starting balance, or replaces it when an
// amount is given. Changing it reflows every running balance on the next
// register.
type BalanceCmd struct {
	Amount string `arg:"" optional:"" help:"New starting balance."`
}

func (cmd *BalanceCmd) Run(ctx *kong.Context, globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if cmd.Amount != "" {
		amount, err := decimal.NewFromString(cmd.Amount)
		if err != nil {
			return alert(ctx, fmt.Sprintf("invalid amount %q", cmd.Amount))
		}
		if err := st.SaveStartingBalance(amount); err != nil {
			return err
		}
		printSuccess(ctx.Stdout, fmt.Sprintf("Starting balance set to %s", formatMoney(amount, cfg.Currency)))
		return nil
	}

	starting, err := st.StartingBalance()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(ctx.Stdout, formatMoney(starting, cfg.Currency))
	return nil
}
