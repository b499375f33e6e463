package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/checkbook-app/checkbook/ledger"
)

// SummaryCmd prints the aggregate totals: payments, deposits, net, and the
// ending balance.
type SummaryCmd struct{}

var (
	summaryLabelStyle    = lipgloss.NewStyle().Faint(true)
	summaryNegativeStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
)

func (cmd *SummaryCmd) Run(ctx *kong.Context, globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	txs, err := st.Transactions()
	if err != nil {
		return err
	}
	starting, err := st.StartingBalance()
	if err != nil {
		return err
	}

	summary := ledger.Summarize(txs, starting)

	rows := []struct {
		label  string
		amount string
		redden bool
	}{
		{"Starting balance", formatMoney(starting, cfg.Currency), starting.IsNegative()},
		{"Total payments", formatMoney(summary.TotalPayments, cfg.Currency), false},
		{"Total deposits", formatMoney(summary.TotalDeposits, cfg.Currency), false},
		{"Net", formatMoney(summary.Net, cfg.Currency), summary.Net.IsNegative()},
		{"Ending balance", formatMoney(summary.Ending, cfg.Currency), summary.Ending.IsNegative()},
	}

	width := 0
	for _, row := range rows {
		if len(row.amount) > width {
			width = len(row.amount)
		}
	}

	for _, row := range rows {
		amount := fmt.Sprintf("%*s", width, row.amount)
		if row.redden {
			amount = summaryNegativeStyle.Render(amount)
		}
		_, _ = fmt.Fprintf(ctx.Stdout, "%s  %s\n",
			summaryLabelStyle.Render(fmt.Sprintf("%-17s", row.label)),
			amount,
		)
	}
	return nil
}
