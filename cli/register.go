package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/checkbook-app/checkbook/ledger"
	"github.com/checkbook-app/checkbook/output"
	"github.com/checkbook-app/checkbook/telemetry"
)

// RegisterCmd prints the transaction register with running balances. The
// default order is newest first; --sort re-sorts on a column and --desc
// flips its direction.
type RegisterCmd struct {
	Sort   string `help:"Sort column." enum:",date,check,type,ref,payee,class,location,payment,deposit,account,memo,reconciled,voided" default:""`
	Desc   bool   `help:"Sort descending."`
	Checks bool   `help:"Show the check lines under grouped and multi-check rows."`
	Limit  int    `help:"Show at most this many rows (0 for all)."`
}

func (cmd *RegisterCmd) Run(ctx *kong.Context, globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	runCtx := context.Background()

	var collector telemetry.Collector
	var registerTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				registerTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		registerTimer = collector.Start("register")
		defer reportTelemetry()
	}

	loadTimer := telemetry.FromContext(runCtx).Start("load transactions")
	txs, err := st.Transactions()
	if err != nil {
		return err
	}
	starting, err := st.StartingBalance()
	if err != nil {
		return err
	}
	loadTimer.End()

	var sortState *ledger.SortState
	if cmd.Sort != "" {
		sortState = &ledger.SortState{Column: cmd.Sort, Desc: cmd.Desc}
	}

	computeTimer := telemetry.FromContext(runCtx).Start("compute balances")
	balances := ledger.RunningBalances(txs, starting)
	rows := ledger.SortForDisplay(txs, sortState)
	computeTimer.End()

	if cmd.Limit > 0 && len(rows) > cmd.Limit {
		rows = rows[:cmd.Limit]
	}

	if len(rows) == 0 {
		printInfof(ctx.Stdout, "No transactions recorded")
		return nil
	}

	renderRegister(ctx.Stdout, rows, balances, cfg.Currency, cmd.Checks)
	return nil
}

var voidedRowStyle = lipgloss.NewStyle().Faint(true)

func renderRegister(w io.Writer, rows []*ledger.Transaction, balances map[int64]decimal.Decimal, currency string, showChecks bool) {
	payeeWidth := payeeColumnWidth()

	tbl := newTable(
		tableColumn{title: "ID", align: alignRight},
		tableColumn{title: "DATE"},
		tableColumn{title: "CHECK"},
		tableColumn{title: "PAYEE"},
		tableColumn{title: "PAYMENT", align: alignRight},
		tableColumn{title: "DEPOSIT", align: alignRight},
		tableColumn{title: "BALANCE", align: alignRight},
		tableColumn{title: "FLAGS"},
	)

	for _, tx := range rows {
		var payment, deposit string
		if tx.Payment.IsPositive() {
			payment = formatMoney(tx.Payment, currency)
		}
		if tx.Deposit.IsPositive() {
			deposit = formatMoney(tx.Deposit, currency)
		}

		var balance string
		if !tx.Voided {
			balance = formatMoney(balances[tx.ID], currency)
		}

		var style func(string) string
		if tx.Voided {
			style = func(s string) string { return voidedRowStyle.Render(s) }
		}

		payee := tx.Payee
		if tx.Group {
			payee = fmt.Sprintf("%s (%d checks)", payee, len(tx.Checks))
		}

		tbl.addRow(style,
			fmt.Sprintf("%d", tx.ID),
			tx.Date,
			tx.CheckNumber,
			truncate(payee, payeeWidth),
			payment,
			deposit,
			balance,
			flagColumn(tx),
		)

		if showChecks {
			for _, check := range tx.Checks {
				label := check.Payee
				if label == "" {
					label = "Check " + check.Number
				}
				amount := formatMoney(check.Amount, currency)
				if check.Type == ledger.CheckPayment {
					tbl.addRow(style, "", "", check.Number, "  "+truncate(label, payeeWidth-2), amount, "", "", "")
				} else {
					tbl.addRow(style, "", "", check.Number, "  "+truncate(label, payeeWidth-2), "", amount, "", "")
				}
			}
		}
	}

	tbl.render(w)
}

func flagColumn(tx *ledger.Transaction) string {
	var flags []byte
	if tx.Reconciled {
		flags = append(flags, 'R')
	}
	if tx.Voided {
		flags = append(flags, 'V')
	}
	if tx.Group {
		flags = append(flags, 'G')
	}
	return string(flags)
}

// payeeColumnWidth leaves room for the fixed-width columns on narrow
// terminals.
func payeeColumnWidth() int {
	width := terminalWidth(120)
	payee := width - 70
	if payee < 16 {
		payee = 16
	}
	if payee > 40 {
		payee = 40
	}
	return payee
}
