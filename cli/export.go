package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/checkbook-app/checkbook/ledger"
)

// ExportCmd writes the register to a file. The format follows the file
// extension: .csv or .xlsx. XLSX exports carry a second sheet with the
// individual check lines of grouped and multi-check rows.
type ExportCmd struct {
	File string `arg:"" help:"Output filename (.csv or .xlsx)." type:"path"`
}

var registerHeader = []string{
	"ID", "Date", "Check", "Type", "Ref", "Payee", "Class", "Location",
	"Payment", "Deposit", "Account", "Memo", "Reconciled", "Voided", "Group", "Balance",
}

var checksHeader = []string{
	"Transaction ID", "Check", "Payee", "Type", "Amount", "Account", "Description", "Method", "Ref", "Class",
}

func (cmd *ExportCmd) Run(ctx *kong.Context, globals *Globals) error {
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

	balances := ledger.RunningBalances(txs, starting)
	rows := ledger.SortForDisplay(txs, nil)

	switch strings.ToLower(filepath.Ext(cmd.File)) {
	case ".csv":
		err = exportCSV(cmd.File, rows, balances)
	case ".xlsx":
		err = exportXLSX(cmd.File, rows, balances)
	default:
		return alert(ctx, fmt.Sprintf("unsupported export format %q (expected .csv or .xlsx)", filepath.Ext(cmd.File)))
	}
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Exported %d transactions to %s", len(rows), pathStyle.Render(cmd.File)))
	return nil
}

func exportCSV(path string, rows []*ledger.Transaction, balances map[int64]decimal.Decimal) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(registerHeader); err != nil {
		return err
	}
	for _, tx := range rows {
		if err := w.Write(transactionRecord(tx, balances)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func exportXLSX(path string, rows []*ledger.Transaction, balances map[int64]decimal.Decimal) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const registerSheet = "Register"
	const checksSheet = "Checks"

	if err := f.SetSheetName("Sheet1", registerSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(checksSheet); err != nil {
		return err
	}

	if err := writeSheetRow(f, registerSheet, 1, registerHeader); err != nil {
		return err
	}
	for i, tx := range rows {
		if err := writeSheetRow(f, registerSheet, i+2, transactionRecord(tx, balances)); err != nil {
			return err
		}
	}

	if err := writeSheetRow(f, checksSheet, 1, checksHeader); err != nil {
		return err
	}
	line := 2
	for _, tx := range rows {
		for _, check := range tx.Checks {
			record := []string{
				fmt.Sprintf("%d", tx.ID),
				check.Number,
				check.Payee,
				check.Type,
				check.Amount.StringFixed(2),
				check.Account,
				check.Description,
				check.PaymentMethod,
				check.Ref,
				check.Class,
			}
			if err := writeSheetRow(f, checksSheet, line, record); err != nil {
				return err
			}
			line++
		}
	}

	return f.SaveAs(path)
}

func writeSheetRow(f *excelize.File, sheet string, row int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, cell := range cells {
		values[i] = cell
	}
	return f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values)
}

func transactionRecord(tx *ledger.Transaction, balances map[int64]decimal.Decimal) []string {
	return []string{
		fmt.Sprintf("%d", tx.ID),
		tx.Date,
		tx.CheckNumber,
		tx.Type,
		tx.Ref,
		tx.Payee,
		tx.Class,
		tx.Location,
		tx.Payment.StringFixed(2),
		tx.Deposit.StringFixed(2),
		tx.Account,
		tx.Memo,
		boolCell(tx.Reconciled),
		boolCell(tx.Voided),
		boolCell(tx.Group),
		balances[tx.ID].StringFixed(2),
	}
}

func boolCell(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
