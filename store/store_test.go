package store

import (
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/checkbook-app/checkbook/ledger"
)

func openBackends(t *testing.T) map[string]KV {
	t.Helper()

	fileKV, err := OpenFile(filepath.Join(t.TempDir(), "data"))
	assert.NoError(t, err)

	sqliteKV, err := OpenSQLite(filepath.Join(t.TempDir(), "checkbook.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqliteKV.Close() })

	return map[string]KV{"File": fileKV, "SQLite": sqliteKV}
}

func TestKVBackends(t *testing.T) {
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("MissingKeyIsNil", func(t *testing.T) {
				raw, err := kv.Get("never-written")
				assert.NoError(t, err)
				assert.Equal(t, []byte(nil), raw)
			})

			t.Run("SetThenGet", func(t *testing.T) {
				assert.NoError(t, kv.Set("k", []byte(`{"a":1}`)))

				raw, err := kv.Get("k")
				assert.NoError(t, err)
				assert.Equal(t, `{"a":1}`, string(raw))
			})

			t.Run("SetReplaces", func(t *testing.T) {
				assert.NoError(t, kv.Set("k", []byte(`1`)))
				assert.NoError(t, kv.Set("k", []byte(`2`)))

				raw, err := kv.Get("k")
				assert.NoError(t, err)
				assert.Equal(t, "2", string(raw))
			})
		})
	}
}

func TestStore(t *testing.T) {
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			st := New(kv)

			t.Run("EmptyLedger", func(t *testing.T) {
				txs, err := st.Transactions()
				assert.NoError(t, err)
				assert.Equal(t, 0, len(txs))
			})

			t.Run("TransactionsRoundTrip", func(t *testing.T) {
				txs := []*ledger.Transaction{
					{
						ID:      2,
						Date:    "2024-01-02",
						Payee:   ledger.GroupPayee,
						Group:   true,
						Payment: decimal.NewFromInt(30),
						Deposit: decimal.NewFromInt(20),
						Checks: []*ledger.CheckLine{
							{Payee: "X", Type: ledger.CheckPayment, Amount: decimal.NewFromInt(30)},
							{Payee: "Y", Type: ledger.CheckDeposit, Amount: decimal.NewFromInt(20)},
						},
					},
					{ID: 1, Date: "2024-01-01", Payee: "Acme", Deposit: decimal.NewFromFloat(99.99)},
				}

				assert.NoError(t, st.SaveTransactions(txs))

				loaded, err := st.Transactions()
				assert.NoError(t, err)
				assert.Equal(t, 2, len(loaded))
				// Stored order (newest prepended) is preserved.
				assert.Equal(t, int64(2), loaded[0].ID)
				assert.True(t, loaded[0].Group)
				assert.Equal(t, 2, len(loaded[0].Checks))
				assert.True(t, loaded[1].Deposit.Equal(decimal.NewFromFloat(99.99)))
			})

			t.Run("AccountsSeedDefaults", func(t *testing.T) {
				accounts, err := st.Accounts()
				assert.NoError(t, err)
				assert.Equal(t, ledger.DefaultAccounts, accounts.Names())
			})

			t.Run("AccountsRoundTrip", func(t *testing.T) {
				accounts := ledger.NewAccountList([]string{"Checking", "Petty Cash"})
				assert.NoError(t, st.SaveAccounts(accounts))

				loaded, err := st.Accounts()
				assert.NoError(t, err)
				assert.Equal(t, []string{"Checking", "Petty Cash"}, loaded.Names())
			})

			t.Run("StartingBalanceDefaultsToZero", func(t *testing.T) {
				balance, err := st.StartingBalance()
				assert.NoError(t, err)
				assert.True(t, balance.IsZero())
			})

			t.Run("StartingBalanceRoundTrip", func(t *testing.T) {
				assert.NoError(t, st.SaveStartingBalance(decimal.NewFromFloat(1234.56)))

				balance, err := st.StartingBalance()
				assert.NoError(t, err)
				assert.True(t, balance.Equal(decimal.NewFromFloat(1234.56)))
			})
		})
	}
}
