// Large Register Generator
//
// This tool fills a checkbook store with random transactions for performance
// testing and profiling. It creates realistic entries, grouped check batches,
// and the occasional voided or reconciled row to stress-test the register and
// balance computation.
//
// Usage:
//
//	go run main.go -data /tmp/checkbook
//	go run main.go -data /tmp/checkbook.db -store sqlite -count 100000
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/shopspring/decimal"

	"github.com/checkbook-app/checkbook/ledger"
	"github.com/checkbook-app/checkbook/store"
)

var (
	payees = []string{
		"Whole Foods", "Safeway", "Trader Joe's", "Costco",
		"Shell Gas", "Chevron", "City Transit", "Uber",
		"Landlord", "PG&E", "Comcast", "AT&T",
		"Amazon", "Target", "Best Buy", "Apple Store",
		"Netflix", "Spotify", "AMC Theaters",
		"Employer Inc", "State Farm", "Dr. Alvarez",
	}

	memos = []string{
		"Grocery shopping", "Fuel purchase", "Rent payment",
		"Salary deposit", "Utility bill", "Online purchase",
		"Restaurant dinner", "Monthly subscription",
		"Medical appointment", "Insurance premium", "Gift",
	}

	classes   = []string{"", "Household", "Auto", "Medical", "Entertainment"}
	locations = []string{"", "Downtown", "Main St", "Online"}
)

func main() {
	dataPath := flag.String("data", "", "data location (directory for the file store, database file for sqlite)")
	backend := flag.String("store", "file", "store backend (file or sqlite)")
	count := flag.Int("count", 50000, "number of transactions to generate")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "-data is required")
		os.Exit(2)
	}

	if err := run(*dataPath, *backend, *count, *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dataPath, backend string, count int, seed int64) error {
	var kv store.KV
	var err error
	switch backend {
	case "sqlite":
		kv, err = store.OpenSQLite(dataPath)
	case "file":
		kv, err = store.OpenFile(dataPath)
	default:
		return fmt.Errorf("unknown store backend %q", backend)
	}
	if err != nil {
		return err
	}

	st := store.New(kv)
	defer func() { _ = st.Close() }()

	rng := rand.New(rand.NewSource(seed))
	txs := make([]*ledger.Transaction, 0, count)

	// Ids descend so the newest-first invariant holds for the slice order.
	baseID := int64(1_700_000_000_000)
	for i := 0; i < count; i++ {
		tx := randomTransaction(rng, baseID+int64(count-i))
		txs = append(txs, tx)
	}

	if err := st.SaveStartingBalance(decimal.NewFromInt(10_000)); err != nil {
		return err
	}
	if err := st.SaveTransactions(txs); err != nil {
		return err
	}

	fmt.Printf("wrote %d transactions to %s\n", count, dataPath)
	return nil
}

func randomTransaction(rng *rand.Rand, id int64) *ledger.Transaction {
	tx := &ledger.Transaction{
		ID:         id,
		Date:       randomDate(rng),
		Payee:      payees[rng.Intn(len(payees))],
		Class:      classes[rng.Intn(len(classes))],
		Location:   locations[rng.Intn(len(locations))],
		Memo:       memos[rng.Intn(len(memos))],
		Reconciled: rng.Intn(4) == 0,
		Voided:     rng.Intn(50) == 0,
	}

	switch rng.Intn(10) {
	case 0:
		// Grouped batch of checks.
		tx.Payee = ledger.GroupPayee
		tx.Group = true
		for i := 0; i < 2+rng.Intn(4); i++ {
			line := &ledger.CheckLine{
				Number: fmt.Sprintf("%d", 1000+rng.Intn(9000)),
				Payee:  payees[rng.Intn(len(payees))],
				Amount: randomAmount(rng, 500),
				Type:   ledger.CheckPayment,
			}
			if rng.Intn(3) == 0 {
				line.Type = ledger.CheckDeposit
			}
			tx.Checks = append(tx.Checks, line)
		}
		tx.Payment, tx.Deposit = ledger.GroupTotals(tx.Checks)
	case 1, 2:
		tx.Deposit = randomAmount(rng, 3000)
	default:
		tx.Payment = randomAmount(rng, 400)
		if rng.Intn(5) == 0 {
			tx.CheckNumber = fmt.Sprintf("%d", 1000+rng.Intn(9000))
		}
	}

	return tx
}

func randomDate(rng *rand.Rand) string {
	year := 2015 + rng.Intn(10)
	month := 1 + rng.Intn(12)
	day := 1 + rng.Intn(28)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func randomAmount(rng *rand.Rand, max int) decimal.Decimal {
	cents := int64(1 + rng.Intn(max*100))
	return decimal.New(cents, -2)
}
