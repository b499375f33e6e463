// Package store persists checkbook state in a local key-value blob store.
//
// Two backends implement the KV interface: a directory of JSON files (one
// per key) and a single-table SQLite database. On top of either, Store
// decodes and encodes the typed state: the transaction collection, the
// account list and the starting balance. Every mutating operation writes the
// full updated value back before returning, so a crash between operations
// never loses a committed transaction.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/checkbook-app/checkbook/ledger"
)

// Storage keys. The values are JSON blobs with no schema versioning; the
// encoded form round-trips the ledger types exactly.
const (
	KeyTransactions    = "transactions"
	KeyAccounts        = "accounts"
	KeyStartingBalance = "startingBalance"
)

// KV is the blob store collaborator: string key to JSON value. Get returns
// (nil, nil) when the key has never been written.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Store reads and writes the typed checkbook state through a KV backend.
type Store struct {
	kv KV
}

// New wraps a KV backend in a typed store.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// Transactions loads the full transaction collection, newest-prepended
// order preserved. An absent key is an empty ledger.
func (s *Store) Transactions() ([]*ledger.Transaction, error) {
	raw, err := s.kv.Get(KeyTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	if raw == nil {
		return []*ledger.Transaction{}, nil
	}

	var txs []*ledger.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return txs, nil
}

// SaveTransactions writes the full transaction collection.
func (s *Store) SaveTransactions(txs []*ledger.Transaction) error {
	raw, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	if err := s.kv.Set(KeyTransactions, raw); err != nil {
		return fmt.Errorf("failed to write transactions: %w", err)
	}
	return nil
}

// Accounts loads the account list, seeding the default chart of accounts
// when the key is absent.
func (s *Store) Accounts() (*ledger.AccountList, error) {
	raw, err := s.kv.Get(KeyAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	if raw == nil {
		return ledger.NewAccountList(ledger.DefaultAccounts), nil
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return ledger.NewAccountList(names), nil
}

// SaveAccounts writes the account list.
func (s *Store) SaveAccounts(accounts *ledger.AccountList) error {
	raw, err := json.Marshal(accounts.Names())
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	if err := s.kv.Set(KeyAccounts, raw); err != nil {
		return fmt.Errorf("failed to write accounts: %w", err)
	}
	return nil
}

// StartingBalance loads the persisted starting balance, zero when absent.
func (s *Store) StartingBalance() (decimal.Decimal, error) {
	raw, err := s.kv.Get(KeyStartingBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read starting balance: %w", err)
	}
	if raw == nil {
		return decimal.Zero, nil
	}

	var balance decimal.Decimal
	if err := json.Unmarshal(raw, &balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode starting balance: %w", err)
	}
	return balance, nil
}

// SaveStartingBalance writes the starting balance.
func (s *Store) SaveStartingBalance(balance decimal.Decimal) error {
	raw, err := json.Marshal(balance)
	if err != nil {
		return fmt.Errorf("failed to encode starting balance: %w", err)
	}
	if err := s.kv.Set(KeyStartingBalance, raw); err != nil {
		return fmt.Errorf("failed to write starting balance: %w", err)
	}
	return nil
}
