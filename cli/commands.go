package cli

import (
	"fmt"

	"github.com/checkbook-app/checkbook/config"
	"github.com/checkbook-app/checkbook/ledger"
	"github.com/checkbook-app/checkbook/session"
	"github.com/checkbook-app/checkbook/store"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Config    string `help:"Config file location." type:"path"`
	Data      string `help:"Data location (directory for the file store, database file for sqlite)." type:"path"`
	Store     string `help:"Store backend (file or sqlite)." enum:",file,sqlite" default:""`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Add       AddCmd       `cmd:"" help:"Record a single transaction."`
	Group     GroupCmd     `cmd:"" help:"Record a grouped multi-check transaction."`
	Edit      EditCmd      `cmd:"" help:"Edit a transaction in place."`
	Delete    DeleteCmd    `cmd:"" help:"Delete a transaction."`
	Void      VoidCmd      `cmd:"" help:"Void or un-void a transaction."`
	Reconcile ReconcileCmd `cmd:"" help:"Mark a transaction reconciled or not."`
	Register  RegisterCmd  `cmd:"" help:"Show the register with running balances."`
	Summary   SummaryCmd   `cmd:"" help:"Show payment/deposit totals and the ending balance."`
	Accounts  AccountsCmd  `cmd:"" help:"List or add accounts."`
	Balance   BalanceCmd   `cmd:"" help:"Show or set the starting balance."`
	Export    ExportCmd    `cmd:"" help:"Export the register to a CSV or XLSX file."`
	Web       WebCmd       `cmd:"" help:"Start a read-only web viewer."`
	Doctor    DoctorCmd    `cmd:"" help:"Doctor utilities for debugging a checkbook data store."`
}

// loadConfig resolves the effective configuration: the config file (or
// defaults when absent) with command-line flags layered on top.
func (g *Globals) loadConfig() (*config.Config, error) {
	path := g.Config
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if g.Store != "" {
		cfg.Store = g.Store
	}
	if g.Data != "" {
		cfg.Path = g.Data
	}
	return cfg, nil
}

// openStore opens the configured store backend. The returned watch path is
// the filesystem location a watcher should observe for external changes.
func openStore(cfg *config.Config) (st *store.Store, watchPath string, err error) {
	switch cfg.Store {
	case config.StoreSQLite:
		kv, err := store.OpenSQLite(cfg.Path)
		if err != nil {
			return nil, "", err
		}
		return store.New(kv), kv.Path(), nil
	case config.StoreFile:
		kv, err := store.OpenFile(cfg.Path)
		if err != nil {
			return nil, "", err
		}
		return store.New(kv), kv.Dir(), nil
	}
	return nil, "", fmt.Errorf("unknown store backend %q", cfg.Store)
}

// newSession opens the store and wraps it in an edit-session controller.
func newSession(g *Globals) (*session.Controller, *store.Store, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	if len(cfg.Accounts) > 0 {
		// Seed the configured chart of accounts on first use.
		if err := seedAccounts(st, cfg.Accounts); err != nil {
			_ = st.Close()
			return nil, nil, err
		}
	}

	return session.NewController(st), st, nil
}

func seedAccounts(st *store.Store, names []string) error {
	accounts, err := st.Accounts()
	if err != nil {
		return err
	}
	changed := false
	for _, name := range names {
		if accounts.Add(name) {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return st.SaveAccounts(accounts)
}

// accountNames returns the stored account list for form selects.
func accountNames(st *store.Store) []string {
	accounts, err := st.Accounts()
	if err != nil {
		return ledger.DefaultAccounts
	}
	return accounts.Names()
}
