package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// AccountsCmd manages the stored account list.
type AccountsCmd struct {
	List AccountsListCmd `cmd:"" default:"1" help:"List the accounts."`
	Add  AccountsAddCmd  `cmd:"" help:"Add an account."`
}

// AccountsListCmd prints the account names in their stored order.
type AccountsListCmd struct{}

func (cmd *AccountsListCmd) Run(ctx *kong.Context, globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	accounts, err := st.Accounts()
	if err != nil {
		return err
	}

	for _, name := range accounts.Names() {
		_, _ = fmt.Fprintln(ctx.Stdout, name)
	}
	return nil
}

// AccountsAddCmd adds an account. Adding an existing name is a no-op.
type AccountsAddCmd struct {
	Name string `arg:"" help:"Account name to add."`
}

func (cmd *AccountsAddCmd) Run(ctx *kong.Context, globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	accounts, err := st.Accounts()
	if err != nil {
		return err
	}

	if !accounts.Add(cmd.Name) {
		printInfof(ctx.Stdout, "Account %q already exists", cmd.Name)
		return nil
	}
	if err := st.SaveAccounts(accounts); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Added account %q", cmd.Name))
	return nil
}
