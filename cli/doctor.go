package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/checkbook-app/checkbook/config"
)

// DoctorCmd provides doctor utilities for debugging a checkbook data store.
type DoctorCmd struct {
	Dump  DumpCmd  `cmd:"" help:"Dump the raw stored transactions."`
	Paths PathsCmd `cmd:"" help:"Show the resolved config and data locations."`
}

// DumpCmd prints the stored transactions as Go values, useful when the
// register output hides a field that looks wrong.
type DumpCmd struct{}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
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

	repr.New(ctx.Stdout, repr.Indent("  ")).Println(txs)
	return nil
}

// PathsCmd shows where configuration and data are read from.
type PathsCmd struct{}

func (cmd *PathsCmd) Run(ctx *kong.Context, globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	st, watchPath, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	configPath := globals.Config
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	_, _ = fmt.Fprintf(ctx.Stdout, "config:   %s\n", pathStyle.Render(configPath))
	_, _ = fmt.Fprintf(ctx.Stdout, "store:    %s\n", cfg.Store)
	_, _ = fmt.Fprintf(ctx.Stdout, "data:     %s\n", pathStyle.Render(watchPath))
	_, _ = fmt.Fprintf(ctx.Stdout, "currency: %s\n", cfg.Currency)
	return nil
}
