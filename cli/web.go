package cli

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/checkbook-app/checkbook/logging"
	"github.com/checkbook-app/checkbook/web"
)

type WebCmd struct {
	Port int `help:"Port to listen on." default:"8080"`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	st, watchPath, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	logging.Setup()

	version := Version
	if version == "" {
		version = "dev"
	}
	commitSHA := CommitSHA
	if commitSHA == "" {
		commitSHA = "local"
	}

	server := web.New(cmd.Port, st, watchPath, slog.Default())
	server.Version = version
	server.CommitSHA = commitSHA
	server.Currency = cfg.Currency

	printInfof(ctx.Stdout, "Starting server on %s:%d", server.Host, cmd.Port)
	printInfof(ctx.Stdout, "Serving checkbook data from %s", pathStyle.Render(watchPath))

	return server.Start(context.Background())
}
