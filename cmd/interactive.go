package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/vadiminshakov/symbex/internal/app"
	"github.com/vadiminshakov/symbex/internal/ui"
	"go.uber.org/zap"
)

type interactiveCmd struct{}

func (*interactiveCmd) Name() string     { return "interactive" }
func (*interactiveCmd) Synopsis() string { return "run the interactive menu (default)" }
func (*interactiveCmd) Usage() string {
	return `interactive

  Runs the menu driven mode. This is the default when no command is given.
`
}

func (*interactiveCmd) SetFlags(*flag.FlagSet) {}

func (*interactiveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(func(a *app.App, logger *zap.Logger) error {
		logger.Debug("interactive session started")
		return ui.NewSession(a, ui.HuhPrompter{}, os.Stdout).Run(ctx)
	})
}
