// Command symbex extracts, compares and validates trading-pair symbol lists.
//
// Usage:
//
//	symbex                       interactive menu
//	symbex extract <source>      extract symbols and save them
//	symbex compare -api <source> -user <source>
//	symbex multi <source> <source> [...]
//	symbex match <file> <file>
//	symbex validate <source> [...]
//	symbex currencies list|add|remove|history
//
// Sources are http(s) URLs, "binance", "bybit", "ktr", *.json, *.xlsx or text files.
// Global flags: -config symbex.yaml, -debug, -save-path <dir>.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/symbex/config"
	"github.com/vadiminshakov/symbex/internal/app"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "unexpected error: %v\n", r)
			code = int(subcommands.ExitFailure)
		}
	}()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	register(commander)

	flag.Parse()
	ctx := context.Background()

	if flag.NArg() == 0 {
		return int((&interactiveCmd{}).Execute(ctx, flag.CommandLine))
	}
	return int(commander.Execute(ctx))
}

func register(c *subcommands.Commander) {
	c.Register(&extractCmd{}, "symbols")
	c.Register(&compareCmd{}, "symbols")
	c.Register(&multiCmd{}, "symbols")
	c.Register(&matchCmd{}, "symbols")
	c.Register(&validateCmd{}, "symbols")
	c.Register(&currenciesCmd{}, "vocabulary")
	c.Register(&interactiveCmd{}, "")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// openApp loads the configuration and builds the application.
func openApp() (*app.App, *zap.Logger, error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create logger")
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}

	return a, logger, nil
}

// withApp runs fn with an opened application and maps errors to exit codes.
func withApp(fn func(a *app.App, logger *zap.Logger) error) subcommands.ExitStatus {
	a, logger, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := fn(a, logger); err != nil {
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
