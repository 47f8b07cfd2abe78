package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/symbex/internal/app"
	"github.com/vadiminshakov/symbex/internal/ui"
	"go.uber.org/zap"
)

type currenciesCmd struct{}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "view and edit the currency vocabulary" }
func (*currenciesCmd) Usage() string {
	return `currencies list
currencies add <code> [...]
currencies remove <code> [...]
currencies history

  Manages the known quote currency codes used to split symbols.
`
}

func (*currenciesCmd) SetFlags(*flag.FlagSet) {}

func (*currenciesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	action := strings.ToLower(f.Arg(0))
	codes := f.Args()
	if len(codes) > 0 {
		codes = codes[1:]
	}

	switch action {
	case "", "list", "history":
	case "add", "remove":
		if len(codes) == 0 {
			fmt.Fprintf(os.Stderr, "Error: %s needs at least one code\n", action)
			return subcommands.ExitUsageError
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown action %q\n", action)
		return subcommands.ExitUsageError
	}

	return withApp(func(a *app.App, logger *zap.Logger) error {
		switch action {
		case "add":
			for _, code := range codes {
				added, err := a.AddCurrency(code)
				if err != nil {
					return err
				}
				report(code, added, "was successfully added.", "could not be added (it might already exist).")
			}
		case "remove":
			for _, code := range codes {
				removed, err := a.RemoveCurrency(code)
				if err != nil {
					return err
				}
				report(code, removed, "was successfully removed.", "was not found.")
			}
		case "history":
			entries, err := a.History()
			if err != nil {
				return errors.Wrap(err, "history unavailable")
			}
			fmt.Println(ui.History(entries))
		default:
			fmt.Println(ui.Currencies(a.Currencies()))
		}
		return nil
	})
}

func report(code string, ok bool, success, failure string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if ok {
		fmt.Println(ui.Message(fmt.Sprintf("'%s' %s", code, success), false))
		return
	}
	fmt.Println(ui.Message(fmt.Sprintf("'%s' %s", code, failure), true))
}
