package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vadiminshakov/symbex/internal/app"
	"github.com/vadiminshakov/symbex/internal/ui"
	"go.uber.org/zap"
)

type extractCmd struct {
	format string
	out    string
}

func (*extractCmd) Name() string     { return "extract" }
func (*extractCmd) Synopsis() string { return "extract symbols from a source and save them" }
func (*extractCmd) Usage() string {
	return `extract [-format xlsx|txt] [-out name] [<source>]

  Loads symbols from <source> (the configured api_url when omitted), prints
  quote currency statistics and saves the symbols to <save-path>/<name>.<format>.
`
}

func (c *extractCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", string(app.FormatXLSX), "output format: xlsx or txt")
	f.StringVar(&c.out, "out", "APISymbols", "output file name without extension")
}

func (c *extractCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one source is accepted")
		return subcommands.ExitUsageError
	}

	format, err := app.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withApp(func(a *app.App, logger *zap.Logger) error {
		res, err := a.Extract(ctx, f.Arg(0))
		if err != nil {
			return err
		}

		fmt.Println(ui.Message(fmt.Sprintf("Total symbols found: %d", len(res.Records)), false))
		fmt.Println(ui.QuoteStats(res.Quotes))

		path, err := a.SaveSymbols(res.Records, c.out, format)
		if err != nil {
			return err
		}

		fmt.Println(ui.Message(fmt.Sprintf("Successfully saved to %s", path), false))
		return nil
	})
}
