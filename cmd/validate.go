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

type validateCmd struct{}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "find parse errors, duplicates and inconsistent parses" }
func (*validateCmd) Usage() string {
	return `validate [name=]<source> [...]

  Re-parses every stored symbol of the given lists and reports parse errors,
  duplicate symbols and inconsistent parses. Writes ValidationReport.xlsx to
  the save path.
`
}

func (*validateCmd) SetFlags(*flag.FlagSet) {}

func (*validateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one source is required")
		return subcommands.ExitUsageError
	}

	return withApp(func(a *app.App, logger *zap.Logger) error {
		lists, err := loadLists(ctx, a, f.Args())
		if err != nil {
			return err
		}

		res, err := a.Validate(lists)
		if err != nil {
			return err
		}

		fmt.Println(ui.ValidationSummary(res.Report))
		fmt.Print(ui.ValidationDetails(res.Report))
		fmt.Println(ui.Message(fmt.Sprintf("Validation report saved to %s", res.Path), false))
		return nil
	})
}
