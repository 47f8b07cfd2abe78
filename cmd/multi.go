package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vadiminshakov/symbex/internal/app"
	"github.com/vadiminshakov/symbex/internal/reconcile"
	"github.com/vadiminshakov/symbex/internal/ui"
	"go.uber.org/zap"
)

type multiCmd struct{}

func (*multiCmd) Name() string     { return "multi" }
func (*multiCmd) Synopsis() string { return "compare several symbol lists" }
func (*multiCmd) Usage() string {
	return `multi [name=]<source> [name=]<source> [...]

  Finds symbols common to all lists and symbols unique to each list and
  writes MultiListReport.xlsx to the save path.
`
}

func (*multiCmd) SetFlags(*flag.FlagSet) {}

func (*multiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < reconcile.MinLists {
		fmt.Fprintf(os.Stderr, "Error: at least %d sources are required\n", reconcile.MinLists)
		return subcommands.ExitUsageError
	}

	return withApp(func(a *app.App, logger *zap.Logger) error {
		lists, err := loadLists(ctx, a, f.Args())
		if err != nil {
			return err
		}

		res, err := a.MultiCompare(lists)
		if err != nil {
			return err
		}

		fmt.Println(ui.MultiListSummary(res.Lists, res.Common))
		fmt.Println(ui.Message(fmt.Sprintf("Multi-list report saved to %s", res.Path), false))
		return nil
	})
}
