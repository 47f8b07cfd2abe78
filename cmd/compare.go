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

type compareCmd struct {
	api  string
	user string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare API symbols with a user list" }
func (*compareCmd) Usage() string {
	return `compare [-api <source>] -user <source>

  Compares the symbols of -api (the configured api_url when omitted) with the
  -user list and writes ComparisonReport.xlsx to the save path.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.api, "api", "", "API side source")
	f.StringVar(&c.user, "user", "", "user side source (required)")
}

func (c *compareCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" {
		fmt.Fprintln(os.Stderr, "Error: -user is required")
		return subcommands.ExitUsageError
	}

	return withApp(func(a *app.App, logger *zap.Logger) error {
		apiLocation := c.api
		if apiLocation == "" {
			apiLocation = a.DefaultAPIURL()
		}

		api, err := a.Load(ctx, apiLocation)
		if err != nil {
			return err
		}
		user, err := a.Load(ctx, c.user)
		if err != nil {
			return err
		}

		res, err := a.Compare(api, user)
		if err != nil {
			return err
		}

		fmt.Println(ui.ComparisonSummary(res.Diff))
		fmt.Println(ui.Message(fmt.Sprintf("Comparison report saved to %s", res.Path), false))
		return nil
	})
}
