package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/vadiminshakov/symbex/internal/app"
	"github.com/vadiminshakov/symbex/internal/sources"
	"github.com/vadiminshakov/symbex/internal/ui"
	"go.uber.org/zap"
)

type matchCmd struct {
	stdin bool
}

func (*matchCmd) Name() string     { return "match" }
func (*matchCmd) Synopsis() string { return "show symbols missing from either of two lists" }
func (*matchCmd) Usage() string {
	return `match <file> <file>
match -stdin

  Compares two raw symbol lists by normalized symbol and writes
  MissingInList1.txt and MissingInList2.txt to the save path. With -stdin both
  lists are read from standard input, each ended by an empty line.
`
}

func (c *matchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.stdin, "stdin", false, "read both lists from standard input")
}

func (c *matchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.stdin && f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: two files or -stdin are required")
		return subcommands.ExitUsageError
	}

	return withApp(func(a *app.App, logger *zap.Logger) error {
		first, second, err := c.lists(f)
		if err != nil {
			return err
		}

		res, err := a.Match(first, second)
		if err != nil {
			return err
		}

		fmt.Println(ui.Results("Symbols in List 1 but not in List 2", res.MissingInSecond))
		fmt.Println(ui.Results("Symbols in List 2 but not in List 1", res.MissingInFirst))
		fmt.Println(ui.Message(fmt.Sprintf("Difference reports saved to %s", a.SavePath()), false))
		return nil
	})
}

func (c *matchCmd) lists(f *flag.FlagSet) (first, second []string, err error) {
	if c.stdin {
		return readBlocks(os.Stdin)
	}

	if first, err = readRaw(f.Arg(0)); err != nil {
		return nil, nil, err
	}
	second, err = readRaw(f.Arg(1))
	return first, second, err
}

// readBlocks reads two lists separated by an empty line.
func readBlocks(r io.Reader) (first, second []string, err error) {
	blocks := [2][]string{}
	current := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() && current < len(blocks) {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			current++
			continue
		}
		blocks[current] = append(blocks[current], line)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return sources.SplitEntries(blocks[0]), sources.SplitEntries(blocks[1]), nil
}
