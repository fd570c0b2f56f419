package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rentals"
	"github.com/etnz/rentals/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the collection statistics" }
func (*statsCmd) Usage() string {
	return `rnt stats

  Displays the number of properties, the average rent and the top pick, the
  property with the best ideal rating.

`
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	printMarkdown(renderer.StatsMarkdown(rentals.NewStats(a.store.All()), a.cfg.Currency))
	return subcommands.ExitSuccess
}
