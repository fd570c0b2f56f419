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

type chartCmd struct {
	width, height int
	query         string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "plot rent against the combined score" }
func (*chartCmd) Usage() string {
	return `rnt chart [-w <width>] [-h <height>] [-q <text>]

  Plots every property by rent (horizontal) and combined score (vertical), the
  mean of the ideal rating, the current moment rating and the security. The
  best deals are top left. At least two properties are needed.

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "w", 60, "Width of the plot in characters")
	f.IntVar(&c.height, "h", 15, "Height of the plot in lines")
	f.StringVar(&c.query, "q", "", "Only properties whose name or UFMG access contains this text")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	chart, ok := rentals.NewChart(rentals.Filter(a.store.All(), c.query))
	if !ok {
		fmt.Println("Not enough properties to draw a chart, add at least two.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ChartText(chart, c.width, c.height, a.cfg.Currency))
	return subcommands.ExitSuccess
}
