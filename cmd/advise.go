package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rentals/renderer"
	"github.com/google/subcommands"
)

type adviseCmd struct {
	raw bool
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the language model for a recommendation" }
func (*adviseCmd) Usage() string {
	return `rnt advise [-raw]

  Sends a summary of every property to the language model and prints its
  advice: a top 3, the best value for money, suspicious properties and a
  final verdict.

  Requires GEMINI_API_KEY.

`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print the narrative exactly as returned")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	advisor, err := a.advisor(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	narrative, err := advisor.Advise(ctx, a.store.All())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.raw {
		fmt.Println(narrative)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.AdvisoryMarkdown(narrative))
	return subcommands.ExitSuccess
}
