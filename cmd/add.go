package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rentals"
	"github.com/google/subcommands"
)

type addCmd struct {
	draftFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a property to the collection" }
func (*addCmd) Usage() string {
	return `rnt add -name <name> [-rent <amount>] [-access <access>] [...]

  Adds a property. Omitted fields get their default value: security 5,
  center access 3, leisure 3, UFMG access Acceptable, ratings 5, amounts 0.

`
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := c.Draft(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	p := d.Merge(rentals.NewProperty())
	_, err = a.store.Upsert(ctx, p)
	if status := saved(err); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added %s %s\n", p.ShortID(), p.Name)
	return subcommands.ExitSuccess
}
