package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type editCmd struct {
	draftFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a property" }
func (*editCmd) Usage() string {
	return `rnt edit [flags] <id>

  Changes the fields given as flags, everything else is kept. The id can be
  shortened to any unique prefix.

`
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit expects exactly one property id.")
		return subcommands.ExitUsageError
	}
	d, err := c.Draft(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if d.IsEmpty() {
		fmt.Fprintln(os.Stderr, "Error: nothing to change, pass at least one field flag.")
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	base, err := a.store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	p := d.Merge(base)
	_, err = a.store.Upsert(ctx, p)
	if status := saved(err); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Updated %s %s\n", p.ShortID(), p.Name)
	return subcommands.ExitSuccess
}
