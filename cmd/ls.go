package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rentals"
	"github.com/etnz/rentals/renderer"
	"github.com/google/subcommands"
)

type lsCmd struct {
	query  string
	sort   string
	asc    bool
	asJSON bool
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list properties" }
func (*lsCmd) Usage() string {
	return `rnt ls [-q <text>] [-sort <field>] [-asc] [-json]

  Lists the properties as a table, in collection order unless sorted.

`
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Only properties whose name or UFMG access contains this text")
	f.StringVar(&c.sort, "sort", "", "Sort by this field, descending unless -asc")
	f.BoolVar(&c.asc, "asc", false, "Sort in ascending order")
	f.BoolVar(&c.asJSON, "json", false, "Print JSON instead of a table")
}

func (c *lsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var state rentals.SortState
	if c.sort != "" {
		key, err := rentals.ParseSortKey(c.sort)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		state.Select(key)
		if c.asc {
			state.Select(key)
		}
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	props := state.Apply(rentals.Filter(a.store.All(), c.query))
	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(props); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TableMarkdown(props, a.cfg.Currency))
	return subcommands.ExitSuccess
}
