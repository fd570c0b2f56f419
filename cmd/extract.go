package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/rentals"
	"github.com/etnz/rentals/renderer"
	"github.com/google/subcommands"
)

type extractCmd struct {
	save bool
	into string
}

func (*extractCmd) Name() string     { return "extract" }
func (*extractCmd) Synopsis() string { return "fill a property from a free text description" }
func (*extractCmd) Usage() string {
	return `rnt extract [-save | -into <id>] <text...>

  Asks the language model to read a description (from the arguments, or
  stdin when there are none) and shows the resulting property. Nothing is
  stored unless -save adds it, or -into merges it over an existing property.

  Requires GEMINI_API_KEY.

`
}

func (c *extractCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.save, "save", false, "Add the extracted property to the collection")
	f.StringVar(&c.into, "into", "", "Merge the extracted fields over this property and save it")
}

func (c *extractCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.save && c.into != "" {
		fmt.Fprintln(os.Stderr, "Error: -save and -into are exclusive.")
		return subcommands.ExitUsageError
	}
	text := strings.Join(f.Args(), " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return subcommands.ExitFailure
		}
		text = string(data)
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	base := rentals.NewProperty()
	if c.into != "" {
		if base, err = a.store.Find(c.into); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	ex, err := a.extractor(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err := ex.Extract(ctx, text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	p := d.Merge(base)
	printMarkdown(renderer.PropertyMarkdown(p, a.cfg.Currency))

	if !c.save && c.into == "" {
		return subcommands.ExitSuccess
	}
	_, err = a.store.Upsert(ctx, p)
	if status := saved(err); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Saved %s %s\n", p.ShortID(), p.Name)
	return subcommands.ExitSuccess
}
