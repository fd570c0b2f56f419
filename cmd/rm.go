package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a property" }
func (*rmCmd) Usage() string {
	return `rnt rm [-y] <id>

  Removes a property after confirmation.

`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: rm expects exactly one property id.")
		return subcommands.ExitUsageError
	}
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	p, err := a.store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.yes && !confirm(os.Stdin, os.Stdout, fmt.Sprintf("Remove %q?", p.Name)) {
		fmt.Println("Cancelled.")
		return subcommands.ExitSuccess
	}
	_, err = a.store.Remove(ctx, p.ID)
	if status := saved(err); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Removed %s %s\n", p.ShortID(), p.Name)
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question, no being the default.
func confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N] ", question)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
