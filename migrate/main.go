// Command migrate converts rental collections written by older versions of
// rnt to the current format.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/rentals"
	"github.com/etnz/rentals/sqlite"
	"github.com/google/subcommands"
)

func main() {
	// The migrate tool needs its own set of flags, independent of the main rnt tool.
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	commander := subcommands.NewCommander(flag.CommandLine, "migrate")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(&v1Cmd{}, "")
	commander.Register(&checkCmd{}, "")
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// --- v1Cmd ---

type v1Cmd struct {
	in  string
	out string
}

func (*v1Cmd) Name() string { return "v1" }
func (*v1Cmd) Synopsis() string {
	return "converts a collection written as a bare array to the current format"
}
func (*v1Cmd) Usage() string {
	return `migrate v1 -in <properties.json> -out <destination>

Reads a collection in any supported format and writes it in the current one.
Portuguese UFMG access values are translated, ratings are rounded and clamped
and missing ids are assigned. The destination is a JSON file path, or
sqlite:<path> for a SQLite database. It must not be the source file.
`
}
func (c *v1Cmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The path to the collection to convert.")
	f.StringVar(&c.out, "out", "", "Where the converted collection is written.")
}

func (c *v1Cmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" || c.out == "" {
		fmt.Fprintln(os.Stderr, "Error: -in and -out flags are required.")
		return subcommands.ExitUsageError
	}
	if filepath.Clean(c.in) == filepath.Clean(c.out) {
		fmt.Fprintln(os.Stderr, "Error: -in and -out must be different files.")
		return subcommands.ExitUsageError
	}

	n, err := convert(ctx, c.in, c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Converted %d properties to %s\n", n, c.out)
	return subcommands.ExitSuccess
}

// convert decodes the collection at in and writes it in the current version
// to out. It returns the number of properties written.
func convert(ctx context.Context, in, out string) (int, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return 0, err
	}
	props, err := rentals.DecodeCollection(data)
	if err != nil {
		return 0, fmt.Errorf("decoding %s: %w", in, err)
	}
	for _, p := range props {
		if err := p.Validate(); err != nil {
			return 0, fmt.Errorf("property %s %q: %w", p.ShortID(), p.Name, err)
		}
	}
	encoded, err := rentals.EncodeCollection(props)
	if err != nil {
		return 0, err
	}

	slot, closer, err := openSlot(out)
	if err != nil {
		return 0, err
	}
	defer closer()
	if err := slot.Write(ctx, encoded); err != nil {
		return 0, err
	}
	return len(props), nil
}

func openSlot(spec string) (rentals.Slot, func() error, error) {
	if path, ok := strings.CutPrefix(spec, "sqlite:"); ok {
		slot, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return slot, slot.Close, nil
	}
	return rentals.NewFileSlot(spec), func() error { return nil }, nil
}

// --- checkCmd ---

type checkCmd struct {
	in string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verifies a collection can be read by rnt" }
func (*checkCmd) Usage() string {
	return `migrate check -in <collection>

Decodes the collection, in any supported format, and validates every property.
The source is a JSON file path, or sqlite:<path> for a SQLite database.
`
}
func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The collection to check.")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in flag is required.")
		return subcommands.ExitUsageError
	}
	version, props, err := check(ctx, c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: version %d, %d properties, all valid\n", c.in, version, len(props))
	return subcommands.ExitSuccess
}

// check reads and validates the collection at spec. It returns the format
// version found: 1 for a bare array.
func check(ctx context.Context, spec string) (int, []rentals.Property, error) {
	slot, closer, err := openSlot(spec)
	if err != nil {
		return 0, nil, err
	}
	defer closer()
	data, err := slot.Read(ctx)
	if err != nil {
		return 0, nil, err
	}
	props, err := rentals.DecodeCollection(data)
	if err != nil {
		return 0, nil, err
	}
	version := rentals.CollectionVersion
	if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "[") {
		version = 1
	}
	var errs []error
	for _, p := range props {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("property %s %q: %w", p.ShortID(), p.Name, err))
		}
	}
	return version, props, errors.Join(errs...)
}
