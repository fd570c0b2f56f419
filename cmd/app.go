// Package cmd implements the rnt command line application to compare rental
// properties.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rentals"
	"github.com/etnz/rentals/agent"
	"github.com/etnz/rentals/config"
	"github.com/etnz/rentals/sqlite"
	"github.com/google/subcommands"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "properties")
	c.Register(&editCmd{}, "properties")
	c.Register(&rmCmd{}, "properties")
	c.Register(&lsCmd{}, "properties")
	c.Register(&showCmd{}, "properties")
	c.Register(&queryCmd{}, "properties")

	c.Register(&statsCmd{}, "analysis")
	c.Register(&chartCmd{}, "analysis")

	c.Register(&extractCmd{}, "assistant")
	c.Register(&adviseCmd{}, "assistant")
	c.Register(&assistCmd{}, "assistant")

	c.Register(&serveCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storeFlag    = flag.String("store", "", "Where the collection is stored: a JSON file path, or sqlite:<path> for a SQLite database. Defaults to $RNT_STORE.")
	currencyFlag = flag.String("currency", "", "ISO code of the currency used to display amounts. Defaults to $RNT_CURRENCY.")
	verboseFlag  = flag.Bool("v", false, "Verbose logging.")
)

// app is the environment shared by the subcommands.
type app struct {
	cfg   *config.Config
	log   *slog.Logger
	store *rentals.Store
	close func() error
}

// loadConfig reads the configuration, then applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *storeFlag != "" {
		cfg.Store = *storeFlag
	}
	if *currencyFlag != "" {
		cfg.Currency = strings.ToUpper(*currencyFlag)
	}
	if *verboseFlag {
		cfg.Verbose = true
	}
	return cfg, nil
}

// newLogger writes colored logs to stderr when it is a terminal.
func newLogger(w *os.File, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(w.Fd()),
	}))
}

// openApp loads the configuration and the collection. A persistence warning
// is printed and the command continues with an empty collection.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := newLogger(os.Stderr, cfg.Level())
	slog.SetDefault(log)

	slot, closer, err := openSlot(cfg.Store)
	if err != nil {
		return nil, err
	}
	store, err := rentals.Open(ctx, slot, rentals.WithLogger(log))
	var perr *rentals.PersistenceError
	if errors.As(err, &perr) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err != nil {
		closer()
		return nil, err
	}
	return &app{cfg: cfg, log: log, store: store, close: closer}, nil
}

// openSlot opens the slot described by spec: "sqlite:<path>" or a file path.
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

// saved reports the outcome of a mutation. Persistence warnings are printed
// but do not fail the command.
func saved(err error) subcommands.ExitStatus {
	var perr *rentals.PersistenceError
	var verr *rentals.ValidationError
	switch {
	case err == nil:
		return subcommands.ExitSuccess
	case errors.As(err, &perr):
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return subcommands.ExitSuccess
	case errors.As(err, &verr):
		fmt.Fprintln(os.Stderr, "Error: invalid property:")
		for _, f := range verr.Fields {
			fmt.Fprintf(os.Stderr, "  - %s\n", f.Message)
		}
		return subcommands.ExitFailure
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
}

// models returns the Gemini content generation capability, or nil when no
// API key is configured.
func (a *app) models(ctx context.Context) (agent.Models, error) {
	client, err := agent.Connect(ctx, a.cfg.APIKey())
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

func (a *app) extractor(ctx context.Context) (*agent.Extractor, error) {
	m, err := a.models(ctx)
	if err != nil {
		return nil, err
	}
	return &agent.Extractor{Models: m, Model: a.cfg.Model, Timeout: a.cfg.Timeout, Logger: a.log}, nil
}

func (a *app) advisor(ctx context.Context) (*agent.Advisor, error) {
	m, err := a.models(ctx)
	if err != nil {
		return nil, err
	}
	return &agent.Advisor{Models: m, Model: a.cfg.Model, Timeout: a.cfg.Timeout, Currency: a.cfg.Currency, Logger: a.log}, nil
}

// printMarkdown renders md for the terminal, or prints it as is when stdout
// is not a terminal.
func printMarkdown(md string) {
	fprintMarkdown(os.Stdout, md)
}

func fprintMarkdown(w io.Writer, md string) {
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
