package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/rentals/agent"
	"github.com/etnz/rentals/server"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the collection as a local JSON API" }
func (*serveCmd) Usage() string {
	return `rnt serve [-addr <host:port>]

  Serves the HTTP API until interrupted. See 'rnt topic api'.

`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address. Defaults to $RNT_ADDR.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	addr := a.cfg.Addr
	if c.addr != "" {
		addr = c.addr
	}

	var h *server.Handler
	ex, err := a.extractor(ctx)
	switch {
	case errors.Is(err, agent.ErrNotConfigured):
		a.log.Warn("no Gemini API key, extraction and advisory are disabled")
		h = server.NewHandler(a.store, nil, nil, a.log)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	default:
		h = server.NewHandler(a.store, ex, &agent.Advisor{
			Models:   ex.Models,
			Model:    a.cfg.Model,
			Timeout:  a.cfg.Timeout,
			Currency: a.cfg.Currency,
			Logger:   a.log,
		}, a.log)
	}

	srv := server.New(addr, h, a.log)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Stop(shutdown); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
