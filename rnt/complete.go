package main

import (
	"flag"
	"io"

	"github.com/etnz/rentals"
	"github.com/etnz/rentals/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the commander to the shell completion. Flags are
// discovered from each subcommand's flag set.
func completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		f := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		f.SetOutput(io.Discard)
		sc.SetFlags(f)
		sub := &complete.Command{Flags: predictors(f)}
		switch sc.Name() {
		case "topic":
			sub.Args = complete.PredictFunc(topics)
		case "help":
			sub.Args = commands(c)
		}
		root.Sub[sc.Name()] = sub
	})
	return root
}

func predictors(f *flag.FlagSet) map[string]complete.Predictor {
	out := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		out[fl.Name] = predictor(fl)
	})
	return out
}

type boolFlag interface{ IsBoolFlag() bool }

func predictor(fl *flag.Flag) complete.Predictor {
	if b, ok := fl.Value.(boolFlag); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch fl.Name {
	case "sort":
		return predict.Set(rentals.SortKeyNames())
	case "access":
		return predict.Set(rentals.AccessNames())
	case "store", "in", "out", "env":
		return predict.Files("*")
	default:
		return predict.Something
	}
}

// topics predicts documentation topics.
func topics(string) []string {
	names, _ := docs.GetAllTopics()
	return names
}

// commands predicts command names.
func commands(c *subcommands.Commander) complete.Predictor {
	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		names = append(names, sc.Name())
	})
	return predict.Set(names)
}
