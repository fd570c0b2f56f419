// Command rnt compares rental properties near UFMG.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/rentals/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "rnt")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when invoked by the shell for completion.
	completion(commander).Complete("rnt")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
