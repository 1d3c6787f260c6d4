// Command fin prints market data, historical volatility and option valuations.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finance/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// Handles shell completion requests, and exits, when COMP_LINE is set.
	cmd.Completion().Complete("fin")

	// A missing .env is fine, keys can come from the environment or flags.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()
	os.Exit(int(commander.Execute(context.Background())))
}
