// Command msc scrapes fund, stock and ETF pages of the Morningstar UK site.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/morningscraper/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.Setup()
	os.Exit(int(commander.Execute(context.Background())))
}
