package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type scrapeCmd struct {
	outputFlags
	parser string
}

func (*scrapeCmd) Name() string     { return "scrape" }
func (*scrapeCmd) Synopsis() string { return "scrapes security pages and prints their records" }
func (*scrapeCmd) Usage() string {
	return `msc scrape [-format json|markdown] [-select <jsonpath>] [-parser <parser>] <url>...

  Downloads each fund, stock or ETF page and prints the extracted record.
  URLs are processed in order, the first failure stops the command.
`
}

func (c *scrapeCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.parser, "parser", "html.parser", "Markup parser used to read the pages")
}

func (c *scrapeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one url is required.")
		return subcommands.ExitUsageError
	}
	if err := c.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fetcher := newFetcher(c.parser)
	for _, url := range f.Args() {
		r, err := fetcher.Scrape(ctx, url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := c.write(os.Stdout, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
