package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/morningscraper"
	"github.com/google/subcommands"
)

type classifyCmd struct{}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "prints the page type of urls" }
func (*classifyCmd) Usage() string {
	return `msc classify <url>...

  Prints the page type (Funds, Stock or ETF) of each url, without fetching it.
  Exits with a failure if any url is not a supported page.
`
}

func (*classifyCmd) SetFlags(*flag.FlagSet) {}

func (c *classifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one url is required.")
		return subcommands.ExitUsageError
	}
	return classify(os.Stdout, f.Args())
}

// classify prints the page of each url to w.
func classify(w io.Writer, urls []string) subcommands.ExitStatus {
	status := subcommands.ExitSuccess
	for _, url := range urls {
		page := morningscraper.Classify(url)
		fmt.Fprintf(w, "%v\t%s\n", page, url)
		if page == morningscraper.Unknown {
			status = subcommands.ExitFailure
		}
	}
	return status
}
