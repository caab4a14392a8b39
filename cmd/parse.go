package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/morningscraper"
	"github.com/google/subcommands"
)

type parseCmd struct {
	outputFlags
	page   string
	url    string
	parser string
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "extracts the record of a saved page" }
func (*parseCmd) Usage() string {
	return `msc parse [-type Funds|Stock|ETF] [-url <url>] [-format json|markdown] <file>

  Extracts the record of a page saved to disk, without any network access.
  The page type is taken from -type, or classified from -url.
`
}

func (c *parseCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.page, "type", "", "Page type: Funds, Stock or ETF. Defaults to the type of -url")
	f.StringVar(&c.url, "url", "", "Original url of the page, recorded in the output")
	f.StringVar(&c.parser, "parser", "html.parser", "Markup parser used to read the page")
}

func (c *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one file is required.")
		return subcommands.ExitUsageError
	}
	if err := c.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	page := morningscraper.Classify(c.url)
	if c.page != "" {
		var err error
		if page, err = morningscraper.ParsePage(c.page); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if page == morningscraper.Unknown {
		fmt.Fprintln(os.Stderr, "Error: cannot tell the page type, use -type or a supported -url.")
		return subcommands.ExitUsageError
	}

	r, err := c.extract(page, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.write(os.Stdout, r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// extract reads the record from the file name.
func (c *parseCmd) extract(page morningscraper.Page, name string) (morningscraper.Record, error) {
	file, err := os.Open(name)
	if err != nil {
		return morningscraper.Record{}, err
	}
	defer file.Close()

	doc, err := morningscraper.ParseDocument(file, "", morningscraper.Parser(c.parser))
	if err != nil {
		return morningscraper.Record{}, fmt.Errorf("cannot parse %q: %w", name, err)
	}
	url := c.url
	if url == "" {
		url = name
	}
	return morningscraper.Extract(page, url, doc)
}
