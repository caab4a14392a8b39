// Package cmd implements the msc command line application to scrape security pages.
package cmd

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/etnz/morningscraper"
	"github.com/google/subcommands"
)

const (
	EnvUserAgent = "MORNINGSCRAPER_USER_AGENT"
	EnvVerbose   = "MORNINGSCRAPER_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	UserAgent = flag.String("user-agent", "", "User-Agent header sent with each request. This flag takes precedence over the "+EnvUserAgent+" environment variable.")
	Verbose   = flag.Bool("v", false, "Log each http request. Also enabled by setting "+EnvVerbose+" to true.")
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&scrapeCmd{}, "")
	c.Register(&classifyCmd{}, "")
	c.Register(&parseCmd{}, "")
}

// Setup applies the global flags, it must be called after the flags are parsed.
func Setup() {
	if !verbose() {
		log.SetOutput(io.Discard)
	}
}

// verbose reports whether logs are enabled, by flag or by environment.
func verbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// userAgent retrieves the user agent from the command-line flag or the environment variable.
// It prioritizes the flag over the environment variable.
func userAgent() string {
	if *UserAgent == "" {
		return os.Getenv(EnvUserAgent)
	}
	return *UserAgent
}

// newFetcher returns a fetcher configured by the global flags.
func newFetcher(parser string) *morningscraper.Fetcher {
	return &morningscraper.Fetcher{
		Parser:    morningscraper.Parser(parser),
		UserAgent: userAgent(),
	}
}
