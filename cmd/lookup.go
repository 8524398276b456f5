package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/ishares/blackrock"
	"github.com/etnz/ishares/date"
	"github.com/google/subcommands"
)

// lookupCmd implements the "lookup" command.
type lookupCmd struct {
	date string
	requestFlags
}

func (*lookupCmd) Name() string     { return "lookup" }
func (*lookupCmd) Synopsis() string { return "find the product path of funds by ticker" }
func (*lookupCmd) Usage() string {
	return `blkh lookup [-d <date>] [-browser] [-H "Key: Value"]... <ticker>...

  Searches the iShares product screener for the given tickers and prints
  ready-to-use 'blkh' commands for the funds found.
`
}

func (c *lookupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().Compact(), "As of date used in the printed commands")
	c.requestFlags.setFlags(f)
}

func (c *lookupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: at least one ticker is required.")
		return subcommands.ExitUsageError
	}
	on, err := date.ParseAny(c.date)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	client := newClient(cfg)
	header, err := c.header(cfg, client.ScreenerURL())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	funds, err := client.Lookup(ctx, header, f.Args()...)
	var notFound *blackrock.NotFoundError
	if err != nil && !errors.As(err, &notFound) {
		fmt.Fprintf(stderr, "Error searching funds: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, ticker := range f.Args() {
		fund, ok := funds[strings.ToUpper(ticker)]
		if !ok {
			continue
		}
		fmt.Fprintf(stdout, "➡️   %s: %s (%s)\n", fund.Ticker, fund.Name, fund.ID)
		if fund.ProductURL == "" {
			fmt.Fprintln(stdout, "    no product page")
			continue
		}
		fmt.Fprintf(stdout, "    blkh %s %s %s\n", fund.ProductPath(), blackrock.DefaultEndpoint, on.Compact())
	}

	if notFound != nil {
		fmt.Fprintf(stderr, "Error: %v\n", notFound)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
