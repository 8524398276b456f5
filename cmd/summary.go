package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ishares"
	"github.com/etnz/ishares/date"
	"github.com/etnz/ishares/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	requestFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the totals of a fund holdings" }
func (*summaryCmd) Usage() string {
	return `blkh summary [-browser] [-H "Key: Value"]... [-headers-file <file>] <productPath> <endpointSuffix> <asOfDate>

  Fetches the historical holdings of a fund and displays their count, total
  market value per currency, and market value weighted duration, yield and
  coupon.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.requestFlags.setFlags(f)
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintf(stderr, "Error: expected <productPath> <endpointSuffix> <asOfDate>, got %d arguments\n", f.NArg())
		return subcommands.ExitUsageError
	}
	productPath, endpoint, asOfDate := f.Arg(0), f.Arg(1), f.Arg(2)

	on, err := date.ParseAny(asOfDate)
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
	header, err := c.header(cfg, client.HoldingsURL(productPath, endpoint, asOfDate))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	holdings := client.Holdings(ctx, productPath, endpoint, asOfDate, header)

	if err := renderer.Print(stdout, renderer.SummaryMarkdown(ishares.Summarize(on, holdings))); err != nil {
		fmt.Fprintf(stderr, "Error printing summary: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
