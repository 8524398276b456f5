package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ishares/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	format string
	requestFlags
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "fetch the holdings of a fund as of a date" }
func (*holdingsCmd) Usage() string {
	return `blkh [holdings] [-format json|md] [-browser] [-H "Key: Value"]... [-headers-file <file>] <productPath> <endpointSuffix> <asOfDate>

  Fetches the historical holdings of a fund and prints them.

  productPath is the fund page path below /us/, for instance
  products/239454/ishares-20-year-treasury-bond-etf, endpointSuffix the
  holdings endpoint (1467271812596.ajax) and asOfDate is YYYYMMDD.

  The arguments are echoed one per line before the holdings. A failed fetch
  is logged and prints no holdings.

  A productPath equal to a command name (help, summary, lookup...) needs the
  explicit form: blkh holdings <productPath> <endpointSuffix> <asOfDate>.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Output format: json or md")
	c.requestFlags.setFlags(f)
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(stderr, "Expected at least one argument!")
		return subcommands.ExitFailure
	}
	if f.NArg() != 3 {
		fmt.Fprintf(stderr, "Error: expected <productPath> <endpointSuffix> <asOfDate>, got %d arguments\n", f.NArg())
		return subcommands.ExitUsageError
	}
	if c.format != "json" && c.format != "md" {
		fmt.Fprintf(stderr, "Error: unknown format %q, want json or md\n", c.format)
		return subcommands.ExitUsageError
	}
	productPath, endpoint, asOfDate := f.Arg(0), f.Arg(1), f.Arg(2)

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

	for _, arg := range f.Args() {
		fmt.Fprintln(stdout, arg)
	}

	holdings := client.Holdings(ctx, productPath, endpoint, asOfDate, header)

	switch c.format {
	case "md":
		err = renderer.Print(stdout, renderer.HoldingsMarkdown(holdings))
	default:
		err = renderer.HoldingsJSON(stdout, holdings)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error printing holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
