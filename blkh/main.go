// Command blkh fetches the historical holdings of iShares funds.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/ishares/cmd"
	"github.com/shopspring/decimal"
)

func main() {
	decimal.MarshalJSONWithoutQuotes = true
	cmd.Completion().Complete(path.Base(os.Args[0]))

	flag.Parse()
	os.Exit(int(cmd.Execute(context.Background(), flag.CommandLine)))
}
