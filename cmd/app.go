// Package cmd implements the blkh command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"

	"github.com/etnz/ishares/blackrock"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to an optional TOML configuration file")
var baseURL = flag.String("base-url", "", "Scheme and host of the iShares web site, overrides the configuration file")
var verbose = flag.Bool("v", false, "Log the source file and line of every message")

// stdout and stderr are where commands print results and errors.
var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&holdingsCmd{}, "holdings")
	c.Register(&summaryCmd{}, "holdings")
	c.Register(&lookupCmd{}, "funds")
}

// Execute runs the command named by the first argument of top.
//
// When the first argument is not a command name the arguments are those of
// the holdings command: blkh <productPath> <endpointSuffix> <asOfDate>.
func Execute(ctx context.Context, top *flag.FlagSet) subcommands.ExitStatus {
	if top.NArg() == 0 {
		fmt.Fprintln(stderr, "Expected at least one argument!")
		return subcommands.ExitFailure
	}
	setupLog()

	commander := subcommands.NewCommander(top, path.Base(top.Name()))
	commander.Output = stdout
	commander.Error = stderr
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	Register(commander)

	if !isCommand(commander, top.Arg(0)) {
		if err := top.Parse(append([]string{"holdings"}, top.Args()...)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	return commander.Execute(ctx)
}

func isCommand(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

func setupLog() {
	if *verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		return
	}
	log.SetFlags(log.LstdFlags)
}

// newClient returns the client configured by cfg and the -base-url flag.
func newClient(cfg Config) *blackrock.Client {
	c := &blackrock.Client{BaseURL: cfg.BaseURL}
	if *baseURL != "" {
		c.BaseURL = *baseURL
	}
	return c
}
