package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// command is one node of the travelctl command tree.
type command struct {
	name        string
	usage       string
	summary     string
	flags       func(fs *pflag.FlagSet)
	subcommands []*command
	run         func(ctx context.Context, e *env, fs *pflag.FlagSet, args []string) error
}

var errUsage = errors.New("usage")

func rootCommand() *command {
	return &command{
		name:    "travelctl",
		usage:   "travelctl <command> [flags]",
		summary: "Search flights and manage the flight catalog of the travel booking API",
		subcommands: []*command{
			searchCommand(),
			resultsCommand(),
			clearCommand(),
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			locationsCommand(),
			adminCommand(),
		},
	}
}

func (c *command) execute(ctx context.Context, args []string, e *env) error {
	if len(c.subcommands) > 0 {
		if len(args) == 0 || isHelp(args[0]) {
			c.printHelp(e.stderr)
			if len(args) == 0 {
				return fmt.Errorf("%s: subcommand required", c.name)
			}
			return nil
		}
		for _, sub := range c.subcommands {
			if sub.name == args[0] {
				return sub.execute(ctx, args[1:], e)
			}
		}
		return fmt.Errorf("unknown command %q; run '%s --help'", args[0], c.name)
	}

	fs := pflag.NewFlagSet(c.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if c.flags != nil {
		c.flags(fs)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			c.printHelp(e.stderr)
			return nil
		}
		return fmt.Errorf("%s: %w", c.name, err)
	}

	err := c.run(ctx, e, fs, fs.Args())
	if errors.Is(err, errUsage) {
		c.printHelp(e.stderr)
		return fmt.Errorf("%s: invalid arguments", c.name)
	}
	return err
}

func (c *command) printHelp(w io.Writer) {
	if c.usage != "" {
		fmt.Fprintf(w, "Usage: %s\n", c.usage)
	}
	if c.summary != "" {
		fmt.Fprintf(w, "\n%s\n", c.summary)
	}

	if len(c.subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, sub := range c.subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.name, sub.summary)
		}
		tw.Flush()
		return
	}

	if c.flags != nil {
		fs := pflag.NewFlagSet(c.name, pflag.ContinueOnError)
		c.flags(fs)
		fmt.Fprintf(w, "\nFlags:\n%s", fs.FlagUsages())
	}
}

func isHelp(arg string) bool {
	switch strings.TrimSpace(arg) {
	case "-h", "--help", "help":
		return true
	}
	return false
}

// withApp opens the app for the duration of fn.
func withApp(ctx context.Context, e *env, fn func(a *app) error) error {
	a, err := e.open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
