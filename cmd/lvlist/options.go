package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	exitFailure     = 1
	exitExpectation = 2
	exitBadScript   = 3
)

var runFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "script",
		Aliases:  []string{"s"},
		Usage:    "path to a YAML scenario script",
		Required: true,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "log every step before it runs",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "connector",
		Value:    "",
		Usage:    "override the script's connector token",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "sentinel",
		Value:    "",
		Usage:    "override the script's end-of-chain marker",
		Required: false,
	},
}

// runOptions are the parsed flags of the run command.
type runOptions struct {
	ScriptPath string
	Verbose    bool
	Connector  string
	Sentinel   string
}

func parseRunOptions(c *cli.Context) (*runOptions, error) {
	opts := &runOptions{
		ScriptPath: c.String("script"),
		Verbose:    c.Bool("verbose"),
		Connector:  c.String("connector"),
		Sentinel:   c.String("sentinel"),
	}

	info, err := os.Stat(opts.ScriptPath)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("script at '%v' is missing or invalid: %v", opts.ScriptPath, err), exitBadScript)
	}
	if info.IsDir() {
		return nil, cli.Exit(fmt.Sprintf("script at '%v' is a directory", opts.ScriptPath), exitBadScript)
	}

	return opts, nil
}
