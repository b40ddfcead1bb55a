// Command lvlist runs the list demo or replays YAML scenario scripts.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvlist/demo"
	"github.com/katalvlaran/lvlist/linkedlist"
	"github.com/katalvlaran/lvlist/scenario"
)

const VERSION = "0.1.0"

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)

	if err := newApp().Run(os.Args); err != nil {
		log.Printf("failed: %v", err)
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(exitFailure)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "lvlist",
		Usage:   "Singly-linked list playground: run the demo or replay scenario scripts.",
		Version: VERSION,
		// main decides the exit code
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "print the dynamic array, stack and linked list walkthrough",
				Action: func(c *cli.Context) error {
					return demo.Run(c.App.Writer)
				},
			},
			{
				Name:   "run",
				Usage:  "replay a YAML scenario script against a fresh list",
				Flags:  runFlags,
				Action: runScript,
			},
		},
	}
}

func runScript(c *cli.Context) error {
	opts, err := parseRunOptions(c)
	if err != nil {
		return err
	}

	script, err := scenario.Load(opts.ScriptPath)
	if err != nil {
		return cli.Exit(err.Error(), exitBadScript)
	}
	if opts.Connector != "" {
		script.Connector = opts.Connector
	}
	if opts.Sentinel != "" {
		script.Sentinel = opts.Sentinel
	}

	runOpts := []scenario.RunOption{
		scenario.WithReporter(linkedlist.NewLoggerReporter(log.Default())),
	}
	if opts.Verbose {
		runOpts = append(runOpts, scenario.WithOnStep(func(i int, st scenario.Step) {
			log.Printf("%s: step %d: %s", script.Name, i, st)
		}))
	}

	res, err := scenario.Run(script, c.App.Writer, runOpts...)
	if errors.Is(err, scenario.ErrExpectationFailed) {
		return cli.Exit(err.Error(), exitExpectation)
	}
	if err != nil {
		return err
	}
	log.Printf("%s: completed with %d values and %d diagnostics", res.Name, len(res.Values), len(res.Diagnostics))

	return nil
}
