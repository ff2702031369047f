package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/npillmayer/pvec"
	"github.com/npillmayer/pvec/internal/cmd/bench"
	"github.com/npillmayer/pvec/internal/cmd/build"
	"github.com/npillmayer/pvec/internal/cmd/check"
	"github.com/npillmayer/pvec/internal/cmd/dump"
	"github.com/npillmayer/pvec/internal/logging"
)

var flags = []cli.Flag{
	// Logging
	&cli.StringFlag{
		Name:    "logfmt",
		Aliases: []string{"f"},
		Usage:   "`format` logs as text, json or none",
		Value:   "text",
		EnvVars: []string{"PVEC_LOGFMT"},
	},
	&cli.StringFlag{
		Name:    "loglvl",
		Usage:   "set logging `level` to trace, debug, info, warn, error or fatal",
		Value:   "info",
		EnvVars: []string{"PVEC_LOGLVL"},
	},
	// Tracing
	&cli.StringFlag{
		Name:    "trace",
		Usage:   "set trace `level` of the vector package to Error, Info or Debug",
		Value:   "Error",
		EnvVars: []string{"PVEC_TRACE"},
	},
	&cli.StringFlag{
		Name:        "tracedest",
		Usage:       "write traces to `file`",
		DefaultText: "stderr",
		EnvVars:     []string{"PVEC_TRACEDEST"},
	},
	// Vector shape
	&cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "vector `kind`: appendable, prependable, deque or list",
		Value:   "appendable",
		EnvVars: []string{"PVEC_KIND"},
	},
	&cli.IntFlag{
		Name:    "size",
		Aliases: []string{"n"},
		Usage:   "build vectors of 0…`n`-1 when no items are given",
		Value:   100,
		EnvVars: []string{"PVEC_SIZE"},
	},
	// Misc.
	&cli.BoolFlag{
		Name:    "prettyprint",
		Aliases: []string{"pp"},
		Usage:   "pretty-print JSON output",
		Hidden:  true,
	},
}

var commands = []*cli.Command{
	build.Command(),
	dump.Command(),
	check.Command(),
	bench.Command(),
}

func main() {
	run(&cli.App{
		Name:                 "pvec",
		Usage:                "build, inspect and check persistent vectors",
		UsageText:            "pvec [global options] command [command options] [arguments...]",
		Version:              pvec.Version,
		EnableBashCompletion: true,
		Flags:                flags,
		Commands:             commands,
		Before:               before,
		Metadata: map[string]interface{}{
			"version": pvec.Version,
		},
	})
}

func before(c *cli.Context) error {
	if err := logging.ConfigureTracing(c); err != nil {
		return err
	}
	logging.New(c).Debug("tracing configured")
	return nil
}

func run(app *cli.App) {
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
