// qcli-demo shows a command tree resolved by qcli and dispatched by eval.
//
//	qcli-demo [-e code] print [-c] tree [--size n] [--season s]
//	qcli-demo [-e code] print [-c] sum number...
//	qcli-demo [-e code] message [--scream] [-f] {echo [message] | random | help}
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/napalu/qcli"
)

const (
	appName    = "qcliparser-demo"
	appVersion = "4.2.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, dispatches them and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel()}))

	parser, err := newParser(stdout, stderr, logger)
	if err != nil {
		logger.Error("cannot build the command tree", "error", err)
		return qcli.ExitFailure
	}

	code := -1
	parser.SetExitFunc(func(c int) { code = c })
	parser.Process(args)
	if code != -1 {
		return code
	}

	logger.Info("parsed",
		"context", parser.ContextChain(),
		"options", parser.OptionNames(),
		"arguments", parser.PositionalArguments())

	evaluator, err := newEvaluator(parser, stdout, stderr, logger)
	if err != nil {
		logger.Error("cannot register evaluators", "error", err)
		return qcli.ExitFailure
	}

	return evaluator.Exec(parser)
}

func logLevel() slog.Level {
	if os.Getenv("QCLI_DEMO_DEBUG") != "" {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}
