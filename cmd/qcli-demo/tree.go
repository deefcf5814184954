package main

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/napalu/qcli"
)

const (
	defaultExitCode = 0
	defaultTreeSize = 42
	defaultSeason   = "summer"
)

// newParser declares the command tree of the demo.
func newParser(stdout, stderr io.Writer, logger *slog.Logger) (*qcli.Parser, error) {
	exitCode, err := qcli.NewOptionWith([]string{"e", "exit-code"},
		qcli.WithDescription("The exit <code> to be used if the program runs successfully. The default code is 0"),
		qcli.WithValueName("code"),
		qcli.WithDefault(strconv.Itoa(defaultExitCode)))
	if err != nil {
		return nil, err
	}

	parser, err := qcli.NewParser(
		qcli.WithApplicationName(appName),
		qcli.WithApplicationVersion(appVersion),
		qcli.WithApplicationDescription("An application to demonstrate the capabilities of qcli"),
		qcli.WithVersionOption(),
		qcli.WithHelpOption(),
		qcli.WithOption(exitCode),
		qcli.WithStdout(stdout),
		qcli.WithStderr(stderr),
		qcli.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	printCtx, err := parser.AddContext("print", "Print various things to the console")
	if err != nil {
		return nil, err
	}
	if err = printCtx.AddOption(&qcli.Option{
		Names:       []string{"c", "colored"},
		Description: "Prints the graphics colored, instead of black and white",
	}); err != nil {
		return nil, err
	}

	tree, err := printCtx.AddLeaf("tree", "print a tree")
	if err != nil {
		return nil, err
	}
	size, err := qcli.NewOptionWith([]string{"size"},
		qcli.WithDescription("Choose the <size> (in pixels) the tree should be high"),
		qcli.WithValueName("size"),
		qcli.WithDefault(strconv.Itoa(defaultTreeSize)))
	if err != nil {
		return nil, err
	}
	season, err := qcli.NewOptionWith([]string{"season"},
		qcli.WithDescription("Choose the <season> (spring/summer/fall/winter) to show the tree for"),
		qcli.WithValueName("season"),
		qcli.WithDefault(defaultSeason))
	if err != nil {
		return nil, err
	}
	if err = tree.AddOptions(size, season); err != nil {
		return nil, err
	}

	sum, err := printCtx.AddLeaf("sum", "print the sum of numbers")
	if err != nil {
		return nil, err
	}
	sum.AddPositionalArgument("numbers", "The numbers to be summed up", "number...")

	message, err := parser.AddContext("message", "print some kind of message")
	if err != nil {
		return nil, err
	}
	if err = message.AddOptions(
		&qcli.Option{
			Names:       []string{"scream"},
			Description: "Scream the message, instead of being friendly",
		},
		&qcli.Option{
			Names:       []string{"f", "failure"},
			Description: "Print the message as failure (to stderr) instead of a normal message (stdout)",
		},
	); err != nil {
		return nil, err
	}

	echo, err := message.AddLeaf("echo", "Echo additional arguments")
	if err != nil {
		return nil, err
	}
	echo.AddPositionalArgument("message", "The message to be printed (can contain spaces)", "[message]")
	if _, err = message.AddLeaf("random", "Print some random stuff"); err != nil {
		return nil, err
	}
	if _, err = message.AddLeaf("help", "print the full help information, not just the selective one"); err != nil {
		return nil, err
	}

	return parser, nil
}
