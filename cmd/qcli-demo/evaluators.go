package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/napalu/qcli"
	"github.com/napalu/qcli/eval"
)

var seasonLeaves = map[string]string{
	"spring": "+",
	"summer": "*",
	"fall":   "~",
	"winter": ".",
}

var randomStuff = []string{
	"The quick brown fox jumps over the lazy dog",
	"42 is the answer, what was the question?",
	"It works on my machine",
	"There are 10 kinds of people",
}

// Evaluator_print handles the print context. It is resolved by its type name.
type Evaluator_print struct {
	Colored  bool
	Size     int
	Season   string
	ExitCode int

	stdout io.Writer
	stderr io.Writer
}

func (e *Evaluator_print) Exec_tree() int {
	leaf, ok := seasonLeaves[e.Season]
	if !ok {
		_, _ = fmt.Fprintf(e.stderr, "Unknown season %q\n", e.Season)
		return qcli.ExitFailure
	}
	if e.Size <= 0 {
		_, _ = fmt.Fprintf(e.stderr, "Invalid tree size %d\n", e.Size)
		return qcli.ExitFailure
	}

	c := color.New(color.FgGreen)
	if e.Colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	rows := max(1, e.Size/6)
	for i := 0; i < rows; i++ {
		_, _ = c.Fprintln(e.stdout, strings.Repeat(" ", rows-1-i)+strings.Repeat(leaf, 2*i+1))
	}
	_, _ = fmt.Fprintln(e.stdout, strings.Repeat(" ", rows-1)+"|")

	return e.ExitCode
}

func (e *Evaluator_print) Exec_sum(numbers []string) int {
	var total float64
	for _, n := range numbers {
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			_, _ = fmt.Fprintf(e.stderr, "%q is not a number\n", n)
			return qcli.ExitFailure
		}
		total += f
	}
	_, _ = fmt.Fprintln(e.stdout, strconv.FormatFloat(total, 'g', -1, 64))

	return e.ExitCode
}

// Evaluator_message handles the message context.
type Evaluator_message struct {
	Scream   bool
	Failure  bool
	ExitCode int

	parser *qcli.Parser
	stdout io.Writer
	stderr io.Writer
	random *rand.Rand
}

func (e *Evaluator_message) Exec_echo(message []string) int {
	text := strings.Join(message, " ")
	if e.Scream {
		text = strings.ToUpper(text) + "!"
	}
	e.println(text)

	return e.ExitCode
}

func (e *Evaluator_message) Exec_random() int {
	e.println(randomStuff[e.random.Intn(len(randomStuff))])
	return e.ExitCode
}

// Exec_help prints the help of every command, not only the one of the current level.
func (e *Evaluator_message) Exec_help() int {
	for i, path := range commandPaths(e.parser.Context, nil) {
		if !e.parser.Parse(append(append([]string(nil), path...), "--"+qcli.HelpOptionName)) {
			continue
		}
		if i > 0 {
			_, _ = io.WriteString(e.stdout, "\n")
		}
		e.parser.PrintHelp(e.stdout)
	}

	return e.ExitCode
}

func (e *Evaluator_message) println(text string) {
	w := e.stdout
	if e.Failure {
		w = e.stderr
	}
	_, _ = fmt.Fprintln(w, text)
}

// commandPaths lists the path of ctx and of every command below it, depth first.
func commandPaths(ctx *qcli.Context, prefix []string) [][]string {
	paths := [][]string{prefix}
	for _, name := range ctx.Names() {
		path := append(append([]string(nil), prefix...), name)
		if sub, ok := qcli.NodeAs[*qcli.Context](ctx, name); ok {
			paths = append(paths, commandPaths(sub, path)...)
			continue
		}
		paths = append(paths, path)
	}

	return paths
}

func newEvaluator(parser *qcli.Parser, stdout, stderr io.Writer, logger *slog.Logger) (*eval.Evaluator, error) {
	registry := eval.NewRegistry()
	err := errors.Join(
		registry.Register(eval.ReflectWith(eval.TypeName([]string{"print"}), func() (*Evaluator_print, error) {
			return &Evaluator_print{
				Size:     defaultTreeSize,
				Season:   defaultSeason,
				ExitCode: defaultExitCode,
				stdout:   stdout,
				stderr:   stderr,
			}, nil
		})),
		registry.Register(eval.ReflectWith(eval.TypeName([]string{"message"}), func() (*Evaluator_message, error) {
			return &Evaluator_message{
				ExitCode: defaultExitCode,
				parser:   parser,
				stdout:   stdout,
				stderr:   stderr,
				random:   rand.New(rand.NewSource(time.Now().UnixNano())),
			}, nil
		})),
	)
	if err != nil {
		return nil, err
	}

	return eval.New(
		eval.WithRegistry(registry),
		eval.WithStderr(stderr),
		eval.WithLogger(logger)), nil
}
