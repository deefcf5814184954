package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{
			name:   "tree",
			args:   []string{"print", "tree", "--size", "12", "--season", "winter"},
			stdout: " .\n...\n |\n",
		},
		{
			name:   "tree defaults",
			args:   []string{"print", "tree"},
			stdout: "      *\n",
		},
		{
			name:   "unknown season",
			args:   []string{"print", "tree", "--season", "monsoon"},
			code:   1,
			stderr: "Unknown season \"monsoon\"",
		},
		{
			name:   "sum",
			args:   []string{"print", "sum", "1", "2", "3.5"},
			stdout: "6.5\n",
		},
		{
			name:   "sum rejects words",
			args:   []string{"print", "sum", "1", "two"},
			code:   1,
			stderr: "\"two\" is not a number",
		},
		{
			name:   "echo with exit code",
			args:   []string{"-e", "3", "message", "echo", "hello", "world"},
			code:   3,
			stdout: "hello world\n",
		},
		{
			name:   "scream",
			args:   []string{"message", "--scream", "echo", "hi"},
			stdout: "HI!\n",
		},
		{
			name:   "failure",
			args:   []string{"message", "-f", "echo", "oops"},
			stderr: "oops\n",
		},
		{
			name:   "version",
			args:   []string{"--version"},
			stdout: "qcliparser-demo 4.2.0\n",
		},
		{
			name:   "contextual help",
			args:   []string{"print", "--help"},
			stdout: "Usage: qcliparser-demo [options] print {tree|sum}\n",
		},
		{
			name:   "full help",
			args:   []string{"message", "help"},
			stdout: "Usage: qcliparser-demo [options] print sum number...\n",
		},
		{
			name:   "unknown command",
			args:   []string{"print", "bogus"},
			code:   1,
			stderr: "Unknown command \"bogus\"\nCommand-Context: print\n",
		},
		{
			name:   "command required",
			args:   nil,
			code:   1,
			stderr: "A command must be specified\n",
		},
		{
			name:   "too many arguments",
			args:   []string{"message", "random", "extra"},
			code:   1,
			stderr: "Expected at most 0 arguments, but 1 have been passed!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)
			assert.Equal(t, tt.code, code, stderr.String())
			assert.Contains(t, stdout.String(), tt.stdout)
			assert.Contains(t, stderr.String(), tt.stderr)
		})
	}
}

func TestRun_Random(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 0, run([]string{"message", "random"}, &stdout, &stderr))
	assert.Contains(t, randomStuff, strings.TrimSuffix(stdout.String(), "\n"))
}

func TestCommandPaths(t *testing.T) {
	var stdout, stderr bytes.Buffer
	parser, err := newParser(&stdout, &stderr, nil)
	assert.NoError(t, err)

	paths := commandPaths(parser.Context, nil)
	assert.Equal(t, [][]string{
		nil,
		{"print"},
		{"print", "tree"},
		{"print", "sum"},
		{"message"},
		{"message", "echo"},
		{"message", "random"},
		{"message", "help"},
	}, paths)
}
