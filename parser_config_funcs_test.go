package qcli

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/napalu/qcli/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParser_ConfigFuncs(t *testing.T) {
	var out, errOut bytes.Buffer
	var logs bytes.Buffer

	p, err := NewParser(
		WithApplicationName("app"),
		WithApplicationVersion("1.0"),
		WithApplicationDescription("An app"),
		WithHelpOption(),
		WithVersionOption(),
		WithStdout(&out),
		WithStderr(&errOut),
		WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		WithOption(NewOption("q", "quiet")),
	)
	require.NoError(t, err)
	assert.Equal(t, "app", p.ApplicationName())
	assert.Equal(t, "1.0", p.ApplicationVersion())
	assert.Equal(t, "An app", p.ApplicationDescription())

	var names []string
	for _, o := range p.Options() {
		names = append(names, o.Names...)
	}
	assert.Equal(t, []string{"h", "help", "?", "v", "version", "q", "quiet"}, names)

	_, _ = p.AddLeaf("run", "")
	code := -1
	p.SetExitFunc(func(c int) { code = c })
	p.Process([]string{"--version"})
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "app 1.0\n", out.String())

	p.Process([]string{"nope"})
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "Unknown command \"nope\"\n", errOut.String())
	assert.Contains(t, logs.String(), "parse failed", "failures are logged at debug level")
}

func TestNewParser_ConfigErrors(t *testing.T) {
	p, err := NewParser(WithOption(NewOption("")))
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, errs.ErrConfiguringParser))
	assert.True(t, errors.Is(err, errs.ErrEmptyOptionName))

	p, err = NewParser(WithHelpOption(), WithHelpOption())
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, errs.ErrOptionAliasConflict))

	p, err = NewParser(WithOption(NewOption("h")), WithHelpOption())
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, errs.ErrOptionAliasConflict), "-h is taken")
}
