package util

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_NonFileWriter(t *testing.T) {
	var buf bytes.Buffer

	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, DefaultTerminalWidth, TerminalWidth(&buf))
}

func TestTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f), "a regular file is not a terminal")
	assert.Equal(t, DefaultTerminalWidth, TerminalWidth(f))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer

	PrintError(&buf, "Unknown command \"x\"")
	assert.Equal(t, "Unknown command \"x\"\n", buf.String(), "no colour codes outside a terminal")
}
