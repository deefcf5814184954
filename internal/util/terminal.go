package util

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DefaultTerminalWidth is used whenever the width of the output cannot be determined.
const DefaultTerminalWidth = 80

type fileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fileDescriptor)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of the terminal behind w or DefaultTerminalWidth.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(fileDescriptor)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}

	return width
}

// PrintError writes text and a newline to w, in red when w is a terminal.
func PrintError(w io.Writer, text string) {
	if IsTerminal(w) {
		c := color.New(color.FgRed)
		c.EnableColor()
		_, _ = c.Fprintln(w, text)
		return
	}
	_, _ = fmt.Fprintln(w, text)
}
