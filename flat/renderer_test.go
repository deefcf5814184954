package flat

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Help(t *testing.T) {
	p := NewParser()
	p.SetHelpWidth(80)
	require.NoError(t, p.AddOptions(
		&Option{Names: []string{"h", "help"}, Description: "Displays help."},
		&Option{Names: []string{"s", "size"}, ValueName: "size", Description: "The size", DefaultValues: []string{"42"}},
		&Option{Names: []string{"secret"}, Hidden: true},
	))
	p.AddPositionalArgument("print", "Print things", "{print|message}")
	p.AddPositionalArgument("message", "Show a message", " \b")

	want := "Usage: demo [options] {print|message}\n" +
		"A demo.\n" +
		"\n" +
		"Options:\n" +
		"  -h, --help         Displays help.\n" +
		"  -s, --size <size>  The size [default: 42]\n" +
		"\n" +
		"Arguments:\n" +
		"  print    Print things\n" +
		"  message  Show a message\n"
	assert.Equal(t, want, p.Help("demo", "A demo."))
}

func TestParser_HelpWithoutOptions(t *testing.T) {
	p := NewParser()
	p.AddPositionalArgument(" ", " ", "demo print")

	assert.Equal(t, "Usage: demo demo print\n", p.Help("demo", ""), "blank positional names are not listed")
}

func TestParser_HelpWrapsDescriptions(t *testing.T) {
	p := NewParser()
	p.SetHelpWidth(40)
	require.NoError(t, p.AddOption(&Option{
		Names:       []string{"l", "long"},
		Description: "a description that is far too long to fit on one line",
	}))

	help := p.Help("app", "")
	lines := strings.Split(strings.TrimRight(help, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "  -l, --long  a description that is far", lines[3])
	assert.Equal(t, "              too long to fit on one", lines[4])
	assert.Equal(t, "              line", lines[5])
}

func TestParser_HelpAlignsWideRunes(t *testing.T) {
	p := NewParser()
	p.SetHelpWidth(40)
	require.NoError(t, p.AddOptions(
		&Option{Names: []string{"s", "size"}, ValueName: "size", Description: "The size"},
		&Option{Names: []string{"名前"}, Description: "名前 名前 名前 名前 名前"},
	))

	help := p.Help("app", "")
	lines := strings.Split(strings.TrimRight(help, "\n"), "\n")
	require.Len(t, lines, 6)

	// "--名前" is six cells wide, the size option seventeen
	descColumn := strings.Repeat(" ", len("  -s, --size <size>  "))
	assert.Equal(t, "  -s, --size <size>  The size", lines[3])
	assert.Equal(t, "  --名前"+strings.Repeat(" ", 11)+"  名前 名前 名前 名前", lines[4])
	assert.Equal(t, descColumn+"名前", lines[5])
	assert.Equal(t, len(descColumn), lipgloss.Width(strings.TrimSuffix(lines[4], "名前 名前 名前 名前")))
}

type upperRenderer struct {
	*DefaultRenderer
}

func (r upperRenderer) PositionalName(p Positional) string {
	return strings.ToUpper(p.Name)
}

func TestParser_SetRenderer(t *testing.T) {
	p := NewParser()
	p.SetHelpWidth(80)
	p.SetRenderer(upperRenderer{NewRenderer(p)})
	p.AddPositionalArgument("file", "", "")

	assert.Equal(t, "Usage: app file\n\nArguments:\n  FILE\n", p.Help("app", ""))
}

func TestWrapText(t *testing.T) {
	assert.Nil(t, wrapText("", 10))
	assert.Equal(t, []string{"one two", "three"}, wrapText("one two three", 8))
	assert.Equal(t, []string{"a", "b"}, wrapText("a\nb", 10))
	assert.Equal(t, []string{"名前 名前", "名前"}, wrapText("名前 名前 名前", 10), "wide runes take two cells")

	lines := wrapText("unbreakable x", 5)
	require.Greater(t, len(lines), 2)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 5)
	}
	assert.Equal(t, "unbreakablex", strings.ReplaceAll(strings.Join(lines, ""), " ", ""))
}
