package flat

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/napalu/qcli/errs"
)

// Renderer produces the pieces of the help text for options and positional arguments.
type Renderer interface {
	OptionName(o *Option) string
	OptionDescription(o *Option) string
	PositionalName(p Positional) string
	PositionalDescription(p Positional) string
}

type DefaultRenderer struct {
	parser *Parser
}

func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// OptionName returns the aliases of o as "-s, --size <size>". Single-character aliases
// get one dash, longer ones two.
func (r *DefaultRenderer) OptionName(o *Option) string {
	names := make([]string, 0, len(o.Names))
	for _, n := range o.Names {
		if utf8.RuneCountInString(n) == 1 {
			names = append(names, "-"+n)
		} else {
			names = append(names, "--"+n)
		}
	}
	usage := strings.Join(names, ", ")
	if o.TakesValue() {
		usage += " <" + o.ValueName + ">"
	}

	return usage
}

// OptionDescription returns the description of o followed by its default values, if any.
func (r *DefaultRenderer) OptionDescription(o *Option) string {
	if len(o.DefaultValues) == 0 {
		return o.Description
	}
	defaults := r.parser.bundle.T(errs.MsgDefaultsToKey, strings.Join(o.DefaultValues, ", "))
	if o.Description == "" {
		return defaults
	}

	return o.Description + " " + defaults
}

func (r *DefaultRenderer) PositionalName(p Positional) string {
	return p.Name
}

func (r *DefaultRenderer) PositionalDescription(p Positional) string {
	return p.Description
}

// Help renders the usage line, description, option table and argument table. Hidden
// options and positionals whose name or syntax is blank are left out.
func (s *Parser) Help(appName, description string) string {
	var sb strings.Builder

	var visible []*Option
	for _, o := range s.declared {
		if !o.Hidden {
			visible = append(visible, o)
		}
	}

	usage := s.bundle.T(errs.MsgUsageKey, appName)
	if len(visible) > 0 {
		usage += " " + s.bundle.T(errs.MsgOptionsPlaceholderKey)
	}
	for _, p := range s.positionals {
		syntax := p.Syntax
		if syntax == "" {
			syntax = p.Name
		}
		if isBlank(syntax) {
			continue
		}
		usage += " " + syntax
	}
	sb.WriteString(usage)
	sb.WriteString("\n")
	if description != "" {
		sb.WriteString(description)
		sb.WriteString("\n")
	}

	if len(visible) > 0 {
		rows := make([][2]string, 0, len(visible))
		for _, o := range visible {
			rows = append(rows, [2]string{s.renderer.OptionName(o), s.renderer.OptionDescription(o)})
		}
		sb.WriteString("\n")
		sb.WriteString(s.bundle.T(errs.MsgOptionsHeaderKey))
		sb.WriteString("\n")
		s.writeTable(&sb, rows)
	}

	var rows [][2]string
	for _, p := range s.positionals {
		name := s.renderer.PositionalName(p)
		if isBlank(name) {
			continue
		}
		rows = append(rows, [2]string{name, s.renderer.PositionalDescription(p)})
	}
	if len(rows) > 0 {
		sb.WriteString("\n")
		sb.WriteString(s.bundle.T(errs.MsgArgumentsHeaderKey))
		sb.WriteString("\n")
		s.writeTable(&sb, rows)
	}

	return sb.String()
}

const (
	indent = "  "
	gutter = "  "
)

// writeTable lays rows out in two columns. Widths are display widths, so wide runes
// and styled cells line up.
func (s *Parser) writeTable(sb *strings.Builder, rows [][2]string) {
	nameWidth := 0
	for _, row := range rows {
		nameWidth = max(nameWidth, lipgloss.Width(row[0]))
	}
	nameWidth = min(nameWidth, s.width/2)
	descWidth := max(s.width-len(indent)-nameWidth-len(gutter), 20)
	pad := strings.Repeat(" ", len(indent)+nameWidth+len(gutter))

	for _, row := range rows {
		lines := wrapText(row[1], descWidth)
		nameLen := lipgloss.Width(row[0])
		line := indent + row[0]
		if nameLen > nameWidth && len(lines) > 0 {
			sb.WriteString(line)
			sb.WriteString("\n")
			line = pad + lines[0]
		} else if len(lines) > 0 {
			line += strings.Repeat(" ", nameWidth-nameLen) + gutter + lines[0]
		}
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")
		for _, l := range lines[min(1, len(lines)):] {
			sb.WriteString(pad)
			sb.WriteString(l)
			sb.WriteString("\n")
		}
	}
}

// wrapText word-wraps text to lines of at most width cells. Words longer than width
// are broken, explicit newlines are kept.
func wrapText(text string, width int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}

	return lines
}

func isBlank(s string) bool {
	return strings.Trim(s, " \b\t") == ""
}
