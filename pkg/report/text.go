package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"octcalc/pkg/grid"
)

var (
	colorError  = lipgloss.Color("#EF4444")
	colorMark   = lipgloss.Color("#FA8072") // salmon, as in the editors
	colorOK     = lipgloss.Color("#10B981")
	colorMuted  = lipgloss.Color("#6B7280")
	colorResult = lipgloss.Color("#F9FAFB")

	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	markStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorMark)
	okStyle     = lipgloss.NewStyle().Foreground(colorOK)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(colorResult)
)

type printer struct {
	color bool
}

func newPrinter(color bool) printer {
	return printer{color: color}
}

func (p printer) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// render prints results as "name = value" lines, or every diagnostic as
//
//	file:line:col: message
//	  offending source line
//	  ^^^^
func (p printer) render(r Report) string {
	var b strings.Builder
	if r.Success {
		for _, res := range r.Results {
			fmt.Fprintf(&b, "%s = %s\n", p.paint(resultStyle, res.Name), p.paint(okStyle, res.Value))
		}
		if len(r.Results) == 0 {
			b.WriteString(p.paint(mutedStyle, "no variables were declared") + "\n")
		}
		return b.String()
	}

	lines := strings.Split(r.text, "\n")
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&b, "%s %s\n",
			p.paint(mutedStyle, fmt.Sprintf("%s:%d:%d:", r.Source, d.Line, d.Column)),
			p.paint(errorStyle, d.Message))
		for _, seg := range grid.SplitSpan(r.text, d.Start, d.End) {
			if seg.Line >= len(lines) {
				continue
			}
			src := strings.TrimRight(lines[seg.Line], "\r")
			b.WriteString("  " + src + "\n")
			b.WriteString("  " + indent(src, seg.Col) + p.paint(markStyle, strings.Repeat("^", seg.Len)) + "\n")
		}
	}
	fmt.Fprintf(&b, "%s\n", p.paint(errorStyle, fmt.Sprintf("translation failed at the %s stage", r.Stage)))
	return b.String()
}

// indent returns whitespace as wide as the first col characters of line,
// keeping tabs so the caret lines up under the source text.
func indent(line string, col int) string {
	var b strings.Builder
	i := 0
	for _, r := range line {
		if i == col {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteRune(' ')
	}
	return b.String()
}
