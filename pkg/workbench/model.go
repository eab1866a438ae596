// Package workbench is the terminal front end: an editor, the grammar and an
// output pane that shows results or the program with its errors marked.
package workbench

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"octcalc/pkg/session"
	"octcalc/pkg/translator"
)

// Options configures a workbench Model.
type Options struct {
	ShowGrammar  bool
	EditorHeight int
}

// Model is the bubbletea model of the workbench.
type Model struct {
	width  int
	height int

	editor textarea.Model
	output viewport.Model

	session     *session.Session
	last        session.Output
	translated  bool
	showGrammar bool
}

// New creates a workbench that edits src and translates through s.
func New(s *session.Session, src string, opts Options) Model {
	if opts.EditorHeight <= 0 {
		opts.EditorHeight = 10
	}

	ta := textarea.New()
	ta.Placeholder = "Start Array 7.0 AB123 = 7.0 + 1.0 End"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(opts.EditorHeight)
	ta.SetValue(src)
	ta.Focus()

	vp := viewport.New(80, 8)
	vp.SetContent(HelpStyle.Render("Press F5 or Ctrl+T to translate."))

	return Model{
		editor:      ta,
		output:      vp,
		session:     s,
		showGrammar: opts.ShowGrammar,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "ctrl+t", "f5":
			return m.Translate(), nil
		case "ctrl+g":
			m.showGrammar = !m.showGrammar
			m.resize()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// Translate runs the editor text through the session and refreshes the
// output pane.
func (m Model) Translate() Model {
	m.last = m.session.Translate(m.editor.Value())
	m.translated = true
	m.output.SetContent(m.renderOutput())
	m.output.GotoTop()
	return m
}

// Output returns the result of the latest translation.
func (m Model) Output() session.Output {
	return m.last
}

func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	editorWidth := m.width - 4
	if m.showGrammar {
		editorWidth = m.width/2 - 4
	}
	m.editor.SetWidth(max(editorWidth, 20))

	// title + two pane borders + help line
	chrome := 1 + 4 + 4 + 1
	m.output.Width = max(m.width-4, 20)
	m.output.Height = max(m.height-chrome-m.editor.Height(), 3)
	if m.translated {
		m.output.SetContent(m.renderOutput())
	}
}

func (m Model) renderOutput() string {
	var b strings.Builder
	for i, line := range m.last.Lines {
		switch {
		case i == 0 && m.last.Failed():
			line = ErrorStyle.Render(line)
		case i == 0:
			line = SuccessStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(m.last.Highlights) > 0 {
		b.WriteString("\n")
		b.WriteString(highlight(m.editor.Value(), m.last.Highlights, func(s string) string { return MarkStyle.Render(s) }))
	}
	return b.String()
}

// highlight returns text with every highlighted run passed through mark.
func highlight(text string, hs []session.Highlight, mark func(string) string) string {
	runes := []rune(text)
	marked := make([]bool, len(runes)+1)
	for _, h := range hs {
		end := h.End
		if end <= h.Start {
			end = h.Start + 1
		}
		for i := max(h.Start, 0); i < end && i < len(marked); i++ {
			marked[i] = true
		}
	}

	var b strings.Builder
	flush := func(from, to int) {
		chunk := string(runes[from:to])
		if !marked[from] {
			b.WriteString(chunk)
			return
		}
		// Mark line by line so the style does not bleed across breaks; a
		// marked line break shows as one marked cell.
		parts := strings.Split(chunk, "\n")
		for i, part := range parts {
			if i > 0 {
				b.WriteString("\n")
			}
			switch {
			case part != "":
				b.WriteString(mark(part))
			case i < len(parts)-1:
				b.WriteString(mark(" "))
			}
		}
	}

	from := 0
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || marked[i] != marked[from] {
			flush(from, i)
			from = i
		}
	}
	// a span just past the end (a missing "End") is drawn as one cell
	if marked[len(runes)] {
		b.WriteString(mark(" "))
	}
	return b.String()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Octal Translator") + "\n")

	editor := FocusedPaneStyle.Render(PaneTitleStyle.Render("Program") + "\n" + m.editor.View())
	if m.showGrammar {
		grammar := PaneStyle.Render(PaneTitleStyle.Render("Grammar (BNF)") + "\n" + translator.Grammar)
		editor = lipgloss.JoinHorizontal(lipgloss.Top, editor, grammar)
	}
	b.WriteString(editor + "\n")
	b.WriteString(PaneStyle.Render(PaneTitleStyle.Render("Result / Errors") + "\n" + m.output.View()) + "\n")
	b.WriteString(HelpStyle.Render("F5/Ctrl+T translate • Ctrl+G grammar • PgUp/PgDn scroll • Esc quit"))
	return b.String()
}

// Run starts the workbench in the alternate screen.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
