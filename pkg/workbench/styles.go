package workbench

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorError   = lipgloss.Color("#EF4444")
	colorOK      = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSalmon  = lipgloss.Color("#FA8072")
	colorDark    = lipgloss.Color("#1F2937")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	FocusedPaneStyle = PaneStyle.
				BorderForeground(colorPrimary)

	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorOK).
			Bold(true)

	// MarkStyle paints error spans in the echoed program.
	MarkStyle = lipgloss.NewStyle().
			Background(colorSalmon).
			Foreground(colorDark)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
