package tui

import "github.com/charmbracelet/lipgloss"

var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	ProofPaneStyle = PaneStyle.
			BorderForeground(lipgloss.Color("#7D56F4"))
)
