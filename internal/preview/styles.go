package preview

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	bannerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#39D353")).
			Padding(0, 2).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#39D353")).
			Bold(true)

	filledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#39D353"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#30363D"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B949E"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#30363D"))
)
