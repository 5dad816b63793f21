package ui

import "github.com/charmbracelet/lipgloss"

// Centralizes the lipgloss styles used for terminal output.

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")). // Purple
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")). // Light purple
			MarginTop(1)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	fadedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light gray

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	itemStyle = lipgloss.NewStyle().PaddingLeft(2)
)
