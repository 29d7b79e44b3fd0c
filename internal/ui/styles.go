package ui

import "github.com/charmbracelet/lipgloss"

var (
	panelBorder = lipgloss.Color("#3C5A72")
	accent      = lipgloss.Color("#6CB6FF")
	mutedText   = lipgloss.Color("#8B98A5")
	dangerText  = lipgloss.Color("#FF6B6B")
	warningText = lipgloss.Color("#F6AE2D")
)

var (
	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(panelBorder).
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(accent).
				Bold(true)

	collectionRowStyle = lipgloss.NewStyle().Bold(true)

	selectedRowStyle = lipgloss.NewStyle().Reverse(true)

	detailPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(panelBorder).
				Padding(0, 1)

	detailTitleStyle = lipgloss.NewStyle().
				Foreground(accent).
				Bold(true)

	errorStyle = lipgloss.NewStyle().Foreground(dangerText)

	maintenanceStyle = lipgloss.NewStyle().
				Foreground(warningText).
				Bold(true)

	statusBarStyle = lipgloss.NewStyle().Foreground(mutedText)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			Padding(0, 1)

	popupTitleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)
)
