package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("63")
	colorAccent  = lipgloss.Color("212")
	colorSuccess = lipgloss.Color("42")
	colorDanger  = lipgloss.Color("196")
	colorMuted   = lipgloss.Color("241")

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	focusedPanelStyle = panelStyle.
				BorderForeground(colorAccent)

	paramLabelStyle = lipgloss.NewStyle().Foreground(colorMuted).Width(22)
	paramValueStyle = lipgloss.NewStyle().Bold(true)

	sliderTrackStyle = lipgloss.NewStyle().Foreground(colorMuted)
	sliderFillStyle  = lipgloss.NewStyle().Foreground(colorAccent)

	metricLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	metricValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)

	passStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
)
