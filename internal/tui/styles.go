package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent lipgloss.Color = "#007BFF"
	colorMuted  lipgloss.Color = "#888888"
	colorText   lipgloss.Color = "#cdd6f4"
	colorOnAcc  lipgloss.Color = "#ffffff"
	colorBorder lipgloss.Color = "#585b70"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	inputStyle     = lipgloss.NewStyle()
	addButtonStyle = lipgloss.NewStyle().Bold(true).Foreground(colorOnAcc).Background(colorAccent)
	checkboxStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	taskStyle      = lipgloss.NewStyle().Foreground(colorText)
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted)
	cursorStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	ruleStyle      = lipgloss.NewStyle().Foreground(colorBorder)
)

const (
	addButtonLabel = "[ Add ]"
	checkboxOn     = "[■]"
	checkboxOff    = "[ ]"
	cursorMarker   = "▶ "
	defaultWidth   = 60
)
