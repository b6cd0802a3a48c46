package browser

import "github.com/charmbracelet/lipgloss"

var (
	// Base colors
	primaryColor = lipgloss.Color("212")
	accentColor  = lipgloss.Color("141")
	mutedColor   = lipgloss.Color("241")
	todayColor   = lipgloss.Color("42")
	errorColor   = lipgloss.Color("196")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	// Row styles
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	weekendStyle  = lipgloss.NewStyle().Foreground(primaryColor)
	todayStyle    = lipgloss.NewStyle().Foreground(todayColor).Bold(true)
	emptyDayStyle = lipgloss.NewStyle().Foreground(mutedColor)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("237")).Bold(true)
	calNameStyle  = lipgloss.NewStyle().Foreground(accentColor)
	contStyle     = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	statusStyle = lipgloss.NewStyle().Foreground(mutedColor)
	errStyle    = lipgloss.NewStyle().Foreground(errorColor)
	helpStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)
