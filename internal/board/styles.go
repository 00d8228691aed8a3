package board

import "github.com/charmbracelet/lipgloss"

// Muted palette; the board runs on whatever terminal the desk has.
var (
	colorFg      = lipgloss.Color("7")
	colorMuted   = lipgloss.Color("8")
	colorServing = lipgloss.Color("2")
	colorHigh    = lipgloss.Color("1")
	colorMedium  = lipgloss.Color("3")
	colorLow     = lipgloss.Color("4")
	colorAccent  = lipgloss.Color("6")
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorFg).
			Bold(true)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	styleServingCard = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorServing).
				Padding(0, 1)

	styleIdleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			Foreground(colorMuted)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleNotice = lipgloss.NewStyle().
			Foreground(colorAccent)

	stylePrompt = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)

// priorityStyle colors a priority tag.
func priorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "high":
		return lipgloss.NewStyle().Foreground(colorHigh).Bold(true)
	case "medium":
		return lipgloss.NewStyle().Foreground(colorMedium)
	default:
		return lipgloss.NewStyle().Foreground(colorLow)
	}
}
