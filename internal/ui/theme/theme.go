package theme

import "github.com/charmbracelet/lipgloss"

var (
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Pink     = lipgloss.Color("#f5c2e7")
	Red      = lipgloss.Color("#f38ba8")

	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 1).
		Width(24)

	Title  = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Header = lipgloss.NewStyle().Foreground(Lavender).Bold(true).MarginTop(1)
	Muted  = lipgloss.NewStyle().Foreground(Subtext0)
	Hot    = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Good   = lipgloss.NewStyle().Foreground(Green).Bold(true)
)

// Accent returns a bold style in color c, for per-metric highlights.
func Accent(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
