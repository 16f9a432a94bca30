package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#2563eb")
	muted   = lipgloss.Color("#6b7280")
	tint    = lipgloss.Color("#dbeafe")
	danger  = lipgloss.Color("#dc2626")
)

// Styles groups the lipgloss styles used by the terminal screens.
type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Heading      lipgloss.Style
	Back         lipgloss.Style
	Muted        lipgloss.Style
	Bold         lipgloss.Style
	Amount       lipgloss.Style
	Card         lipgloss.Style
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Bar          lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		Heading: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1),

		Back: lipgloss.NewStyle().
			Foreground(primary),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Amount: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),

		Chip: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),

		ChipSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(primary).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Background(tint).
			Bold(true).
			Padding(0, 2),

		Bar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8884d8")),

		Error: lipgloss.NewStyle().
			Foreground(danger),

		Help: lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1),
	}
}
