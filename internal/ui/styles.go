package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title   lipgloss.Style
	Card    lipgloss.Style
	Name    lipgloss.Style
	Label   lipgloss.Style
	Link    lipgloss.Style
	Dim     lipgloss.Style
	Error   lipgloss.Style
	Status  lipgloss.Style
	Loading lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2).
			Width(60),
		Name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Link:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")).MarginTop(1),
		Loading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Help:    lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
