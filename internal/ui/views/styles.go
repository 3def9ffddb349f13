package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Heading     lipgloss.Style
	SubHeading  lipgloss.Style
	Body        lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusKey   lipgloss.Style
	Anchor      lipgloss.Style
	Position    lipgloss.Style
	Moving      lipgloss.Style
	Paused      lipgloss.Style
	Prompt      lipgloss.Style
	Help        lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Heading:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		SubHeading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Body:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Anchor:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Position:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Moving:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		Paused:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Prompt:      lipgloss.NewStyle().Bold(true),
		Help:        lipgloss.NewStyle().Faint(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
