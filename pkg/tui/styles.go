package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blackcoderx/reqtree/pkg/rest"
)

// Minimal color palette
var (
	DimColor    = lipgloss.Color("#6c6c6c")
	TextColor   = lipgloss.Color("#e0e0e0")
	AccentColor = lipgloss.Color("#7aa2f7")
	ErrorColor  = lipgloss.Color("#f7768e")
	FolderColor = lipgloss.Color("#e0af68")
)

// methodColors follows the usual API client palette
var methodColors = map[rest.Method]lipgloss.Color{
	rest.GET:     lipgloss.Color("#9ece6a"),
	rest.POST:    lipgloss.Color("#e0af68"),
	rest.PUT:     lipgloss.Color("#7aa2f7"),
	rest.PATCH:   lipgloss.Color("#bb9af7"),
	rest.DELETE:  lipgloss.Color("#f7768e"),
	rest.HEAD:    lipgloss.Color("#7dcfff"),
	rest.OPTIONS: lipgloss.Color("#a9b1d6"),
}

var (
	FolderStyle = lipgloss.NewStyle().
			Foreground(FolderColor)

	RequestStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	CursorStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimColor)

	ShortcutKeyStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	ShortcutDescStyle = lipgloss.NewStyle().
				Foreground(DimColor)
)

// MethodStyle colors a method badge.
func MethodStyle(m rest.Method) lipgloss.Style {
	color, ok := methodColors[m]
	if !ok {
		color = TextColor
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Width(7)
}
