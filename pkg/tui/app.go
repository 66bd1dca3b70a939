// Package tui provides the interactive request tree browser.
// It uses Bubble Tea with a two pane layout: the tree on the left and a
// preview of the selected request on the right.
//
// File organization:
// - app.go: Entry point (Run function)
// - model.go: Model struct and message types
// - init.go: Model construction and async commands
// - tree.go: Flattening the request tree into rows
// - update.go: Event handling and state updates
// - keys.go: Keyboard input handling
// - view.go: Rendering and display logic
// - styles.go: Visual styling (colors, borders, etc.)
// - highlight.go: Request preview rendering
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackcoderx/reqtree/pkg/rest"
)

// Run starts the browser on the tree managed by m.
func Run(m *rest.Manager) error {
	prog := tea.NewProgram(NewModel(m), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
