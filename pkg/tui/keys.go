package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackcoderx/reqtree/pkg/rest"
)

// handleKeyMsg processes keyboard input and returns the updated model and command.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		return m.moveCursor(-1), nil

	case "down", "j":
		return m.moveCursor(1), nil

	case "enter":
		return m.handleEnter()

	case "ctrl+y":
		return m.handleCopyPath()

	case "r":
		return m.handleRefresh()

	case "/":
		m.filtering = true
		m.filter.SetValue("")
		m.cursor = 0
		cmd := m.filter.Focus()
		m.rebuildRows()
		return m, cmd

	case "pgup", "pgdown", "home", "end":
		return m.handleViewportScroll(msg)

	default:
		return m, nil
	}
}

// handleFilterKey routes keys while the fuzzy filter is active.
func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.cursor = 0
		m.rebuildRows()
		return m, nil

	case "up":
		return m.moveCursor(-1), nil

	case "down":
		return m.moveCursor(1), nil

	case "enter":
		return m.handleEnter()

	case "ctrl+y":
		return m.handleCopyPath()
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	m.rebuildRows()
	return m, cmd
}

func (m Model) moveCursor(delta int) Model {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// handleEnter toggles a folder or previews a request.
func (m Model) handleEnter() (Model, tea.Cmd) {
	switch n := m.selected().(type) {
	case *rest.FolderNode:
		m.expanded[n.Path] = !m.expanded[n.Path]
		m.rebuildRows()
		return m, nil
	case *rest.RequestNode:
		return m, loadPreview(m.manager, n.Path, m.viewport.Width)
	}
	return m, nil
}

// handleCopyPath copies the selected entry's path to the clipboard.
func (m Model) handleCopyPath() (Model, tea.Cmd) {
	node := m.selected()
	if node == nil {
		return m, nil
	}
	if err := m.copyToClipboard(node.NodePath()); err != nil {
		m.status = "copy failed: " + err.Error()
		return m, nil
	}
	m.status = "copied " + node.NodePath()
	return m, nil
}

// handleRefresh rescans the tree.
func (m Model) handleRefresh() (Model, tea.Cmd) {
	m.loading = true
	m.status = ""
	return m, tea.Batch(loadTree(m.manager), m.spinner.Tick)
}

// handleViewportScroll passes scroll events to the preview.
func (m Model) handleViewportScroll(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
