package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg), nil

	case treeLoadedMsg:
		return m.handleTreeLoaded(msg), nil

	case previewMsg:
		return m.handlePreview(msg), nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleWindowResize adjusts the layout when the terminal is resized.
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.viewport.Width = previewWidth(m.width)
	m.viewport.Height = paneHeight(m.height)
	m.filter.Width = treeWidth(m.width) - 4
	m.ready = true
	return m
}

// handleTreeLoaded replaces the tree with a fresh scan.
func (m Model) handleTreeLoaded(msg treeLoadedMsg) Model {
	m.loading = false
	if msg.err != nil {
		m.err = msg.err
		return m
	}
	m.err = nil
	m.nodes = msg.nodes
	m.rebuildRows()
	return m
}

// handlePreview shows a rendered request.
func (m Model) handlePreview(msg previewMsg) Model {
	if msg.err != nil {
		m.err = msg.err
		return m
	}
	m.previewPath = msg.path
	m.viewport.SetContent(msg.content)
	m.viewport.GotoTop()
	return m
}
