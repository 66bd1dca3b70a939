package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackcoderx/reqtree/pkg/rest"
)

// View renders the entire TUI to a string.
func (m Model) View() string {
	tree := PaneStyle.
		Width(treeWidth(m.width)).
		Height(paneHeight(m.height)).
		Render(m.renderTree())
	preview := PaneStyle.
		Width(previewWidth(m.width)).
		Height(paneHeight(m.height)).
		Render(m.viewport.View())

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tree, preview))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderTree renders the visible rows, scrolled so the cursor stays visible.
func (m Model) renderTree() string {
	var lines []string
	if m.filtering {
		lines = append(lines, m.filter.View())
	}

	switch {
	case m.loading && len(m.rows) == 0:
		lines = append(lines, m.spinner.View()+HelpStyle.Render(" scanning"))
	case len(m.rows) == 0 && m.filtering:
		lines = append(lines, HelpStyle.Render("no matches"))
	case len(m.rows) == 0:
		lines = append(lines, HelpStyle.Render("no requests yet"))
	}

	height := paneHeight(m.height) - len(lines)
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	for i := start; i < len(m.rows) && i < start+height; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one tree line: indentation, marker, and the entry.
func (m Model) renderRow(r row, selected bool) string {
	indent := strings.Repeat("  ", r.depth)
	cursor := "  "
	if selected {
		cursor = CursorStyle.Render("> ")
	}

	switch n := r.node.(type) {
	case *rest.FolderNode:
		marker := "▸ "
		if m.expanded[n.Path] {
			marker = "▾ "
		}
		return cursor + indent + FolderStyle.Render(marker+n.Name)

	case *rest.RequestNode:
		label := r.label
		if label == "" {
			label = strings.TrimSuffix(n.Name, "."+string(n.Method))
		}
		return cursor + indent + MethodStyle(n.Method).Render(string(n.Method)) + RequestStyle.Render(label)
	}
	return ""
}

// renderFooter renders the status on the left and shortcuts on the right.
func (m Model) renderFooter() string {
	left := HelpStyle.Render(m.manager.Root())
	if m.status != "" {
		left = HelpStyle.Render(m.status)
	}
	if m.err != nil {
		left = ErrorStyle.Render("Error: " + m.err.Error())
	}

	parts := []string{
		ShortcutKeyStyle.Render("enter") + ShortcutDescStyle.Render(" open"),
		ShortcutKeyStyle.Render("/") + ShortcutDescStyle.Render(" filter"),
		ShortcutKeyStyle.Render("ctrl+y") + ShortcutDescStyle.Render(" copy path"),
		ShortcutKeyStyle.Render("r") + ShortcutDescStyle.Render(" refresh"),
		ShortcutKeyStyle.Render("q") + ShortcutDescStyle.Render(" quit"),
	}
	right := strings.Join(parts, "   ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}
