package tui

import (
	"github.com/blackcoderx/reqtree/pkg/rest"
)

// flatten returns the visible rows of nodes. Children of collapsed folders
// are hidden.
func flatten(nodes []rest.Node, expanded map[string]bool, depth int) []row {
	var rows []row
	for _, node := range nodes {
		rows = append(rows, row{node: node, depth: depth})
		if f, ok := node.(*rest.FolderNode); ok && expanded[f.Path] {
			rows = append(rows, flatten(f.Children, expanded, depth+1)...)
		}
	}
	return rows
}

// searchRows lists the requests matching pattern as flat rows labelled with
// their relative path.
func searchRows(nodes []rest.Node, root, pattern string) []row {
	results := rest.Search(nodes, root, pattern)
	rows := make([]row, len(results))
	for i, r := range results {
		rows[i] = row{node: r.Request, label: r.Rel}
	}
	return rows
}

// rebuildRows recomputes the visible rows and keeps the cursor in range.
func (m *Model) rebuildRows() {
	if m.filtering {
		m.rows = searchRows(m.nodes, m.manager.Root(), m.filter.Value())
	} else {
		m.rows = flatten(m.nodes, m.expanded, 0)
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the node under the cursor, or nil for an empty tree.
func (m Model) selected() rest.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].node
}
