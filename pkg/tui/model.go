package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/blackcoderx/reqtree/pkg/rest"
)

// row is one visible line of the tree pane.
type row struct {
	node  rest.Node
	depth int
	label string // overrides the node name, used for search results
}

// Model is the Bubble Tea model of the browser. It holds:
// - the last scanned tree and which folders are expanded
// - the flattened visible rows and the cursor
// - a viewport for the request preview
// - a text input for fuzzy filtering
type Model struct {
	manager  *rest.Manager
	nodes    []rest.Node
	rows     []row
	expanded map[string]bool
	cursor   int

	viewport    viewport.Model
	filter      textinput.Model
	filtering   bool
	spinner     spinner.Model
	loading     bool
	previewPath string

	width  int
	height int
	ready  bool

	status string
	err    error

	// copyToClipboard is swapped out in tests
	copyToClipboard func(string) error
}

// treeLoadedMsg carries the result of a scan
type treeLoadedMsg struct {
	nodes []rest.Node
	err   error
}

// previewMsg carries a rendered request
type previewMsg struct {
	path    string
	content string
	err     error
}
